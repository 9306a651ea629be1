// Package drive provides a read-only client for the Google Drive API.
//
// Native Google file types (Docs, Sheets, Slides) have no downloadable
// bytes; their content is obtained through the export endpoint with a
// fixed target MIME type per source type. Regular files are downloaded
// as-is. Exports larger than the API's export ceiling cannot be fetched
// and are reported back with the file's web view link instead.
package drive
