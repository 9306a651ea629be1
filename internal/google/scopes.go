package google

// ReadOnlyScopes are the Google OAuth scopes requested for every delegated
// client. The server only ever reads Workspace data, so each backing API gets
// exactly one read-only scope.
//
// The scopes provide access to:
//   - Gmail: read-only messages, labels, attachments
//   - Google Drive: read-only file metadata and content
//   - Google Sheets: read-only spreadsheet values
//   - Google Docs: read-only document bodies
//   - Google Slides: read-only presentations
//   - Google Calendar: read-only calendars, events and free/busy
//   - Admin Directory: read-only user listing (admin identity required)
var ReadOnlyScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/drive.readonly",
	"https://www.googleapis.com/auth/spreadsheets.readonly",
	"https://www.googleapis.com/auth/documents.readonly",
	"https://www.googleapis.com/auth/presentations.readonly",
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/admin.directory.user.readonly",
}
