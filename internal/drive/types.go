package drive

import "time"

// FileInfo represents metadata about a file or folder in Google Drive
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// Size is the size of the file in bytes (not populated for folders
	// or native Google types)
	Size int64 `json:"size,omitempty"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"createdTime"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// WebViewLink is a link for opening the file in a relevant Google editor or viewer
	WebViewLink string `json:"webViewLink,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`

	// Owners are the owners of the file
	Owners []User `json:"owners,omitempty"`

	// Shared indicates whether the file is shared
	Shared bool `json:"shared"`

	// Trashed indicates whether the file is in the trash
	Trashed bool `json:"trashed"`
}

// User represents a Google Drive user (owner, sharer, etc.)
type User struct {
	// DisplayName is the display name of the user
	DisplayName string `json:"displayName"`

	// EmailAddress is the email address of the user
	EmailAddress string `json:"emailAddress"`
}

// FileContent is the result of fetching a file's content.
type FileContent struct {
	// Info is the file's metadata.
	Info *FileInfo

	// Data holds the file bytes when the content could be fetched.
	Data []byte

	// Exported indicates the content came from the export endpoint
	// rather than a direct download.
	Exported bool

	// ExportMimeType is the MIME type the file was exported as, when
	// Exported is true.
	ExportMimeType string

	// TooLarge indicates the file is a native Google type whose export
	// would exceed the export ceiling; Data is empty and the caller
	// should direct the user to Info.WebViewLink.
	TooLarge bool
}
