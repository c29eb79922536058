// Package models defines server-side data models persisted in the database.
package models

// Upload is the durable record describing one stored artifact. Records are
// keyed by the content digest of the final (post-transform) bytes: for two
// uploads with identical final bytes exactly one Upload exists. An Upload
// is created once and never updated.
type Upload struct {
	// ID is the server-assigned identifier.
	ID int64
	// UserID is the owner who first uploaded this content.
	UserID string
	// SHA256 is the hex digest of the stored bytes; primary identity.
	SHA256 string
	// Extension is the resolved extension, lowercase without a dot.
	Extension string
	// OriginalFilename is the sanitized, possibly-corrected client filename.
	OriginalFilename string
	// URL is the retrieval locator returned by the blob store.
	URL string
	// ByteSize is the size of the stored bytes.
	ByteSize int64
	// Width and Height are the pixel dimensions for images, zero otherwise.
	Width  int
	Height int
}
