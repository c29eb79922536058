// Package common defines shared sentinel errors used across the upload
// pipeline and its storage layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input validation errors. Rejected before any storage I/O happens.
	ErrEmptyPayload        = errors.New("empty payload")
	ErrEmptyFilename       = errors.New("empty filename")
	ErrExtensionNotAllowed = errors.New("extension not authorized")

	// Pipeline stage errors.
	ErrTransformFailed = errors.New("image transform failed")
	ErrStorageFailed   = errors.New("storage failed")
	ErrLinkFailed      = errors.New("owner slot link failed")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
