// Package upload implements the pure stages of the upload-ingestion
// pipeline: content-type sniffing, filename/extension policy, and
// conditional image transformation. All functions here are stateless and
// safe for concurrent use; storage is the caller's concern.
package upload

import "bytes"

// Kind is the content type of an upload as determined from its bytes.
// The zero value is KindUnknown, which covers anything that is not a
// recognized image format (plain text, archives, truncated input, ...).
type Kind int

const (
	KindUnknown Kind = iota
	KindPNG
	KindJPEG
	KindGIF
	KindWebP
	KindBMP
	KindTIFF
	KindICO
)

// sniffLen bounds how much of the payload Sniff inspects.
const sniffLen = 16

var kindExtensions = map[Kind]string{
	KindPNG:  "png",
	KindJPEG: "jpeg",
	KindGIF:  "gif",
	KindWebP: "webp",
	KindBMP:  "bmp",
	KindTIFF: "tiff",
	KindICO:  "ico",
}

var kindMIMEs = map[Kind]string{
	KindPNG:  "image/png",
	KindJPEG: "image/jpeg",
	KindGIF:  "image/gif",
	KindWebP: "image/webp",
	KindBMP:  "image/bmp",
	KindTIFF: "image/tiff",
	KindICO:  "image/x-icon",
}

// Ext returns the canonical lowercase extension for the kind, without a
// leading dot. KindUnknown has no canonical extension and returns "".
func (k Kind) Ext() string {
	return kindExtensions[k]
}

// MIME returns the media type for the kind, falling back to
// application/octet-stream for unrecognized content.
func (k Kind) MIME() string {
	if m, ok := kindMIMEs[k]; ok {
		return m
	}
	return "application/octet-stream"
}

// IsImage reports whether the kind is a concrete image format.
func (k Kind) IsImage() bool {
	return k != KindUnknown
}

func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return kindExtensions[k]
}

// Sniff determines the true content kind of data from its leading bytes,
// ignoring any filename the client may have supplied. It inspects at most
// sniffLen bytes against known magic numbers and never fails: input that
// matches no signature, including empty or truncated payloads, is reported
// as KindUnknown. Same bytes always yield the same result.
func Sniff(data []byte) Kind {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return KindPNG
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return KindJPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return KindGIF
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return KindWebP
	case bytes.HasPrefix(data, []byte("BM")):
		return KindBMP
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return KindTIFF
	case bytes.HasPrefix(data, []byte("\x00\x00\x01\x00")):
		return KindICO
	default:
		return KindUnknown
	}
}
