package upload

import (
	"image"
	"strings"
)

// DefaultConvertQuality is the JPEG quality used for pasted-image
// conversion when the site has not configured one.
const DefaultConvertQuality = 90

// ExtensionSet is a site allow-list of file extensions, stored lowercase
// without leading dots.
type ExtensionSet map[string]struct{}

// ParseExtensions builds an ExtensionSet from a pipe-separated site
// setting such as "png|.jpg|JPEG". Dots, surrounding whitespace, and case
// are normalized away; empty elements are dropped.
func ParseExtensions(s string) ExtensionSet {
	set := make(ExtensionSet)
	for _, part := range strings.Split(s, "|") {
		ext := strings.ToLower(strings.TrimSpace(part))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

// Contains reports whether ext (lowercase, no dot) is authorized.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Config is the resolved site configuration for one pipeline invocation.
// It is an immutable value threaded through the pure stages so they stay
// independently testable; nothing in this package reads global state.
type Config struct {
	// AllowedExtensions is the site-wide extension allow-list.
	AllowedExtensions ExtensionSet

	// ConvertQuality is the JPEG quality (1–100) for pasted-image
	// conversion. Zero means DefaultConvertQuality.
	ConvertQuality int

	// ConvertibleKinds lists the lossless formats eligible for lossy
	// conversion when pasted content is force-optimized.
	ConvertibleKinds map[Kind]bool

	// CropSizes maps crop-eligible roles to their canonical dimensions.
	// Roles absent from the map are never cropped.
	CropSizes map[Role]image.Point
}

// DefaultConvertibleKinds returns the default set of formats that
// pasted-image conversion applies to: bitmap-like lossless formats that
// compress poorly for photographic content.
func DefaultConvertibleKinds() map[Kind]bool {
	return map[Kind]bool{
		KindPNG: true,
		KindBMP: true,
	}
}

func (c Config) quality() int {
	if c.ConvertQuality <= 0 || c.ConvertQuality > 100 {
		return DefaultConvertQuality
	}
	return c.ConvertQuality
}
