package upload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/uploadvault/internal/common"
)

// ResolvedName is a sanitized filename split into basename and extension.
// The extension is lowercase without a leading dot.
type ResolvedName struct {
	Base string
	Ext  string
}

// Filename joins the basename and extension back into a display filename.
func (n ResolvedName) Filename() string {
	if n.Ext == "" {
		return n.Base
	}
	return n.Base + "." + n.Ext
}

// SanitizeFilename strips directory components, removes embedded control
// characters (including newlines), and trims surrounding whitespace from a
// client-supplied filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}

// ResolveName reconciles a client-supplied filename with the sniffed
// content kind under the site extension allow-list:
//
//  1. The filename is sanitized and split into basename and extension.
//  2. An extension the site explicitly authorizes is kept as-is, even when
//     sniffing disagrees: allow-listing is a deliberate site override.
//  3. Otherwise, when sniffing identified a concrete image type whose
//     canonical extension is authorized, the extension is corrected to the
//     sniffed one and the filename rewritten accordingly.
//  4. Otherwise the claimed extension is kept unchanged; there is no
//     information to safely correct to.
//
// A filename that sanitizes to empty is rejected with
// common.ErrEmptyFilename. Resolution is idempotent: resolving an already
// resolved name yields the same result.
func ResolveName(claimed string, kind Kind, allowed ExtensionSet) (ResolvedName, error) {
	clean := SanitizeFilename(claimed)
	if clean == "" || clean == "." {
		return ResolvedName{}, fmt.Errorf("filename %q: %w", claimed, common.ErrEmptyFilename)
	}

	base := clean
	ext := ""
	if i := strings.LastIndex(clean, "."); i > 0 {
		base = clean[:i]
		ext = strings.TrimSpace(strings.ToLower(clean[i+1:]))
	}

	if allowed.Contains(ext) {
		return ResolvedName{Base: base, Ext: ext}, nil
	}

	if sniffed := kind.Ext(); kind.IsImage() && allowed.Contains(sniffed) {
		return ResolvedName{Base: base, Ext: sniffed}, nil
	}

	return ResolvedName{Base: base, Ext: ext}, nil
}
