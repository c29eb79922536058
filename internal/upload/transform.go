package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/dmitrijs2005/uploadvault/internal/common"
)

// TransformResult is the outcome of the conditional image transformation:
// the bytes to persist plus the extension and display filename they must
// be stored under.
type TransformResult struct {
	Data     []byte
	Ext      string
	Filename string
	Kind     Kind
}

// Transformer applies the configured image transformations. It is
// stateless apart from its configuration and safe for concurrent use.
type Transformer struct {
	cfg Config
}

func NewTransformer(cfg Config) *Transformer {
	return &Transformer{cfg: cfg}
}

// Transform conditionally re-encodes and/or crops an upload. Rules, in
// order, composing when several apply:
//
//   - content not recognized as an image passes through unchanged;
//   - pasted content in a convertible lossless format is re-encoded as
//     JPEG at the configured quality when ForceOptimize is set; the stored
//     extension becomes "jpeg" and the display filename gets a ".jpg"
//     suffix, basename preserved;
//   - roles with configured crop dimensions are center-cropped and scaled
//     to those dimensions when ForceOptimize is set; the extension is not
//     changed by cropping.
//
// A decode or encode failure returns an error wrapping
// common.ErrTransformFailed; callers are expected to fall back to the
// original bytes rather than failing the upload.
func (t *Transformer) Transform(data []byte, name ResolvedName, kind Kind, opts Options) (TransformResult, error) {
	res := TransformResult{Data: data, Ext: name.Ext, Filename: name.Filename(), Kind: kind}

	if !kind.IsImage() {
		return res, nil
	}

	convert := opts.Pasted && opts.ForceOptimize && t.cfg.ConvertibleKinds[kind]
	cropSize, cropable := t.cfg.CropSizes[opts.Type]
	crop := cropable && opts.ForceOptimize

	if !convert && !crop {
		return res, nil
	}

	img, err := decodeImage(data, kind)
	if err != nil {
		return res, fmt.Errorf("decode %s: %w (%w)", kind, err, common.ErrTransformFailed)
	}

	outKind := kind
	if convert {
		outKind = KindJPEG
		res.Ext = "jpeg"
		res.Filename = name.Base + ".jpg"
	}

	if crop {
		img = centerCrop(img, cropSize)
	}

	var buf bytes.Buffer
	if err := encodeImage(&buf, img, outKind, t.cfg.quality()); err != nil {
		return res, fmt.Errorf("encode %s: %w (%w)", outKind, err, common.ErrTransformFailed)
	}

	res.Data = buf.Bytes()
	res.Kind = outKind
	return res, nil
}

func decodeImage(data []byte, kind Kind) (image.Image, error) {
	r := bytes.NewReader(data)
	switch kind {
	case KindPNG:
		return png.Decode(r)
	case KindJPEG:
		return jpeg.Decode(r)
	case KindGIF:
		return gif.Decode(r)
	case KindWebP:
		return webp.Decode(r)
	case KindBMP:
		return bmp.Decode(r)
	case KindTIFF:
		return tiff.Decode(r)
	default:
		return nil, fmt.Errorf("no decoder for %s", kind)
	}
}

func encodeImage(buf *bytes.Buffer, img image.Image, kind Kind, quality int) error {
	switch kind {
	case KindPNG:
		return png.Encode(buf, img)
	case KindJPEG:
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	case KindGIF:
		return gif.Encode(buf, img, nil)
	case KindBMP:
		return bmp.Encode(buf, img)
	case KindTIFF:
		return tiff.Encode(buf, img, nil)
	default:
		return fmt.Errorf("no encoder for %s", kind)
	}
}

// centerCrop crops img to the target aspect ratio around its center and
// scales the result to exactly size using CatmullRom interpolation.
func centerCrop(img image.Image, size image.Point) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	srcAspect := float64(w) / float64(h)
	dstAspect := float64(size.X) / float64(size.Y)

	sr := b
	if srcAspect > dstAspect {
		cw := int(float64(h) * dstAspect)
		x0 := b.Min.X + (w-cw)/2
		sr = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	} else if srcAspect < dstAspect {
		ch := int(float64(w) / dstAspect)
		y0 := b.Min.Y + (h-ch)/2
		sr = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, sr, draw.Src, nil)
	return dst
}

// Dimensions returns the pixel size of an image payload, or zeros when the
// kind has no registered decoder or the header cannot be parsed.
func Dimensions(data []byte, kind Kind) (width, height int) {
	if !kind.IsImage() {
		return 0, 0
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
