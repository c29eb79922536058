package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniff_KnownSignatures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Kind
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), KindPNG},
		{"jpeg", []byte("\xff\xd8\xff\xe0\x00\x10JFIF"), KindJPEG},
		{"gif87a", []byte("GIF87a\x01\x00"), KindGIF},
		{"gif89a", []byte("GIF89a\x01\x00"), KindGIF},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), KindWebP},
		{"bmp", []byte("BM\x36\x00\x00\x00"), KindBMP},
		{"tiff little endian", []byte("II*\x00\x08\x00\x00\x00"), KindTIFF},
		{"tiff big endian", []byte("MM\x00*\x00\x00\x00\x08"), KindTIFF},
		{"ico", []byte("\x00\x00\x01\x00\x01\x00"), KindICO},
		{"plain text", []byte("hello world"), KindUnknown},
		{"utf8 text", []byte("\xd0\xbf\xd1\x80\xd0\xb8\xd0\xb2\xd0\xb5\xd1\x82"), KindUnknown},
		{"empty", nil, KindUnknown},
		{"truncated png header", []byte("\x89PN"), KindUnknown},
		{"riff but not webp", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sniff(tc.data))
		})
	}
}

func TestSniff_Deterministic(t *testing.T) {
	data := []byte("\x89PNG\r\n\x1a\nrest-of-stream")
	first := Sniff(data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sniff(data))
	}
}

func TestKind_Ext(t *testing.T) {
	assert.Equal(t, "png", KindPNG.Ext())
	assert.Equal(t, "jpeg", KindJPEG.Ext())
	assert.Equal(t, "webp", KindWebP.Ext())
	assert.Equal(t, "", KindUnknown.Ext())
}

func TestKind_IsImage(t *testing.T) {
	assert.False(t, KindUnknown.IsImage())
	assert.True(t, KindPNG.IsImage())
	assert.True(t, KindICO.IsImage())
}

func TestKind_MIME(t *testing.T) {
	assert.Equal(t, "image/png", KindPNG.MIME())
	assert.Equal(t, "application/octet-stream", KindUnknown.MIME())
}
