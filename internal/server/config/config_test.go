package config

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, BlobBackendLocal, cfg.BlobBackend)
	assert.Equal(t, "./data/uploads", cfg.LocalBlobDir)
	assert.Equal(t, "/uploads", cfg.BaseURL)
	assert.Equal(t, "png|jpg|jpeg|gif|webp", cfg.AuthorizedExtensions)
	assert.Equal(t, upload.DefaultConvertQuality, cfg.ConvertQuality)
	assert.Equal(t, 240, cfg.AvatarSize)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestPipeline_ConvertsSiteSettings(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.AuthorizedExtensions = ".webp|.bin"
	cfg.ConvertQuality = 55
	cfg.AvatarSize = 120

	p := cfg.Pipeline()

	assert.True(t, p.AllowedExtensions.Contains("webp"))
	assert.True(t, p.AllowedExtensions.Contains("bin"))
	assert.False(t, p.AllowedExtensions.Contains("png"))
	assert.Equal(t, 55, p.ConvertQuality)
	assert.Equal(t, image.Point{X: 120, Y: 120}, p.CropSizes[upload.RoleAvatar])
	assert.Equal(t, image.Point{X: 120, Y: 120}, p.CropSizes[upload.RoleGravatar])
	assert.NotContains(t, p.CropSizes, upload.RoleCustomEmoji)
	assert.True(t, p.ConvertibleKinds[upload.KindPNG])
}
