package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/uploadvault/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config. Absent fields keep their current (default) values.
type JsonConfig struct {
	DatabaseDSN          *string `json:"database_dsn"`
	BlobBackend          *string `json:"blob_backend"`
	LocalBlobDir         *string `json:"local_blob_dir"`
	BaseURL              *string `json:"base_url"`
	S3RootUser           *string `json:"s3_root_user"`
	S3RootPassword       *string `json:"s3_root_password"`
	S3Bucket             *string `json:"s3_bucket"`
	S3Region             *string `json:"s3_region"`
	S3BaseEndpoint       *string `json:"s3_base_endpoint"`
	AuthorizedExtensions *string `json:"authorized_extensions"`
	ConvertQuality       *int    `json:"convert_quality"`
	AvatarSize           *int    `json:"avatar_size"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics, as a server must not start on a half-read configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(&config.DatabaseDSN, c.DatabaseDSN)
	applyString(&config.BlobBackend, c.BlobBackend)
	applyString(&config.LocalBlobDir, c.LocalBlobDir)
	applyString(&config.BaseURL, c.BaseURL)
	applyString(&config.S3RootUser, c.S3RootUser)
	applyString(&config.S3RootPassword, c.S3RootPassword)
	applyString(&config.S3Bucket, c.S3Bucket)
	applyString(&config.S3Region, c.S3Region)
	applyString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	applyString(&config.AuthorizedExtensions, c.AuthorizedExtensions)
	applyInt(&config.ConvertQuality, c.ConvertQuality)
	applyInt(&config.AvatarSize, c.AvatarSize)
}
