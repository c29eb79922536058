package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/uploadvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-k string   blob backend ("local" or "s3")
//	-o string   local blob directory
//	-w string   base URL blobs are served from
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-x string   authorized extensions, pipe-separated
//	-q int      pasted-image conversion quality (1-100)
//	-z int      avatar crop size, pixels
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-o", "-w", "-u", "-p", "-b", "-g", "-e", "-x", "-q", "-z"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BlobBackend, "k", config.BlobBackend, "blob backend: local or s3")
	fs.StringVar(&config.LocalBlobDir, "o", config.LocalBlobDir, "local blob directory")
	fs.StringVar(&config.BaseURL, "w", config.BaseURL, "base URL for stored blobs")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.AuthorizedExtensions, "x", config.AuthorizedExtensions, "authorized extensions, pipe-separated")
	fs.IntVar(&config.ConvertQuality, "q", config.ConvertQuality, "pasted-image conversion quality (1-100)")
	fs.IntVar(&config.AvatarSize, "z", config.AvatarSize, "avatar crop size in pixels")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
