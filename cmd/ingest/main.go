package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/uploadvault/internal/flagx"
	"github.com/dmitrijs2005/uploadvault/internal/server"
	"github.com/dmitrijs2005/uploadvault/internal/server/config"
	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

func main() {
	cfg := config.LoadConfig()

	args := flagx.FilterArgs(os.Args[1:], []string{"-file", "-user", "-type", "-pasted", "-force-optimize"})

	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	file := fs.String("file", "", "path of the file to ingest")
	user := fs.String("user", "", "owner user id")
	role := fs.String("type", "", "upload role: avatar, gravatar, custom_emoji, or empty")
	pasted := fs.Bool("pasted", false, "content was pasted rather than uploaded")
	forceOptimize := fs.Bool("force-optimize", false, "apply conversion/cropping rules")
	_ = fs.Parse(args)

	if *file == "" || *user == "" {
		log.Fatal("both -file and -user are required")
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	upl, err := app.IngestFile(ctx, *user, *file, upload.Options{
		Type:          upload.Role(*role),
		Pasted:        *pasted,
		ForceOptimize: *forceOptimize,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("id=%d sha256=%s ext=%s filename=%s url=%s size=%d dims=%dx%d\n",
		upl.ID, upl.SHA256, upl.Extension, upl.OriginalFilename, upl.URL,
		upl.ByteSize, upl.Width, upl.Height)
}
