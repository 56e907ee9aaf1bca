// Command reviews_research runs the outlet search + shortlist assembly
// for a niche and writes inputs/shortlist.json, per spec.md §6.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ridgeline-media/topfive/internal/bootstrap"
	"github.com/ridgeline-media/topfive/pkg/cliutil"
	"github.com/ridgeline-media/topfive/pkg/fsutil"
)

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func main() {
	nicheFlag := flag.String("niche", "", "niche keyword to research (required)")
	videoID := flag.String("video-id", "", "run directory name to write shortlist.json under")
	root := flag.String("root", getEnv("ARTIFACTS_ROOT", bootstrap.ArtifactsRoot), "artifacts root")
	flag.Parse()
	_ = godotenv.Load()

	if *nicheFlag == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -niche is required"))
		return
	}
	if *videoID == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -video-id is required"))
		return
	}

	service := bootstrap.ResearchService()
	shortlist, err := service.Research(context.Background(), *nicheFlag)
	if err != nil {
		cliutil.Emit(nil, err)
		return
	}

	path := filepath.Join(*root, *videoID, "inputs", "shortlist.json")
	if err := fsutil.WriteJSONAtomic(path, shortlist); err != nil {
		cliutil.Emit(nil, fmt.Errorf("write shortlist.json: %w", err))
		return
	}
	cliutil.Emit(shortlist, nil)
}
