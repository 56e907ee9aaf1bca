// Command amazon_verify resolves a shortlist against the marketplace
// and writes inputs/verified.json, per spec.md §6.
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
	"github.com/ridgeline-media/topfive/pkg/models"
)

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func main() {
	shortlistPath := flag.String("shortlist", "", "path to shortlist.json (required)")
	videoID := flag.String("video-id", "", "run directory name to write verified.json under")
	configDir := flag.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "configuration directory")
	root := flag.String("root", getEnv("ARTIFACTS_ROOT", bootstrap.ArtifactsRoot), "artifacts root")
	flag.Parse()
	_ = godotenv.Load()

	if *shortlistPath == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -shortlist is required"))
		return
	}
	if *videoID == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -video-id is required"))
		return
	}

	cfg, err := bootstrap.LoadConfig(*configDir)
	if err != nil {
		cliutil.Emit(nil, fmt.Errorf("load config: %w", err))
		return
	}

	var shortlist []models.ProductCandidate
	if err := fsutil.ReadJSON(*shortlistPath, &shortlist); err != nil {
		cliutil.Emit(nil, fmt.Errorf("read shortlist: %w", err))
		return
	}

	ctx := context.Background()
	service, err := bootstrap.MarketplaceService(ctx, cfg)
	if err != nil {
		cliutil.Emit(nil, err)
		return
	}

	verified := service.VerifyShortlist(ctx, shortlist)
	path := filepath.Join(*root, *videoID, "inputs", "verified.json")
	if err := fsutil.WriteJSONAtomic(path, verified); err != nil {
		cliutil.Emit(nil, fmt.Errorf("write verified.json: %w", err))
		return
	}
	cliutil.Emit(verified, nil)
}
