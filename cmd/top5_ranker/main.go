// Command top5_ranker scores a verified list into the final Top-5 and
// writes inputs/products.json, per spec.md §6.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ridgeline-media/topfive/internal/bootstrap"
	"github.com/ridgeline-media/topfive/pkg/cliutil"
	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/rank"
)

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func main() {
	verifiedPath := flag.String("verified", "", "path to verified.json (required)")
	videoID := flag.String("video-id", "", "run directory name to write products.json under")
	contractPath := flag.String("contract", "", "optional path to subcategory_contract.json")
	root := flag.String("root", getEnv("ARTIFACTS_ROOT", bootstrap.ArtifactsRoot), "artifacts root")
	flag.Parse()
	_ = godotenv.Load()

	if *verifiedPath == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -verified is required"))
		return
	}
	if *videoID == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -video-id is required"))
		return
	}

	var verified []models.VerifiedProduct
	if err := fsutil.ReadJSON(*verifiedPath, &verified); err != nil {
		cliutil.Emit(nil, fmt.Errorf("read verified: %w", err))
		return
	}

	var contract *models.SubcategoryContract
	if *contractPath != "" {
		contract = &models.SubcategoryContract{}
		if err := fsutil.ReadJSON(*contractPath, contract); err != nil {
			cliutil.Emit(nil, fmt.Errorf("read contract: %w", err))
			return
		}
	}

	ranker := rank.NewRanker(nil, "top5_ranker")
	products := ranker.Rank(verified, contract)

	path := filepath.Join(*root, *videoID, "inputs", "products.json")
	if err := fsutil.WriteJSONAtomic(path, products); err != nil {
		cliutil.Emit(nil, fmt.Errorf("write products.json: %w", err))
		return
	}
	cliutil.Emit(products, nil)
}
