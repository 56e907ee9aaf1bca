// Command niche_picker picks (and persists) the niche for a given date,
// per spec.md §6.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ridgeline-media/topfive/internal/bootstrap"
	"github.com/ridgeline-media/topfive/pkg/agents"
	"github.com/ridgeline-media/topfive/pkg/cliutil"
	"github.com/ridgeline-media/topfive/pkg/niche"
)

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func main() {
	date := flag.String("date", time.Now().UTC().Format("2006-01-02"), "date to pick a niche for (YYYY-MM-DD)")
	list := flag.Bool("list", false, "list the history instead of picking")
	history := flag.Bool("history", false, "alias for -list")
	configDir := flag.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "configuration directory")
	root := flag.String("root", getEnv("ARTIFACTS_ROOT", bootstrap.ArtifactsRoot), "artifacts root")
	videoID := flag.String("video-id", "", "optional caller-supplied correlation id, echoed back in the result")
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := bootstrap.LoadConfig(*configDir)
	if err != nil {
		cliutil.Emit(nil, fmt.Errorf("load config: %w", err))
		return
	}

	repo, err := bootstrap.NicheHistoryRepository(*root)
	if err != nil {
		cliutil.Emit(nil, err)
		return
	}

	if *list || *history {
		entries, err := repo.Entries(context.Background())
		cliutil.Emit(entries, err)
		return
	}

	picker := niche.NewPicker(bootstrap.NichePool(cfg))
	selector := agents.NewNicheSelector(picker, repo)

	result, err := selector.PickForDate(context.Background(), *date)
	cliutil.Emit(pickResponse{VideoID: *videoID, Pick: result}, err)
}

// pickResponse echoes the caller-supplied video-id alongside the pick,
// so a caller correlating this command's output with its own record
// doesn't need to parse it back out of the niche keyword.
type pickResponse struct {
	VideoID string `json:"video_id,omitempty"`
	Pick    any    `json:"pick"`
}
