// Command pipeline drives a full video production run through its
// automated stages and the two human review gates, per spec.md §6's
// "Two-gate run controller": phases gate1, approve_gate1, reject_gate1,
// reset_gate1, gate2, approve_gate2, reject_gate2, reset_gate2, status,
// and finalize. -phase gate1 is the entrypoint that actually drives the
// automated stage chain (niche through manifest); every other phase
// operates on an already-created run.
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
	"github.com/ridgeline-media/topfive/pkg/config"
	"github.com/ridgeline-media/topfive/pkg/niche"
	"github.com/ridgeline-media/topfive/pkg/orchestrator"
	"github.com/ridgeline-media/topfive/pkg/run"
)

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func main() {
	phase := flag.String("phase", "gate1", "gate1|status|approve_gate1|reject_gate1|reset_gate1|gate2|approve_gate2|reject_gate2|reset_gate2|finalize")
	date := flag.String("date", time.Now().UTC().Format("2006-01-02"), "date to run, for -phase gate1")
	runSlug := flag.String("run-slug", "", "run_slug, required for every phase except gate1")
	reviewer := flag.String("reviewer", "", "reviewer identity for gate decisions")
	notes := flag.String("notes", "", "gate decision notes")
	configDir := flag.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "configuration directory")
	root := flag.String("root", getEnv("ARTIFACTS_ROOT", bootstrap.ArtifactsRoot), "artifacts root")
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := bootstrap.LoadConfig(*configDir)
	if err != nil {
		cliutil.Emit(nil, fmt.Errorf("load config: %w", err))
		return
	}
	store := run.NewStore(*root)

	if *phase != "gate1" && *runSlug == "" {
		cliutil.Emit(nil, fmt.Errorf("config: -run-slug is required for -phase %s", *phase))
		return
	}

	switch *phase {
	case "gate1":
		runDay(cfg, store, *root, *date)
	case "status", "gate2":
		state, err := store.Load(*runSlug)
		cliutil.Emit(state, err)
	case "approve_gate1":
		state, err := store.ApproveGate1(*runSlug, *reviewer, *notes)
		cliutil.Emit(state, err)
	case "reject_gate1":
		state, err := store.RejectGate1(*runSlug, *reviewer, *notes)
		cliutil.Emit(state, err)
	case "reset_gate1":
		state, err := store.ResetGate1(*runSlug)
		cliutil.Emit(state, err)
	case "approve_gate2":
		state, err := store.ApproveGate2(*runSlug, *reviewer, *notes)
		cliutil.Emit(state, err)
	case "reject_gate2":
		state, err := store.RejectGate2(*runSlug, *reviewer, *notes)
		cliutil.Emit(state, err)
	case "reset_gate2":
		state, err := store.ResetGate2(*runSlug)
		cliutil.Emit(state, err)
	case "finalize":
		if cfg.Production == nil || !cfg.Production.AllowUpload {
			cliutil.Emit(nil, fmt.Errorf("config: finalize refused: allow_upload is not enabled for this deployment"))
			return
		}
		opts := run.DefaultFinalizeOptions()
		state, err := store.Finalize(context.Background(), *runSlug, bootstrap.RenderRunner(), bootstrap.UploadRunner(), opts)
		cliutil.Emit(state, err)
	default:
		cliutil.Emit(nil, fmt.Errorf("config: unknown -phase %q", *phase))
	}
}

// runDay implements -phase gate1: picks the day's niche and drives it
// through every automated stage (niche through manifest), leaving the
// run at StatusDraftWaitingGate1 for human review. Because the asset
// and narration plans are already produced by the time gate1 is
// reached, -phase gate2 needs no further driving — it is an alias of
// status, used to inspect the run while deciding on gate 2.
func runDay(cfg *config.Config, store *run.Store, root, date string) {
	ctx := context.Background()

	repo, err := bootstrap.NicheHistoryRepository(root)
	if err != nil {
		cliutil.Emit(nil, err)
		return
	}
	picker := niche.NewPicker(bootstrap.NichePool(cfg))
	selector := agents.NewNicheSelector(picker, repo)

	agentMap, err := bootstrap.AgentMap(ctx, cfg, store)
	if err != nil {
		cliutil.Emit(nil, err)
		return
	}
	runner := orchestrator.NewRunner(agentMap, orchestrator.NewQAGate(), orchestrator.NewSecurityGate(), orchestrator.NewReviewerGate())

	controller := run.NewController(store, selector, runner, root)
	if cfg.Production != nil {
		controller.SetMaxRunsPerDay(cfg.Production.MaxRunsPerDay)
	}
	if err := controller.RunDay(ctx, date); err != nil {
		cliutil.Emit(nil, err)
		return
	}

	runs, err := store.List()
	if err != nil || len(runs) == 0 {
		cliutil.Emit(map[string]string{"date": date}, nil)
		return
	}
	cliutil.Emit(runs[0], nil)
}
