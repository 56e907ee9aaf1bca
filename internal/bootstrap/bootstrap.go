// Package bootstrap wires the CLI commands under cmd/ against real
// collaborators: config loading, the niche history store, the
// marketplace backend, and the LLM-backed script generator. It exists
// so each thin cmd/ main stays a flag parser plus one bootstrap call,
// not a repeat of the same construction logic five times over.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ridgeline-media/topfive/pkg/agents"
	"github.com/ridgeline-media/topfive/pkg/assets"
	"github.com/ridgeline-media/topfive/pkg/config"
	"github.com/ridgeline-media/topfive/pkg/fetch"
	"github.com/ridgeline-media/topfive/pkg/job"
	"github.com/ridgeline-media/topfive/pkg/llmclient"
	"github.com/ridgeline-media/topfive/pkg/manifest"
	"github.com/ridgeline-media/topfive/pkg/marketplace"
	"github.com/ridgeline-media/topfive/pkg/models"
	"github.com/ridgeline-media/topfive/pkg/niche"
	"github.com/ridgeline-media/topfive/pkg/orchestrator"
	"github.com/ridgeline-media/topfive/pkg/rank"
	"github.com/ridgeline-media/topfive/pkg/research"
	"github.com/ridgeline-media/topfive/pkg/retry"
	"github.com/ridgeline-media/topfive/pkg/run"
	"github.com/ridgeline-media/topfive/pkg/script"
	"github.com/ridgeline-media/topfive/pkg/subprocess"
	"github.com/ridgeline-media/topfive/pkg/tts"
)

// ArtifactsRoot is the default run workspace root, per spec.md §6's
// artifacts/videos/<run_slug>/ layout.
const ArtifactsRoot = "artifacts/videos"

// LoadConfig loads topfive.yaml from configDir, falling back to built-in
// defaults when absent.
func LoadConfig(configDir string) (*config.Config, error) {
	return config.Load(configDir)
}

// NicheHistoryRepository opens the filesystem-backed niche history store
// at <root>/niche_history.json. A multi-process admin deployment backs
// this with pkg/database.NicheHistoryRepo instead; single-shot CLI
// commands never need that Postgres-backed path.
func NicheHistoryRepository(root string) (niche.HistoryRepository, error) {
	store, err := niche.LoadHistoryStore(filepath.Join(root, "niche_history.json"))
	if err != nil {
		return nil, fmt.Errorf("load niche history: %w", err)
	}
	return niche.NewFileHistoryStore(store), nil
}

// NichePool returns the built-in candidate pool extended with any
// operator-supplied entries from cfg.
func NichePool(cfg *config.Config) []models.NicheCandidate {
	pool := append([]models.NicheCandidate{}, niche.Pool...)
	if cfg.Niche != nil {
		for _, extra := range cfg.Niche.ExtraCandidates {
			extra.DerivePriceBand()
			pool = append(pool, extra)
		}
	}
	return pool
}

// MarketplaceBackend selects PA-API when credentials are configured and
// preferred, falling back to the browser backend otherwise. ctx bounds
// the browser session's own lifetime, not any single search call.
func MarketplaceBackend(ctx context.Context, cfg *config.Config) (marketplace.Backend, error) {
	accessKey := os.Getenv(cfg.Marketplace.AccessKeyEnv)
	secretKey := os.Getenv(cfg.Marketplace.SecretKeyEnv)
	partnerTag := os.Getenv(cfg.Marketplace.AssociateTagEnv)

	if cfg.Marketplace.PreferPAAPI && accessKey != "" && secretKey != "" {
		return marketplace.NewPAAPIBackend(accessKey, secretKey, partnerTag), nil
	}

	browser := fetch.NewBrowserFetcher(ctx)
	return marketplace.NewBrowserBackend(browser), nil
}

// AssociateTag reads the configured Amazon associate tag.
func AssociateTag(cfg *config.Config) string {
	return os.Getenv(cfg.Marketplace.AssociateTagEnv)
}

// MarketplaceService builds a marketplace.Service over MarketplaceBackend
// with a real clock.
func MarketplaceService(ctx context.Context, cfg *config.Config) (*marketplace.Service, error) {
	backend, err := MarketplaceBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return marketplace.NewService(backend, AssociateTag(cfg), retry.RealSleeper), nil
}

// ResearchService builds a research.Service against the Brave Search
// backend, per spec.md §6's BRAVE_SEARCH_API_KEY.
func ResearchService() *research.Service {
	return research.NewService(research.NewBraveSearchClient(os.Getenv("BRAVE_SEARCH_API_KEY")))
}

// ScriptGenerator builds a script.Generator against the OpenAI-backed
// HTTP tier only; the browser-driven tier has no concrete implementation
// in this repository (spec.md §1 marks the LLM provider wire protocol
// out of scope), so useBrowser is always false here.
func ScriptGenerator() *script.Generator {
	client := llmclient.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), openAIModel())
	adapter := llmclient.NewScriptAdapter(client)
	return script.NewGenerator(nil, adapter, nil, adapter, false)
}

// JobLLMClient builds the job subsystem's tool-loop LLM collaborator.
func JobLLMClient() job.LLMClient {
	client := llmclient.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), openAIModel())
	return llmclient.NewJobAdapter(client)
}

// AgentMap wires one agent per pipeline stage against real collaborators,
// for orchestrator.NewRunner. assets/tts planners are built with a nil
// backend — spec.md's environment variable list names no image- or
// speech-generation key, so the dry-run path (see pkg/assets, pkg/tts
// doc comments) is this repository's complete implementation of those
// two stages, not a placeholder — the Go equivalent of
// market_auto_dispatch.py's --allow-elevenlabs/--allow-dzine flags
// defaulting off.
//
// store supplies the product-repeat lookback (cfg.Production's
// NoRepeatProductDays/MinUniqueProducts) the rank stage is gated on,
// grounded on market_auto_dispatch.py's collect_recent_product_history.
func AgentMap(ctx context.Context, cfg *config.Config, store *run.Store) (map[string][]orchestrator.Agent, error) {
	marketplaceSvc, err := MarketplaceService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	assetPlanner := assets.NewPlanner(nil)
	voicePlanner := tts.NewPlanner(nil, ttsVoice())

	ranker := rank.NewRanker(nil, orchestrator.StageRank)
	if err := applyNoveltyBlocklist(ranker, cfg, store); err != nil {
		return nil, err
	}

	scriptProducer := agents.NewScriptProducer(script.NewService(ScriptGenerator()))
	if cfg.Production != nil && cfg.Production.ScriptTargetMinutes > 0 {
		scriptProducer.SetTargetMinutes(cfg.Production.ScriptTargetMinutes)
	}

	return map[string][]orchestrator.Agent{
		orchestrator.StageNiche:    {agents.NewNicheAgent()},
		orchestrator.StageResearch: {agents.NewResearcher(ResearchService())},
		orchestrator.StageVerify:   {agents.NewVerifier(marketplaceSvc)},
		orchestrator.StageRank:     {agents.NewRankAgent(ranker)},
		orchestrator.StageScript:   {scriptProducer},
		orchestrator.StageAssets:   {agents.NewAssetPlannerAgent(assets.NewService(assetPlanner))},
		orchestrator.StageTTS:      {agents.NewNarrationPlannerAgent(tts.NewService(voicePlanner))},
		orchestrator.StageManifest: {agents.NewManifestPackager(manifest.NewPackager())},
	}, nil
}

// applyNoveltyBlocklist computes the recent-product blocklist from store
// and wires it into ranker, when cfg.Production enables the lookback
// (NoRepeatProductDays > 0).
func applyNoveltyBlocklist(ranker *rank.Ranker, cfg *config.Config, store *run.Store) error {
	if cfg.Production == nil || cfg.Production.NoRepeatProductDays <= 0 || store == nil {
		return nil
	}
	blocked, err := store.RecentProductKeys(cfg.Production.NoRepeatProductDays, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("load recent product history: %w", err)
	}
	ranker.SetNoveltyBlocklist(blocked, cfg.Production.MinUniqueProducts)
	return nil
}

func ttsVoice() string {
	if v := os.Getenv("TTS_VOICE"); v != "" {
		return v
	}
	return "alloy"
}

// RenderRunner builds the finalize stage's render collaborator from the
// RENDER_CMD environment variable (a shell-style command line, split on
// whitespace). A blank RENDER_CMD makes every call fail with a config
// error rather than silently succeeding, per spec.md §6's external
// collaborator discipline.
func RenderRunner() *subprocess.Runner {
	return subprocess.NewRunner(commandSpec("RENDER_CMD"))
}

// UploadRunner builds the finalize stage's upload collaborator from the
// UPLOAD_CMD environment variable.
func UploadRunner() *subprocess.Runner {
	return subprocess.NewRunner(commandSpec("UPLOAD_CMD"))
}

func commandSpec(envVar string) subprocess.Spec {
	fields := strings.Fields(os.Getenv(envVar))
	if len(fields) == 0 {
		return subprocess.Spec{}
	}
	return subprocess.Spec{Command: fields[0], Args: fields[1:]}
}

func openAIModel() string {
	if m := os.Getenv("JOB_WORKER_MODEL"); m != "" {
		return m
	}
	return "gpt-4o-mini"
}
