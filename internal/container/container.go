package container

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"ecoscan/adapters/llm"
	"ecoscan/adapters/openfoodfacts"
	"ecoscan/adapters/postgres"
	"ecoscan/ai"
	"ecoscan/app"
	"ecoscan/internal/config"
	"ecoscan/internal/consensus"
	"ecoscan/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB        *sqlx.DB
	LLMClient ports.LLMClient

	// Repositories
	ScanRepo  ports.ScanRepository
	Additives ports.AdditiveRegistry

	// Pipeline components
	Extractor    ports.Extractor
	Scientist    ports.Classifier
	Critic       ports.Classifier
	Arbiter      ports.Arbiter
	Resolver     *consensus.Resolver
	Scorer       ports.Scorer
	Logistics    ports.LogisticsAnalyzer
	Summarizer   ports.Summarizer
	Alternatives ports.AlternativesFinder

	// Services
	AuditService *app.AuditService
}

// New creates the dependency container and wires the audit pipeline
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client, err := llm.NewClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	c := &Container{Config: cfg, LLMClient: client}

	maxTokens := cfg.LLM.MaxTokens
	c.Extractor = ai.NewLabelExtractor(client, cfg.LLM.VisionModel, maxTokens)
	c.Scientist = ai.NewClassifierAgent(client, "scientist", ai.ScientistPrompt, cfg.LLM.ScientistModel, maxTokens)
	c.Critic = ai.NewClassifierAgent(client, "critic", ai.CriticPrompt, cfg.LLM.CriticModel, maxTokens)
	c.Arbiter = ai.NewArbiterAgent(client, cfg.LLM.ArbiterModel, maxTokens)
	c.Resolver = consensus.NewResolver(c.Scientist, c.Critic, c.Arbiter)
	c.Scorer = ai.NewScorecardAgent(client, cfg.LLM.ScorerModel, maxTokens)
	c.Logistics = ai.NewLogisticsAgent(client, cfg.LLM.ScorerModel, maxTokens)
	c.Summarizer = ai.NewSummarizerAgent(client, cfg.LLM.SummaryModel, maxTokens)
	c.Alternatives = openfoodfacts.NewClient(openfoodfacts.Config{
		BaseURL: cfg.Alternatives.BaseURL,
		Timeout: cfg.Alternatives.Timeout,
	})

	return c, nil
}

// InitWithDatabase attaches scan-history persistence. Optional: without a
// database the audit pipeline still runs, history endpoints are disabled.
func (c *Container) InitWithDatabase(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	c.DB = db
	repo := postgres.NewScanRepository(db)
	if impl, ok := repo.(*postgres.ScanRepositoryImpl); ok {
		if err := impl.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	c.ScanRepo = repo

	registry := postgres.NewAdditiveRegistry(db)
	if impl, ok := registry.(*postgres.AdditiveRegistryImpl); ok {
		if err := impl.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure additive schema: %w", err)
		}
	}
	c.Additives = registry

	log.Printf("[Container] scan history and banned-additive registry enabled")
	return nil
}

// BuildServices constructs the application services once infrastructure is set
func (c *Container) BuildServices() {
	c.AuditService = app.NewAuditService(
		c.Extractor, c.Resolver, c.Scorer, c.Logistics, c.Summarizer,
		c.Alternatives, c.Additives, c.ScanRepo)
}

// Close releases container-held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
