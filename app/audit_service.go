package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecoscan/domain/audit"
	"ecoscan/internal/consensus"
	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// AuditService orchestrates one audit request end to end: extraction, item
// building, consensus resolution, aggregation, and the narrative summary.
// Its degradation contract: only extraction failure aborts; every downstream
// collaborator failure is absorbed with a fixed fallback so the caller always
// receives a complete, well-formed report.
type AuditService struct {
	extractor    ports.Extractor
	resolver     *consensus.Resolver
	scorer       ports.Scorer
	logistics    ports.LogisticsAnalyzer
	summarizer   ports.Summarizer
	alternatives ports.AlternativesFinder // nil disables suggestions
	additives    ports.AdditiveRegistry   // nil disables the banned check
	scans        ports.ScanRepository     // nil disables history
}

// NewAuditService wires the audit pipeline. alternatives, additives, and
// scans may be nil.
func NewAuditService(
	extractor ports.Extractor,
	resolver *consensus.Resolver,
	scorer ports.Scorer,
	logistics ports.LogisticsAnalyzer,
	summarizer ports.Summarizer,
	alternatives ports.AlternativesFinder,
	additives ports.AdditiveRegistry,
	scans ports.ScanRepository,
) *AuditService {
	return &AuditService{
		extractor:    extractor,
		resolver:     resolver,
		scorer:       scorer,
		logistics:    logistics,
		summarizer:   summarizer,
		alternatives: alternatives,
		additives:    additives,
		scans:        scans,
	}
}

// AnalyzeImage audits a label photo. Extraction failure is the one hard error.
func (s *AuditService) AnalyzeImage(ctx context.Context, imageData []byte, language string) (*audit.AuditReport, error) {
	label, err := s.extractor.ExtractLabel(ctx, imageData)
	if err != nil {
		return nil, errors.ExtractionFailed(err)
	}
	return s.AnalyzeLabel(ctx, *label, language)
}

// AnalyzeLabel audits already-extracted label data (manual text entry path)
func (s *AuditService) AnalyzeLabel(ctx context.Context, label audit.ExtractedLabel, language string) (*audit.AuditReport, error) {
	category := audit.NormalizeCategory(label.Category)
	scanID := uuid.New().String()

	items := consensus.BuildItemSet(label.Ingredients, label.Claims)
	if len(items) == 0 {
		// Defined terminal state: nothing to audit, no classifier invoked
		report := audit.EmptyReport(scanID, category)
		return &report, nil
	}

	// The consensus path and the advisory scorecard, logistics, alternatives,
	// and banned-additive calls are independent reads of the same input; fan
	// them out together.
	var (
		wg           sync.WaitGroup
		verdicts     []audit.FinalVerdict
		advisory     *audit.Scorecard
		logistics    = audit.UnknownLogistics()
		alternatives = []audit.Alternative{}
		banned       = []string{}
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		verdicts = s.resolver.Resolve(ctx, items)
	}()
	go func() {
		defer wg.Done()
		card, err := s.scorer.Score(ctx, category, label)
		if err != nil {
			log.Printf("[AuditService] scorecard degraded: %v", err)
			return
		}
		advisory = card
	}()
	go func() {
		defer wg.Done()
		result, err := s.logistics.AnalyzeOrigin(ctx, label.OriginInfo)
		if err != nil {
			log.Printf("[AuditService] logistics degraded: %v", err)
			return
		}
		logistics = *result
	}()
	go func() {
		defer wg.Done()
		if s.alternatives == nil || label.Barcode == "" {
			return
		}
		found, err := s.alternatives.FindAlternatives(ctx, label.Barcode)
		if err != nil {
			log.Printf("[AuditService] alternatives degraded: %v", err)
			return
		}
		alternatives = found
	}()
	go func() {
		defer wg.Done()
		if s.additives == nil {
			return
		}
		matches, err := s.additives.MatchBanned(ctx, items)
		if err != nil {
			log.Printf("[AuditService] banned-additive check degraded: %v", err)
			return
		}
		banned = matches
	}()
	wg.Wait()

	scorecard := consensus.Aggregate(verdicts, advisory, logistics, banned)

	summary, err := s.summarizer.Summarize(ctx, verdicts, scorecard, logistics, category, audit.NormalizeLanguage(language))
	if err != nil {
		log.Printf("[AuditService] summary degraded: %v", err)
		summary = audit.SummaryUnavailable
	}

	report := &audit.AuditReport{
		ID:           scanID,
		Category:     category,
		Verdicts:     verdicts,
		Scorecard:    scorecard,
		Logistics:    logistics,
		Alternatives: alternatives,
		Summary:      summary,
		CreatedAt:    time.Now().UTC(),
	}

	s.persist(ctx, report)
	return report, nil
}

// persist saves the report to scan history, best-effort
func (s *AuditService) persist(ctx context.Context, report *audit.AuditReport) {
	if s.scans == nil {
		return
	}

	id, err := uuid.Parse(report.ID)
	if err != nil {
		id = uuid.New()
	}

	record := &ports.ScanRecord{
		ID:       id,
		Category: string(report.Category),
		Score:    report.Scorecard.Total,
		Summary:  report.Summary,
		Report:   *report,
	}
	if err := s.scans.Save(ctx, record); err != nil {
		log.Printf("[AuditService] scan history save failed: %v", err)
	}
}
