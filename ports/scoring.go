package ports

import (
	"context"

	"ecoscan/domain/audit"
)

// Scorer produces the category-aware ESG scorecard for raw label data.
// Its numeric output is advisory: the pipeline recomputes totals from the
// consensus verdict list so the scorecard can never contradict the per-item
// report, and only the breakdown notes are carried through.
type Scorer interface {
	Score(ctx context.Context, category audit.Category, label audit.ExtractedLabel) (*audit.Scorecard, error)
}

// LogisticsAnalyzer assesses a product's origin text for food-miles impact
type LogisticsAnalyzer interface {
	AnalyzeOrigin(ctx context.Context, originText string) (*audit.LogisticsReport, error)
}

// Summarizer writes the one-line narrative verdict for a finished audit.
// language must be one of the normalized narrative languages.
type Summarizer interface {
	Summarize(ctx context.Context, verdicts []audit.FinalVerdict, scorecard audit.Scorecard, logistics audit.LogisticsReport, category audit.Category, language string) (string, error)
}
