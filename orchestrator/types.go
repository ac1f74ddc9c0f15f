package orchestrator

import (
	"time"

	"github.com/mosuYamaoka/1on1checker/features"
)

// Input is one analysis request as collected by the caller.
type Input struct {
	Transcript  string // speaker-tagged lines, e.g. "Tanaka: ..."
	Participant string // employee name used as the line prefix
}

// AnalysisResult is the engine output. Features are always ordered
// Sentiment, Engagement, JobSearch.
type AnalysisResult struct {
	FinalScore int               `json:"final_score"`
	Features   []features.Result `json:"features"`
}

type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Report is what gets handed to presentation: the result plus its risk tier.
type Report struct {
	Participant string    `json:"participant"`
	GeneratedAt time.Time `json:"generated_at"`
	Tier        Tier      `json:"tier"`
	AnalysisResult
}
