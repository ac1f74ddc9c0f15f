// Package features extracts the three lexical flight-risk features from a
// 1on1 transcript: sentiment tone, engagement volume and job-search intent.
//
// Every extractor is a pure function of its input and the lexicon registry.
// None depends on another's output, so they can run in any order.
package features

type Kind string

const (
	KindSentiment  Kind = "sentiment"
	KindEngagement Kind = "engagement"
	KindJobSearch  Kind = "job_search"
)

// Display labels shown by the presentation layer.
const (
	LabelSentiment  = "① 感情トーン＆変動"
	LabelEngagement = "② エンゲージメント量"
	LabelJobSearch  = "③ ジョブサーチ暗示語"
)

// Detail is one labeled supporting metric, already formatted for display.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is the common output shape of every extractor.
type Result struct {
	Kind    Kind     `json:"kind"`
	Label   string   `json:"label"`
	Score   float64  `json:"score"` // 0-100
	Details []Detail `json:"details"`
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
