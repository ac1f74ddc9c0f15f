package features

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mosuYamaoka/1on1checker/lexicon"
)

// Engagement thresholds. Each satisfied condition adds its bonus.
const (
	lowSpeechRatio   = 30.0 // percent of lines
	shortTokenLength = 10.0 // characters
	highFillerRate   = 5.0  // fillers per 100 tokens
	lowSpeechBonus   = 30
	shortTokenBonus  = 20
	highFillerBonus  = 30
	neutralScore     = 50
)

// EngagementMetrics are the raw numbers behind the engagement score.
type EngagementMetrics struct {
	SpeechRatio    float64
	AvgTokenLength float64
	FillerCount    int
	FillerRate     float64
}

// MeasureEngagement computes the raw metrics for a participant that spoke at
// least once. Token length is counted in Unicode code points.
func MeasureEngagement(totalLines int, sp Speech, filler *lexicon.Lexicon) EngagementMetrics {
	m := EngagementMetrics{FillerCount: filler.Count(sp.Blob)}
	if totalLines > 0 {
		m.SpeechRatio = float64(sp.Lines) / float64(totalLines) * 100
	}
	if n := len(sp.Tokens); n > 0 {
		m.AvgTokenLength = float64(utf8.RuneCountInString(strings.Join(sp.Tokens, ""))) / float64(n)
		m.FillerRate = float64(m.FillerCount) / float64(n) * 100
	}
	return m
}

// Engagement scores low participation. When the participant never speaks the
// score is a neutral 50 and no metrics are computed.
func Engagement(lines []string, sp *Speaker, reg *lexicon.Registry) Result {
	speech := sp.Attribute(lines)
	if !speech.Found() {
		return Result{
			Kind:    KindEngagement,
			Label:   LabelEngagement,
			Score:   neutralScore,
			Details: []Detail{{Label: "「" + sp.Name() + "」さんの発言が見つかりません", Value: ""}},
		}
	}

	m := MeasureEngagement(len(lines), speech, reg.Filler())

	score := 0
	if m.SpeechRatio < lowSpeechRatio {
		score += lowSpeechBonus
	}
	if m.AvgTokenLength < shortTokenLength {
		score += shortTokenBonus
	}
	if m.FillerRate > highFillerRate {
		score += highFillerBonus
	}

	return Result{
		Kind:  KindEngagement,
		Label: LabelEngagement,
		Score: clamp(math.Min(100, float64(score))),
		Details: []Detail{
			{Label: "社員発話比率", Value: fixed1(m.SpeechRatio) + "%"},
			{Label: "平均単語長", Value: fixed1(m.AvgTokenLength) + "文字"},
			{Label: "詰まり語/100語", Value: fixed1(m.FillerRate) + "回"},
		},
	}
}
