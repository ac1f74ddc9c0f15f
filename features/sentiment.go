package features

import (
	"math"
	"strconv"

	"github.com/mosuYamaoka/1on1checker/lexicon"
)

// Sentiment scores negative-token density: negatives per 100 tokens, times 10,
// capped at 100. A token counts as positive and negative independently when
// it contains an entry of the respective lexicon.
func Sentiment(tokens []string, reg *lexicon.Registry) Result {
	pos, neg := 0, 0
	for _, tok := range tokens {
		if reg.Positive().ContainsAny(tok) {
			pos++
		}
		if reg.Negative().ContainsAny(tok) {
			neg++
		}
	}

	score := 0.0
	if n := len(tokens); n > 0 {
		score = math.Min(100, (float64(neg)/(float64(n)/100))*10)
	}

	return Result{
		Kind:  KindSentiment,
		Label: LabelSentiment,
		Score: clamp(score),
		Details: []Detail{
			{Label: "ポジティブ単語数", Value: strconv.Itoa(pos)},
			{Label: "ネガティブ単語数", Value: strconv.Itoa(neg)},
		},
	}
}
