package features

import (
	"math"
	"strconv"

	"github.com/mosuYamaoka/1on1checker/lexicon"
)

const pointsPerKeyword = 20

// JobSearch counts every occurrence of a job-search term in the raw text and
// awards 20 points per hit, capped at 100.
func JobSearch(text string, reg *lexicon.Registry) Result {
	n := reg.JobSearch().Count(text)
	return Result{
		Kind:  KindJobSearch,
		Label: LabelJobSearch,
		Score: clamp(math.Min(100, float64(n*pointsPerKeyword))),
		Details: []Detail{
			{Label: "転職関連キーワード頻度", Value: strconv.Itoa(n)},
		},
	}
}
