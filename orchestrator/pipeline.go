package orchestrator

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mosuYamaoka/1on1checker/features"
	"github.com/mosuYamaoka/1on1checker/lexicon"
)

type Pipeline struct {
	lex *lexicon.Registry
	log logrus.FieldLogger
	now func() time.Time
}

func NewPipeline(reg *lexicon.Registry, log logrus.FieldLogger) *Pipeline {
	if reg == nil {
		reg = lexicon.Default()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{lex: reg, log: log, now: time.Now}
}

// Analyze scores one transcript. It assumes a non-empty participant name and
// never fails; an empty transcript yields the per-feature fallbacks.
func (p *Pipeline) Analyze(transcript, participant string) AnalysisResult {
	tokens := features.Tokens(transcript)
	lines := features.Lines(transcript)
	speaker := features.NewSpeaker(participant)

	results := []features.Result{
		features.Sentiment(tokens, p.lex),
		features.Engagement(lines, speaker, p.lex),
		features.JobSearch(transcript, p.lex),
	}
	for _, r := range results {
		p.log.WithFields(logrus.Fields{"feature": r.Kind, "score": r.Score}).Debug("feature scored")
	}

	final := Aggregate(results[0].Score, results[1].Score, results[2].Score)
	p.log.WithFields(logrus.Fields{
		"tokens": len(tokens),
		"lines":  len(lines),
		"score":  final,
	}).Info("analysis complete")

	return AnalysisResult{FinalScore: final, Features: results}
}

// Run validates the input, then analyzes the trimmed transcript.
func (p *Pipeline) Run(in Input) (*Report, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Participant)
	res := p.Analyze(strings.TrimSpace(in.Transcript), name)
	return &Report{
		Participant:    name,
		GeneratedAt:    p.now(),
		Tier:           RiskTier(res.FinalScore),
		AnalysisResult: res,
	}, nil
}
