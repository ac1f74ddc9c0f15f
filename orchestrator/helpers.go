package orchestrator

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrMissingParticipant = errors.New("participant name is required")
	ErrMissingTranscript  = errors.New("transcript is required")
)

// fixed feature weights
const (
	sentimentWeight  = 0.6
	engagementWeight = 0.2
	jobSearchWeight  = 0.2
)

// Aggregate combines the sub-scores 60/20/20 and rounds half up.
func Aggregate(sentiment, engagement, jobSearch float64) int {
	v := sentiment*sentimentWeight + engagement*engagementWeight + jobSearch*jobSearchWeight
	n := int(math.Floor(v + 0.5))
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	}
	return n
}

// RiskTier maps a final score onto the display tiers.
func RiskTier(score int) Tier {
	switch {
	case score >= 70:
		return TierHigh
	case score >= 40:
		return TierMedium
	}
	return TierLow
}

func validate(in Input) error {
	if strings.TrimSpace(in.Participant) == "" {
		return ErrMissingParticipant
	}
	if strings.TrimSpace(in.Transcript) == "" {
		return ErrMissingTranscript
	}
	return nil
}
