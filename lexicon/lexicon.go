// Package lexicon holds the marker word sets the feature extractors match
// against. Lexicons are built once and never mutated afterwards.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTerm     = errors.New("lexicon term is empty")
	ErrEmptyCategory = errors.New("lexicon category has no terms")
	ErrUnknownCat    = errors.New("unknown lexicon category")
)

type Category string

const (
	Positive  Category = "positive"
	Negative  Category = "negative"
	Filler    Category = "filler"
	JobSearch Category = "job_search"
)

// Categories lists every category in registry order.
func Categories() []Category {
	return []Category{Positive, Negative, Filler, JobSearch}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCat, s)
}

// Lexicon is an ordered set of marker strings. Matching is plain substring
// containment, so a short entry also hits inside longer unrelated words.
type Lexicon struct {
	cat   Category
	terms []string
}

func New(cat Category, terms []string) (*Lexicon, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("%s: %w", cat, ErrEmptyCategory)
	}
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for i, t := range terms {
		if t == "" {
			return nil, fmt.Errorf("%s[%d]: %w", cat, i, ErrEmptyTerm)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return &Lexicon{cat: cat, terms: out}, nil
}

func (l *Lexicon) Category() Category { return l.cat }

func (l *Lexicon) Len() int { return len(l.terms) }

// Terms returns a copy of the entries in configuration order.
func (l *Lexicon) Terms() []string {
	out := make([]string, len(l.terms))
	copy(out, l.terms)
	return out
}

// ContainsAny reports whether s contains at least one entry.
func (l *Lexicon) ContainsAny(s string) bool {
	for _, t := range l.terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// Count sums the non-overlapping occurrences of every entry in s.
// Different entries may overlap each other and are counted independently.
func (l *Lexicon) Count(s string) int {
	n := 0
	for _, t := range l.terms {
		n += strings.Count(s, t)
	}
	return n
}
