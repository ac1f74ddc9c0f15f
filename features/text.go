package features

import (
	"regexp"
	"strings"
)

// Tokens splits the trimmed text on runs of whitespace.
func Tokens(text string) []string {
	return strings.Fields(strings.TrimSpace(text))
}

// Lines splits text on newlines and drops blank lines.
func Lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Turn is one transcript line, attributed to the participant when it opens
// with "<name>:" or "<name>：".
type Turn struct {
	Line    string
	Text    string // line with the speaker prefix stripped, when attributed
	Speaker bool
}

// Speaker matches lines belonging to one participant. Build it once per
// analysis with NewSpeaker.
type Speaker struct {
	name string
	re   *regexp.Regexp
}

func NewSpeaker(name string) *Speaker {
	return &Speaker{
		name: name,
		re:   regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `[:：]\s*`),
	}
}

func (s *Speaker) Name() string { return s.name }

// Match reports whether the trimmed line opens with the participant prefix and
// returns the remainder, trimmed.
func (s *Speaker) Match(line string) (string, bool) {
	line = strings.TrimSpace(line)
	loc := s.re.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return strings.TrimSpace(line[loc[1]:]), true
}

func (s *Speaker) Turns(lines []string) []Turn {
	turns := make([]Turn, 0, len(lines))
	for _, l := range lines {
		text, ok := s.Match(l)
		turns = append(turns, Turn{Line: l, Text: text, Speaker: ok})
	}
	return turns
}

// Speech is everything one participant said.
type Speech struct {
	Lines  int      // attributed line count
	Blob   string   // stripped lines joined with a single space
	Tokens []string // whitespace split of Blob
}

func (s Speech) Found() bool { return s.Lines > 0 }

// Attribute collects the participant's utterances from lines.
func (s *Speaker) Attribute(lines []string) Speech {
	var parts []string
	for _, t := range s.Turns(lines) {
		if t.Speaker {
			parts = append(parts, t.Text)
		}
	}
	blob := strings.Join(parts, " ")
	return Speech{Lines: len(parts), Blob: blob, Tokens: strings.Fields(blob)}
}
