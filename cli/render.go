package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mosuYamaoka/1on1checker/orchestrator"
)

func renderText(w io.Writer, rep *orchestrator.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# 1on1 flight-risk report: %s\n\n", rep.Participant)
	fmt.Fprintf(&b, "Risk score: %d (%s)\n", rep.FinalScore, rep.Tier)
	for _, f := range rep.Features {
		fmt.Fprintf(&b, "\n%s (スコア: %d)\n", f.Label, int(math.Floor(f.Score+0.5)))
		for _, d := range f.Details {
			if d.Value == "" {
				fmt.Fprintf(&b, "- %s\n", d.Label)
				continue
			}
			fmt.Fprintf(&b, "- %s: %s\n", d.Label, d.Value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
