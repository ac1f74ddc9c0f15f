package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mosuYamaoka/1on1checker/clients"
	"github.com/mosuYamaoka/1on1checker/config"
	"github.com/mosuYamaoka/1on1checker/orchestrator"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var name, file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one transcript",
		Long: `Analyze reads a speaker-tagged transcript ("Name: text" per line) and
prints the flight-risk score of the named participant.`,
		Example: `  1on1checker analyze --name Tanaka --file 1on1.txt
  pbpaste | 1on1checker analyze --name Tanaka --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readTranscript(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return a.analyze(cmd, orchestrator.Input{Transcript: text, Participant: name})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "participant (employee) name as it prefixes their lines")
	f.StringVarP(&file, "file", "f", "-", "transcript file, - for stdin")
	f.String("format", "", "output format: text|json")
	f.StringP("out", "o", "", "also write the JSON report to this path")
	f.String("report-url", "", "presentation service base URL to post the report to")
	_ = a.v.BindPFlag("output.format", f.Lookup("format"))
	_ = a.v.BindPFlag("output.path", f.Lookup("out"))
	_ = a.v.BindPFlag("report.url", f.Lookup("report-url"))

	return cmd
}

func readTranscript(stdin io.Reader, file string) (string, error) {
	if file == "" || file == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}

func (a *app) analyze(cmd *cobra.Command, in orchestrator.Input) error {
	p := orchestrator.NewPipeline(a.lex, a.log)
	rep, err := p.Run(in)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output.Format == "json" {
		err = orchestrator.EncodeReport(out, rep)
	} else {
		err = renderText(out, rep)
	}
	if err != nil {
		return err
	}

	if path := a.cfg.Output.Path; path != "" {
		if err := orchestrator.WriteReport(path, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		a.log.WithField("path", path).Info("report written")
	}

	if url := a.cfg.Report.URL; url != "" {
		h := clients.NewHTTP(config.DurSeconds(a.cfg.Report.TimeoutSeconds))
		res, err := h.RenderReport(cmd.Context(), url, rep)
		if err != nil {
			return err
		}
		a.log.WithField("status", res.Status).WithField("path", res.Path).Info("report delivered")
	}
	return nil
}
