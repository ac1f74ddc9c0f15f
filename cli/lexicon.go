package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mosuYamaoka/1on1checker/lexicon"
)

func newLexiconCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Print the active lexicon as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var v any = a.lex
			if category != "" {
				c, err := lexicon.ParseCategory(category)
				if err != nil {
					return err
				}
				l, err := a.lex.Lexicon(c)
				if err != nil {
					return err
				}
				v = l.Terms()
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only print one category: positive|negative|filler|job_search")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("1on1checker v%s\n", Version)
		},
	}
}
