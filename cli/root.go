// Package cli wires the scoring pipeline into the 1on1checker command line.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mosuYamaoka/1on1checker/config"
	"github.com/mosuYamaoka/1on1checker/lexicon"
)

var Version = "0.1.0"

// app is the state shared by all subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Root
	log     *logrus.Logger
	lex     *lexicon.Registry
}

func NewRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:           "1on1checker",
		Short:         "Score a 1on1 transcript for employee flight risk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default config/$CONFIG_ENV/config.yaml or ./config.yaml)")
	pf.String("log-level", "", "log level: debug|info|warn|error")
	pf.String("lexicon", "", "YAML lexicon file replacing the built-in Japanese lexicon")
	_ = a.v.BindPFlag("app.log_level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("lexicon.file", pf.Lookup("lexicon"))

	root.AddCommand(newAnalyzeCmd(a), newLexiconCmd(a), newVersionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Read(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(lvl)

	if cfg.Lexicon.File == "" {
		a.lex = lexicon.Default()
		return nil
	}
	if a.lex, err = lexicon.LoadFile(cfg.Lexicon.File); err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	a.log.WithField("file", cfg.Lexicon.File).Info("custom lexicon loaded")
	return nil
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
