package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/config"
	"github.com/katalvlaran/graphpoet/logging"
	"github.com/katalvlaran/graphpoet/poet"
	"github.com/katalvlaran/graphpoet/render"
)

// app carries flag values and the state resolved in PersistentPreRunE.
type app struct {
	configPath string
	corpus     string
	logLevel   string
	logFormat  string
	highlight  bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd wires the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "graphpoet",
		Short: "Insert bridge words into text using a corpus affinity graph",
		Long: `graphpoet reads a corpus, counts how often each word follows another,
and uses those counts to insert a bridge word between adjacent input words.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML configuration file")
	flags.StringVar(&a.corpus, "corpus", "", "corpus file (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	flags.StringVar(&a.logFormat, "log-format", "", "console|json (overrides config)")

	poemCmd := &cobra.Command{
		Use:   "poem [words...]",
		Short: "Compose a poem from the arguments, or from stdin when none are given",
		RunE:  a.runPoem,
	}
	poemCmd.Flags().BoolVar(&a.highlight, "highlight", false, "style bridge words (overrides config)")

	bridgeCmd := &cobra.Command{
		Use:   "bridge <from> <to>",
		Short: "Show the best bridge word between two words",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runBridge,
	}

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "Print statistics and a dump of the affinity graph",
		Args:  cobra.NoArgs,
		RunE:  a.runGraph,
	}

	rootCmd.AddCommand(poemCmd, bridgeCmd, graphCmd)

	return rootCmd
}

// setup resolves configuration (file, then flags), validates the merged
// result once and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Parse(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		cfg.Corpus = a.corpus
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Lookup("highlight") != nil && flags.Changed("highlight") {
		cfg.Output.Highlight = a.highlight
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("cmd", cmd.Name()))

	return nil
}

func (a *app) loadPoet() (*poet.Poet, error) {
	p, err := poet.NewFromFile(a.cfg.Corpus, poet.WithLogger(a.logger))
	if err != nil {
		a.logger.Error("corpus load failed", zap.String("corpus", a.cfg.Corpus), zap.Error(err))
		return nil, err
	}
	a.logger.Info("corpus loaded",
		zap.String("corpus", a.cfg.Corpus),
		zap.Int("words", p.CorpusWords()),
	)

	return p, nil
}

func (a *app) runPoem(cmd *cobra.Command, args []string) error {
	p, err := a.loadPoet()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		input = string(data)
	}

	tokens := p.Compose(input)
	out := render.Plain(tokens)
	if a.cfg.Output.Highlight {
		out = render.Highlight(tokens, render.BridgeStyle(a.cfg.Output.Color))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}

func (a *app) runBridge(cmd *cobra.Command, args []string) error {
	p, err := a.loadPoet()
	if err != nil {
		return err
	}

	word, score, ok := p.Bridge(args[0], args[1])
	if !ok {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "no bridge between %q and %q\n", args[0], args[1])
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (score %d)\n", word, score)

	return err
}

func (a *app) runGraph(cmd *cobra.Command, args []string) error {
	p, err := a.loadPoet()
	if err != nil {
		return err
	}

	g := p.Graph()
	stats := g.Stats()
	w := cmd.OutOrStdout()
	if _, err = fmt.Fprintf(w, "words: %d\nvertices: %d\nedges: %d\ntotal weight: %d\nmax weight: %d\n",
		p.CorpusWords(), stats.VertexCount, stats.EdgeCount, stats.TotalWeight, stats.MaxWeight); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, p)

	return err
}
