package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/SubhamSaiSamal/FlowLogic/internal/config"
	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
)

// app carries state shared by every command.
type app struct {
	out        io.Writer
	configPath string
	logLevel   string

	cfg     config.Config
	logger  *zap.Logger
	printed bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "flowlogic",
		Short: "Step-by-step optimization sandbox",
		Long: `FlowLogic runs the learning algorithms of an interactive ML sandbox headless:
linear and polynomial regression with SGD, Momentum, RMSProp or Adam, k-means
clustering, and 1-D gradient descent over built-in or custom functions.

Each run prints its experiment record as YAML.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides log.level)")

	root.AddCommand(
		a.regressCmd(),
		a.clusterCmd(),
		a.descendCmd(),
		a.evalCmd(),
		versionCmd(out),
	)
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	logger, err := a.cfg.Logger()
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func versionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(out, "FlowLogic %s\n", version)
		},
	}
}

// printYAML writes v to the command output as a YAML document, separating
// it from any document printed before.
func (a *app) printYAML(v any) error {
	if a.printed {
		if _, err := io.WriteString(a.out, "---\n"); err != nil {
			return err
		}
	}
	a.printed = true

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return enc.Close()
}

// source describes where a command reads its data from.
type source struct {
	builtin  string
	seed     int64
	csv      string
	features []string
	label    string
}

func (s *source) bind(cmd *cobra.Command, withLabel bool) {
	cmd.Flags().StringVar(&s.builtin, "dataset", "", "built-in dataset id (default from config)")
	cmd.Flags().Int64Var(&s.seed, "seed", 0, "seed for built-in dataset noise (default from config)")
	cmd.Flags().StringVar(&s.csv, "csv", "", "read data from a CSV file instead of a built-in dataset")
	cmd.Flags().StringSliceVar(&s.features, "features", nil, "CSV feature columns (default: every numerical column but the label)")
	if withLabel {
		cmd.Flags().StringVar(&s.label, "label", "", "CSV label column")
	}
}

// load returns the selected dataset. Built-ins default to id and seed
// from the configuration and must be of the given kind.
func (s *source) load(cmd *cobra.Command, kind dataset.Kind, id string, seed int64) (dataset.Dataset, error) {
	if s.csv == "" {
		if s.builtin != "" {
			id = s.builtin
		}
		if cmd.Flags().Changed("seed") {
			seed = s.seed
		}

		d, err := dataset.Lookup(strings.ToLower(id), seed)
		if err != nil {
			return dataset.Dataset{}, err
		}
		if d.Kind != kind {
			return dataset.Dataset{}, fmt.Errorf("dataset %q is for %s, not %s", d.ID, d.Kind, kind)
		}
		return d, nil
	}

	table, err := dataset.LoadCSV(s.csv)
	if err != nil {
		return dataset.Dataset{}, err
	}

	features := s.features
	if len(features) == 0 {
		for _, name := range table.NumericalColumns() {
			if name != s.label {
				features = append(features, name)
			}
		}
	}
	if len(features) == 0 {
		return dataset.Dataset{}, fmt.Errorf("%s: no numerical feature columns", s.csv)
	}
	return table.Dataset(kind, features, s.label)
}

func (s *source) describe(d dataset.Dataset) string {
	if s.csv != "" {
		return s.csv
	}
	return d.ID
}
