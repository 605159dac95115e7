// Command betadiv computes a beta diversity distance matrix from a sample
// table and, for phylogenetic metrics, a Newick tree.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nozzle/betadiv"
	"github.com/nozzle/betadiv/tree"
)

var (
	cfgFile  string
	logLevel string
	version  = "0.1.0" // Will be set during build
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cobra.OnInitialize(initConfig)

	rootCmd := &cobra.Command{
		Use:   "betadiv",
		Short: "betadiv - pairwise beta diversity",
		Long: `betadiv computes pairwise distances between samples of an OTU table,
including the phylogenetic UniFrac metrics.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.betadiv.yaml or $HOME/.betadiv.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newComputeCmd())
	rootCmd.AddCommand(newMetricsCmd())
	return rootCmd
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".betadiv")
	}

	viper.SetEnvPrefix("BETADIV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func newComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a distance matrix",
		Long: `Compute reads a tab-separated table whose header holds the OTU ids and
whose rows start with a sample id, and writes the distance matrix between
all samples in tab-separated lsmat layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("table", "", "sample table (required)")
	flags.String("metric", "braycurtis", "distance metric (see 'betadiv metrics')")
	flags.String("tree", "", "newick tree file (phylogenetic metrics)")
	flags.Bool("normalized", false, "normalize weighted UniFrac")
	flags.Int("workers", 0, "number of workers (0 = all cores)")
	flags.StringP("output", "o", "", "output file (default stdout)")

	for _, name := range []string{"table", "metric", "tree", "normalized", "workers", "output"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

func runCompute(stdout io.Writer) error {
	logger, err := newLogger(viper.GetString("log_level"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tablePath := viper.GetString("table")
	if tablePath == "" {
		return fmt.Errorf("--table is required")
	}

	tbl, err := loadTable(tablePath)
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}
	logger.Info("loaded table",
		zap.String("path", tablePath),
		zap.Int("samples", len(tbl.sampleIDs)),
		zap.Int("otus", len(tbl.otuIDs)))

	metricName := viper.GetString("metric")
	opts := betadiv.DefaultOptions()
	opts.Logger = logger
	opts.Normalized = viper.GetBool("normalized")
	opts.NumWorkers = viper.GetInt("workers")

	if treePath := viper.GetString("tree"); treePath != "" {
		t, err := loadTree(treePath)
		if err != nil {
			return fmt.Errorf("failed to load tree: %w", err)
		}
		opts.Tree = t
		opts.OTUIDs = tbl.otuIDs
		logger.Info("loaded tree", zap.String("path", treePath), zap.Int("nodes", t.Len()))
	} else if betadiv.IsPhylogenetic(metricName) {
		return fmt.Errorf("metric %s requires --tree", metricName)
	}

	dm, err := betadiv.Compute(betadiv.Named(metricName), tbl.counts, tbl.sampleIDs, opts)
	if err != nil {
		return err
	}

	out := stdout
	if path := viper.GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := dm.Write(out); err != nil {
		return fmt.Errorf("failed to write distance matrix: %w", err)
	}

	logger.Info("wrote distance matrix", zap.String("metric", metricName))
	return nil
}

func loadTree(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tree.ReadNewick(f)
}

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the available metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range betadiv.Metrics() {
				suffix := ""
				if betadiv.IsPhylogenetic(name) {
					suffix = "\t(requires --tree)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, suffix)
			}
			return nil
		},
	}
}
