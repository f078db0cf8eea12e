package cli

import (
	"github.com/mgpai22/vtt/internal/config"
	"github.com/mgpai22/vtt/internal/logging"
	"github.com/mgpai22/vtt/pkg/webvtt"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     = logging.NewNop()
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "vtt",
	Short: "Inspect and validate WebVTT subtitle files",
	Long: `vtt parses WebVTT subtitle documents and reports the cues they contain.

Blocks that are not cues (comments, malformed timing lines) are skipped.
STYLE and REGION blocks before the first cue are not supported.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		Bool("skip-unsupported", false, "Skip STYLE and REGION blocks instead of failing")
}

func parseOptions(cmd *cobra.Command) []webvtt.Option {
	opts := []webvtt.Option{webvtt.WithLogger(logger.SugaredLogger)}

	skip := cfg.Parse.SkipUnsupported
	if cmd.Flags().Changed("skip-unsupported") {
		skip, _ = cmd.Flags().GetBool("skip-unsupported")
	}
	if skip {
		opts = append(opts, webvtt.WithSkipUnsupported())
	}
	return opts
}
