package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lom209/logsplit/internal/discover"
)

var (
	cfgFile   string
	inputPath string
	outputDir string
	severity  string
	startStr  string
	endStr    string
	reportFmt string
)

// rootCmd is the whole command surface; logsplit is a single-purpose tool.
var rootCmd = &cobra.Command{
	Use:   "logsplit",
	Short: "Split log files by severity level or timestamp range",
	Long: `Logsplit extracts lines from plain-text log files into separate output
files, filtered by a minimum severity level, an inclusive timestamp
range, or both.

Examples:
  logsplit --input /var/log --severity INFO --output ./filtered
  logsplit --input app.log --start "2025-06-28 09:30:00" --end "2025-06-28 10:30:00" --output ./window
  logsplit -i /var/log -s ERROR --start "2025-06-28 09:00:00" --end "2025-06-28 18:00:00" -o ./critical`,
	RunE: runSplit,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.logsplit.yaml)")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input log file or directory (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for filtered files (required)")
	rootCmd.Flags().StringVarP(&severity, "severity", "s", "", "minimum severity to include (TRACE, DEBUG, INFO, WARN, WARNING, ERROR, FATAL, CRITICAL)")
	rootCmd.Flags().StringVar(&startStr, "start", "", `range start, e.g. "2025-06-28 09:30:00"`)
	rootCmd.Flags().StringVar(&endStr, "end", "", `range end, e.g. "2025-06-28 10:30:00"`)
	rootCmd.Flags().StringVarP(&reportFmt, "format", "f", "", "report format: text, json")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".logsplit")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("extensions", discover.DefaultExtensions)
	viper.SetDefault("format", "text")

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
