// Package cli defines the gazex command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mpopescu/gazex/internal/model"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gazex",
	Short: "Gazex - structured company records from Romanian official-gazette pages",
	Long: `Gazex recovers structured company registration data from Part IV of the
Romanian Official Gazette (Monitorul Oficial, Partea a IV-a).

It works in three stages, each usable on its own:

  extract   pull per-company articles out of gazette portal pages,
            including the print_r dumps embedded in modal dialogs
  segment   split rendered bulletin pages into per-company notices and
            recover identifiers (CUI, registry number, EUID, CAEN) by
            pattern matching
  parse     turn segmented notices into company records, optionally
            escalating hard cases to an LLM provider

Every stage is batch-oriented: one bad input file is reported and
skipped, never fatal to the run.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gazex v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.gazex/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "log file path (overrides config)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.gazex")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match GAZEX_*
	viper.SetEnvPrefix("GAZEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the runtime configuration: defaults, then the
// YAML config file, then the global flags.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if file := viper.ConfigFileUsed(); file != "" {
		data, err := os.ReadFile(file)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config %s: %v\n", file, err)
				cfg = model.DefaultConfig()
			}
		}
	}

	cfg.Output.Verbose = verbose
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg
}
