package cmd

import (
	"fmt"

	"github.com/m-calder/crewctl/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	scheduleFile string
	appConfig    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "crewctl",
	Short: "Crew operations MCP server",
	Long: "crewctl exposes crew shift roster, weather and natural-event lookup tools\n" +
		"to MCP clients over stdio.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override roster location from flag
		if scheduleFile != "" {
			appConfig.ScheduleFile = scheduleFile
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&scheduleFile, "schedule", "", "schedule CSV path")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
