package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "trading-signal-bot",
	Short: "Telegram trading-signal subscription bot",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
