package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "loan-approval",
	Short:         "Route loan requests through the approval chain",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to the configuration yaml file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Command failed: %+v", err)
	}
}
