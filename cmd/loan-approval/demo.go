package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loan-approval/service"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample requests through the chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), conf)
		if err != nil {
			return err
		}
		defer a.close()

		results, err := a.service.RunSamples(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== Approval chain ===")
		for i, req := range service.SampleRequests() {
			r := results[i]
			if r.Decision.Approved() {
				fmt.Fprintf(out, "%-8s %10.2f  %-22s approved by %s\n", req.CustomerName, req.Amount, req.Purpose, r.Stage)
				continue
			}
			fmt.Fprintf(out, "%-8s %10.2f  %-22s rejected\n", req.CustomerName, req.Amount, req.Purpose)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
