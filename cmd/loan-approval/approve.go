package main

import (
	"github.com/spf13/cobra"

	"loan-approval/domain"
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Evaluate a single loan request",
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

		flags := cmd.Flags()
		amount, _ := flags.GetFloat64("amount")
		customer, _ := flags.GetString("customer")
		purpose, _ := flags.GetString("purpose")
		format, _ := flags.GetString("output")

		result, err := a.service.Approve(cmd.Context(), domain.LoanRequest{
			Amount:       amount,
			CustomerName: customer,
			Purpose:      purpose,
		})
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), format, result)
	},
}

func init() {
	rootCmd.AddCommand(approveCmd)

	approveCmd.Flags().Float64("amount", 0, "requested loan amount")
	approveCmd.Flags().String("customer", "", "customer name")
	approveCmd.Flags().String("purpose", "", "purpose of the loan")
	approveCmd.Flags().StringP("output", "o", outputJSON, "output format: json or yaml")
	_ = approveCmd.MarkFlagRequired("amount")
}
