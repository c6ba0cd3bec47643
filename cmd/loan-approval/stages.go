package main

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"loan-approval/approval"
	httpLayer "loan-approval/http"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Print the configured approval stages",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		chain, err := conf.Chain()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		return printOutput(cmd.OutOrStdout(), format, stageRows(chain.Stages()))
	},
}

type stageRow struct {
	Name string   `json:"name" yaml:"name"`
	Min  float64  `json:"min" yaml:"min"`
	Max  *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func stageRows(stages []approval.Stage) []stageRow {
	return lo.Map(httpLayer.NewStageViews(stages), func(v httpLayer.StageView, _ int) stageRow {
		return stageRow(v)
	})
}

func init() {
	rootCmd.AddCommand(stagesCmd)

	stagesCmd.Flags().StringP("output", "o", outputYAML, "output format: json or yaml")
}
