package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-approval/approval"
)

func TestPrintOutput_Stages(t *testing.T) {
	rows := stageRows(approval.DefaultStages())

	var yamlOut bytes.Buffer
	require.NoError(t, printOutput(&yamlOut, outputYAML, rows))
	assert.Contains(t, yamlOut.String(), "- name: junior\n  min: 0\n  max: 1000\n")
	assert.Contains(t, yamlOut.String(), "- name: director\n  min: 10000\n")
	assert.NotContains(t, yamlOut.String(), "Inf")

	var jsonOut bytes.Buffer
	require.NoError(t, printOutput(&jsonOut, outputJSON, rows))
	assert.Contains(t, jsonOut.String(), `"name": "senior"`)

	assert.Error(t, printOutput(&bytes.Buffer{}, "xml", rows))
}

func TestDemoCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"demo"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "=== Approval chain ===")
	assert.Contains(t, got, "approved by junior")
	assert.Contains(t, got, "approved by middle")
	assert.Contains(t, got, "approved by senior")
	assert.Contains(t, got, "approved by director")
	assert.NotContains(t, got, "rejected")
}
