package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/tpm-agent/internal/usecase"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classifies issue text locally and prints the analysis as JSON",
	Long: `Runs the same keyword classification as "triage" without contacting GitHub.
With --render the comment that would be posted is printed instead of the JSON analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		render, _ := cmd.Flags().GetBool("render")
		return runClassify(cmd.OutOrStdout(), text, render)
	},
}

func runClassify(w io.Writer, text string, render bool) error {
	analysis := usecase.Classify(text)
	if render {
		_, err := fmt.Fprintln(w, usecase.Render(analysis, text))
		return err
	}

	// Marshal the analysis into a pretty-printed JSON string.
	jsonData, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringP("text", "t", "", "Issue text to classify (required)")
	classifyCmd.MarkFlagRequired("text")
	classifyCmd.Flags().Bool("render", false, "Print the rendered comment instead of the analysis")
}
