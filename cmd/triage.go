package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/naka-gawa/tpm-agent/internal/actions"
	"github.com/naka-gawa/tpm-agent/internal/config"
	"github.com/naka-gawa/tpm-agent/internal/gateway"
	"github.com/naka-gawa/tpm-agent/internal/usecase"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Classifies an issue and posts an analysis comment to it",
	Long: `Classifies the issue given by the action inputs, renders a response comment
and posts it to the issue. The outcome is written to the step outputs "result" and "status".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		v := config.NewViper()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
		return runTriage(ctx, v, logger, cmd.OutOrStdout())
	},
}

// runTriage is the host side of the pipeline: it loads inputs, runs the processor
// and reports the outcome through the step outputs. Any error is also returned so
// the process exits non-zero.
func runTriage(ctx context.Context, v *viper.Viper, logger *zap.Logger, stdout io.Writer) error {
	commands := actions.NewCommands(stdout)
	output := actions.NewOutputWriter(v.GetString(config.KeyOutputFile))

	logger.Info("Starting TPM Agent")

	result, err := triage(ctx, v, logger, commands)
	if err != nil {
		logger.Error("Error occurred during issue processing", zap.Error(err))
		commands.Error(err.Error())
		if outErr := writeOutputs(output, "Error: "+err.Error(), statusError); outErr != nil {
			logger.Error("Failed to write step outputs", zap.Error(outErr))
		}
		return err
	}

	logger.Info("Issue processing completed", zap.String("result", result))
	return writeOutputs(output, result, statusSuccess)
}

func triage(ctx context.Context, v *viper.Viper, logger *zap.Logger, commands *actions.Commands) (string, error) {
	inputs, err := config.Load(v)
	if err != nil {
		return "", err
	}
	logger.Info("Processing issue",
		zap.String("repository", inputs.Repository),
		zap.Int("issue", inputs.IssueNumber),
	)

	var opts []gateway.Option
	if inputs.APIURL != "" {
		opts = append(opts, gateway.WithBaseURL(inputs.APIURL))
	}
	githubGateway, err := gateway.NewGitHubGateway(inputs.GitHubToken, logger, opts...)
	if err != nil {
		return "", err
	}

	processor := usecase.NewProcessor(githubGateway, logger,
		usecase.WithLabels(inputs.AddLabels),
		usecase.WithCommands(commands),
	)
	return processor.Process(ctx, usecase.Request{
		IssueContent: inputs.IssueContent,
		Repository:   inputs.Repository,
		IssueNumber:  inputs.IssueNumber,
	})
}

func writeOutputs(output *actions.OutputWriter, result, status string) error {
	if err := output.Set("result", result); err != nil {
		return err
	}
	return output.Set("status", status)
}

func init() {
	rootCmd.AddCommand(triageCmd)
	triageCmd.Flags().String(config.KeyIssueContent, "", "Issue text to analyze (env: INPUT_ISSUE_CONTENT)")
	triageCmd.Flags().String(config.KeyRepository, "", "Target repository as owner/name (env: INPUT_REPOSITORY)")
	triageCmd.Flags().String(config.KeyIssueNumber, "", "Issue number to comment on (env: INPUT_ISSUE_NUMBER)")
	triageCmd.Flags().Bool(config.KeyAddLabels, false, "Label the issue with its detected type (env: INPUT_ADD_LABELS)")
	triageCmd.Flags().String(config.KeyOutputFile, "", "File step outputs are appended to (env: GITHUB_OUTPUT)")
	triageCmd.Flags().String(config.KeyAPIURL, "", "GitHub API base URL (env: GITHUB_API_URL)")
}
