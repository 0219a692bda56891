package cli

import (
	"context"
	"fmt"

	"jobsprint/internal/ats"
	"jobsprint/internal/common"
	"jobsprint/internal/config"
	"jobsprint/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume for ATS compatibility",
	Long: `Score a resume against applicant tracking system heuristics.
The command takes one argument: the path to the resume file. The score
covers section structure, keyword coverage, bullet quality, contact
completeness, and readability. Use --role to score keyword coverage
against a specific role profile.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig
var scoreRole string

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role for keyword scoring (default from config)")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})

	// Add completion for role flag
	_ = scoreCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		analyzer := ats.NewAnalyzer(config.GetLoadedRoles())
		return analyzer.Roles(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scoreConfig.MaxFileSize = cfg.App.MaxFileSize

	role := scoreRole
	if role == "" {
		role = cfg.Analysis.DefaultRole
	}

	analyzer := ats.NewAnalyzer(config.GetLoadedRoles())

	createInput := func(contents []string) (types.ScoreRequest, error) {
		if len(contents) != 1 {
			return types.ScoreRequest{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ScoreRequest{
			Text: contents[0],
			Role: role,
		}, nil
	}

	logDetails := func(input types.ScoreRequest, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.Text),
			"role", input.Role,
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input types.ScoreRequest) (types.AtsResult, error) {
		return analyzer.AnalyzeResume(input), nil
	}

	err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
