package cli

import (
	"context"
	"fmt"

	"jobsprint/internal/common"
	"jobsprint/internal/parser"
	"jobsprint/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Extract structured fields from a resume",
	Long: `Extract contact details, profile links, and experience from a resume.
The command takes one argument: the path to the resume file. Plain text,
Markdown, PDF, and DOCX files are supported. Each extracted field is
reported with a confidence value.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	parseConfig.MaxFileSize = cfg.App.MaxFileSize

	createInput := func(contents []string) (types.ParseRequest, error) {
		if len(contents) != 1 {
			return types.ParseRequest{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ParseRequest{Text: contents[0]}, nil
	}

	logDetails := func(input types.ParseRequest, cfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(input.Text),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, input types.ParseRequest) (*types.ResumeFields, error) {
		return parser.ParseResumeText(input.Text)
	}

	err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}
