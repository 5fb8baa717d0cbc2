package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-extractor/internal/document"
	"github.com/spigell/cv-extractor/internal/logger"
	"github.com/spigell/cv-extractor/internal/resume"
	"github.com/spigell/cv-extractor/internal/scoring"
	"github.com/spigell/cv-extractor/internal/source"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description by keyword overlap",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "resume document or '-' for plain text on stdin")
	scoreCmd.Flags().String("job", "", "file with the job description or '-' for stdin")
	scoreCmd.Flags().String("job-text", "", "inline job description")
	scoreCmd.Flags().StringSliceP("keyword", "k", nil, "keyword to track. Can be repeated. Default is the built-in list.")

	scoreCmd.MarkFlagRequired("resume")
}

func score(cmd *cobra.Command) {
	ctx := cmd.Context()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumePath := cmd.Flag("resume").Value.String()
	resumeText, err := loadResume(ctx, newExtractor(config, logger), resumePath, logger)
	if err != nil {
		logger.Fatal("loading resume", zap.Error(err))
	}

	jobText, err := source.Load(source.Source{
		Name:  "job description",
		Value: cmd.Flag("job-text").Value.String(),
		File:  cmd.Flag("job").Value.String(),
	})
	if err != nil {
		logger.Fatal(
			"loading job description",
			zap.Error(err),
			zap.String("hint", "pass --job with a file or --job-text with the text"),
		)
	}

	keywords, _ := cmd.Flags().GetStringSlice("keyword")
	if len(keywords) == 0 && config.Score != nil {
		keywords = config.Score.Keywords
	}

	result := scoring.Score(resumeText, jobText, keywords)
	logger.Info("scored resume",
		zap.Float64("score", result.Score),
		zap.Int("matched", len(result.MatchedSkills)),
		zap.Int("missing", len(result.MissingSkills)),
	)

	if err := resume.Encode(os.Stdout, result, config.Format); err != nil {
		logger.Fatal("printing score", zap.Error(err))
	}
}

// loadResume returns plain text from stdin for "-" and the extracted document text
// otherwise.
func loadResume(ctx context.Context, extractor *document.Extractor, path string, logger *zap.Logger) (string, error) {
	if path == "-" {
		return source.Load(source.Source{Name: "resume", File: path})
	}

	text, err := extractor.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	if text.LikelyScanned {
		logger.Warn("resume looks like a scanned document, the score may be incomplete", zap.String("path", path))
	}
	return text.Content, nil
}
