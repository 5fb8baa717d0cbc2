package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/cv-extractor/internal/document"
	"github.com/spigell/cv-extractor/internal/logger"
	"github.com/spigell/cv-extractor/internal/resume"
	"github.com/spigell/cv-extractor/internal/schema"
	"github.com/spigell/cv-extractor/internal/skills"
	"github.com/spigell/cv-extractor/internal/taxonomy"
)

const (
	PromptPrint        = "Print"
	PromptDump         = "Dump to files"
	PromptSkillsReport = "Skills report"
	PromptNo           = "No"
	previewLength      = 80
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What to do with the results?",
	Items: []string{PromptPrint, PromptDump, PromptSkillsReport, PromptNo},
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Extract structured candidate data from resume documents",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolP("auto-approve", "y", false, "do not ask what to do with the results")
	parseCmd.Flags().StringP("out", "o", "", "directory to dump results to. Default is a temporary file.")
	parseCmd.Flags().Bool("validate", false, "validate every result against the output schema")
	parseCmd.Flags().IntP("concurrency", "c", 4, "number of documents parsed at once")

	viper.BindPFlag("concurrency", parseCmd.Flags().Lookup("concurrency"))
}

// parse is the main command for the cli.
func parse(cmd *cobra.Command, paths []string) {
	ctx := cmd.Context()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-extractor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	extractor := newExtractor(config, logger)
	parser := resume.New(extractor, newMatcher(config, logger), logger)

	docs, err := parseAll(ctx, parser, paths, config.Concurrency, logger)
	if err != nil {
		logger.Fatal("parsing documents", zap.Error(err))
	}

	logger.Info("parsed documents",
		zap.Int("count", docs.Len()),
		zap.Strings("scanned", docs.Scanned()),
	)

	if cmd.Flag("validate").Value.String() == "true" {
		if err := validateAll(docs, logger); err != nil {
			logger.Fatal("validating results", zap.Error(err))
		}
	}

	outDir := cmd.Flag("out").Value.String()

	if cmd.Flag("auto-approve").Value.String() == "true" {
		action := PromptPrint
		if outDir != "" {
			action = PromptDump
		}
		if err := handleAction(action, docs, config, outDir, logger, os.Stdout); err != nil && !errors.Is(err, errExit) {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, docs, config, outDir, logger, os.Stdout); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, docs *resume.Documents, config *Config, outDir string, logger *zap.Logger, out io.Writer) error {
	switch action {
	case PromptPrint:
		return printDocuments(out, docs, config.Format)
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptSkillsReport:
		pretty, _ := json.MarshalIndent(docs.ReportBySkill(), "", "  ")
		logger.Info(string(pretty), zap.Int("documents count", docs.Len()))
		return nil
	case PromptDump:
		if outDir == "" {
			filename, err := docs.DumpToTmpFile(config.Format)
			if err != nil {
				return fmt.Errorf("dump results to file: %w", err)
			}
			logger.Info("dumping result to file", zap.String("filename", filename))
			return nil
		}

		filenames, err := docs.DumpToDir(outDir, config.Format)
		if err != nil {
			return fmt.Errorf("dump results to %s: %w", outDir, err)
		}
		logger.Info("dumping results to directory", zap.String("dir", outDir), zap.Strings("filenames", filenames))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// printDocuments prints a single result as is and several results together with
// their paths.
func printDocuments(out io.Writer, docs *resume.Documents, format string) error {
	if docs.Len() == 1 {
		return resume.Encode(out, docs.Items[0].Result, format)
	}
	return resume.Encode(out, docs.Items, format)
}

func newExtractor(config *Config, logger *zap.Logger) *document.Extractor {
	return document.NewExtractor(logger,
		document.WithMaxFileSize(config.MaxFileSize),
		document.WithScannedThreshold(config.ScannedThreshold),
	)
}

func newMatcher(config *Config, logger *zap.Logger) *skills.Matcher {
	tax := taxonomy.Load(config.Taxonomy, logger)
	logger.Debug("loaded skill taxonomy",
		zap.String("file", config.Taxonomy),
		zap.Strings("categories", tax.Categories()),
		zap.Int("skills", tax.Len()),
	)
	return skills.NewMatcher(tax)
}

// parseAll parses every path with at most limit documents in flight. Results keep
// the order of paths.
func parseAll(ctx context.Context, parser *resume.Parser, paths []string, limit int, base *zap.Logger) (*resume.Documents, error) {
	docs := &resume.Documents{Items: make([]*resume.Document, len(paths))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
			docLogger := logger.WithDocumentFields(base, path, format)

			result, err := parser.Parse(ctx, path)
			if err != nil {
				return err
			}
			docs.Items[i] = &resume.Document{Path: path, Result: result}

			docLogger.Info("parsed document",
				zap.Bool("scanned", result.IsScanned()),
				zap.Float64("overall", result.Overall()),
			)
			docLogger.Debug("extracted text", zap.String("preview", logger.TruncateForLog(result.Text(), previewLength)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func validateAll(docs *resume.Documents, logger *zap.Logger) error {
	invalid := 0
	for _, doc := range docs.Items {
		if err := schema.Validate(doc.Result); err != nil {
			invalid++
			logger.Error("result does not match the schema", zap.String("path", doc.Path), zap.Error(err))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d results are invalid", invalid, docs.Len())
	}
	return nil
}
