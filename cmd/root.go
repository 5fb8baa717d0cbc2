package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/cv-extractor/internal/document"
	"github.com/spigell/cv-extractor/internal/resume"
)

const (
	app       = "cv-extractor"
	envPrefix = "CV_EXTRACTOR"
)

type Config struct {
	Taxonomy         string       `mapstructure:"taxonomy"`
	ScannedThreshold int          `mapstructure:"scanned-threshold" validate:"gte=1"`
	MaxFileSize      int64        `mapstructure:"max-file-size" validate:"gte=1"`
	Concurrency      int          `mapstructure:"concurrency" validate:"gte=1,lte=64"`
	Format           string       `mapstructure:"format" validate:"oneof=json yaml"`
	Score            *ScoreConfig `mapstructure:"score"`
}

type ScoreConfig struct {
	Keywords []string `mapstructure:"keywords" validate:"dive,required"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-extractor is a simple cli for extracting structured candidate data from resumes",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-extractor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("taxonomy", "t", "", "skill taxonomy file (yaml or json). Default is the built-in catalog.")
	rootCmd.PersistentFlags().StringP("format", "f", resume.FormatJSON, "output format: json or yaml")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("taxonomy", rootCmd.PersistentFlags().Lookup("taxonomy"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func setDefaults() {
	viper.SetDefault("taxonomy", "")
	viper.SetDefault("scanned-threshold", document.DefaultScannedThreshold)
	viper.SetDefault("max-file-size", document.DefaultMaxFileSize)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("format", resume.FormatJSON)
	viper.SetDefault("score.keywords", []string{})
}

func initConfig() {
	// Only the extraction commands read the config.
	if parseCmd.CalledAs() == "" && scoreCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The default config file is optional, an explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if err := validator.New().Struct(config); err != nil {
		return config, err
	}

	return config, nil
}
