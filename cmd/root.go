package cmd

import (
	"errors"
	"log"

	"github.com/atsmatch/atsmatch/internal/scoring"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "atsmatch"
)

type Config struct {
	ResumeFile string `mapstructure:"resume-file"`
	JobFile    string `mapstructure:"job-file"`
	// Resume and Job allow pasting extracted entities straight into the
	// config file instead of pointing at JSON documents.
	Resume map[string]any `mapstructure:"resume"`
	Job    map[string]any `mapstructure:"job"`
	// Rules optionally overrides the built-in lookup tables (industry sets,
	// stop words, degree hierarchy). Aggregation weights stay part of the
	// tables but must keep summing to 1.0.
	Rules *scoring.Rules `mapstructure:"rules"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "atsmatch scores how well a resume matches a job description and explains the score",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is atsmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: inputs can arrive entirely via flags.
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

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
