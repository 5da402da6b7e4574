package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/atsmatch/atsmatch/internal/entity"
	"github.com/atsmatch/atsmatch/internal/logger"
	"github.com/atsmatch/atsmatch/internal/report"
	"github.com/atsmatch/atsmatch/internal/scoring"
	"github.com/atsmatch/atsmatch/internal/source"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptRecommendations = "Show recommendations"
	PromptKeywords        = "Show keyword analysis"
	PromptIndustry        = "Show industry keywords"
	PromptPriorities      = "Show improvement priorities"
	PromptDumpToFile      = "Dump result to file"
	PromptExit            = "Exit"

	rawTextPreviewLimit = 200
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{
		PromptRecommendations,
		PromptKeywords,
		PromptIndustry,
		PromptPriorities,
		PromptDumpToFile,
		PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "", "path to the extracted resume entity (json)")
	runCmd.Flags().StringP("job", "J", "", "path to the extracted job description entity (json)")
	runCmd.Flags().BoolP("auto-aprove", "y", false, "print the full report and exit without the interactive menu")

	viper.BindPFlag("resume-file", runCmd.Flags().Lookup("resume"))
	viper.BindPFlag("job-file", runCmd.Flags().Lookup("job"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting atsmatch", zap.String("version", version))

	resume, job, err := loadEntities(config)
	if err != nil {
		logger.Fatal("loading inputs",
			zap.Error(err),
			zap.String("hint", "pass --resume and --job, or set resume-file/job-file or inline resume/job in the configuration file"),
		)
	}

	logger.Debug("inputs loaded",
		zap.String("resume_preview", truncatedPreview(resume.RawText)),
		zap.String("job_preview", truncatedPreview(job.RawText)),
		zap.Int("resume_skills", len(resume.Skills)),
	)

	engine, err := scoring.New(config.Rules, logger)
	if err != nil {
		logger.Fatal("building the scoring engine", zap.Error(err))
	}

	result, err := engine.Analyze(resume, job)
	if err != nil {
		if errors.Is(err, scoring.ErrMissingInput) {
			logger.Fatal("nothing to analyze",
				zap.Error(err),
				zap.String("hint", "both the resume and the job description must carry data"),
			)
		}
		logger.Fatal("analysis failed", zap.Error(err))
	}

	fmt.Print(report.Summary(result))

	if cmd.Flag("auto-aprove").Value.String() == "true" {
		fmt.Println()
		fmt.Print(report.Recommendations(result))
		fmt.Println()
		fmt.Print(report.KeywordAnalysis(result))
		fmt.Println()
		fmt.Print(report.IndustryKeywords(result))
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, result *entity.AnalysisResult, logger *zap.Logger) error {
	switch action {
	case PromptRecommendations:
		fmt.Print(report.Recommendations(result))
		return nil
	case PromptKeywords:
		fmt.Print(report.KeywordAnalysis(result))
		return nil
	case PromptIndustry:
		fmt.Print(report.IndustryKeywords(result))
		return nil
	case PromptPriorities:
		priorities := scoring.ImprovementPriorities(result)
		if len(priorities) == 0 {
			fmt.Println("No focus areas - every component is above its advice threshold.")
			return nil
		}
		for _, p := range priorities {
			fmt.Printf("%s (impact %d): %s\n", p.Area, p.Impact, p.Advice)
		}
		return nil
	case PromptDumpToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// loadEntities resolves the resume and job description from files or inline
// config payloads. Files win over inline payloads.
func loadEntities(config *Config) (*entity.Resume, *entity.JobDescription, error) {
	resume, err := loadResume(config)
	if err != nil {
		return nil, nil, err
	}

	job, err := loadJob(config)
	if err != nil {
		return nil, nil, err
	}

	return resume, job, nil
}

func loadResume(config *Config) (*entity.Resume, error) {
	if config.ResumeFile != "" {
		data, err := source.Load(source.Source{Name: "resume", File: config.ResumeFile})
		if err != nil {
			return nil, err
		}
		return entity.ParseResume(data)
	}

	if len(config.Resume) > 0 {
		return entity.DecodeResume(config.Resume)
	}

	return nil, errors.New("resume is not configured")
}

func loadJob(config *Config) (*entity.JobDescription, error) {
	if config.JobFile != "" {
		data, err := source.Load(source.Source{Name: "job description", File: config.JobFile})
		if err != nil {
			return nil, err
		}
		return entity.ParseJobDescription(data)
	}

	if len(config.Job) > 0 {
		return entity.DecodeJobDescription(config.Job)
	}

	return nil, errors.New("job description is not configured")
}

func truncatedPreview(s string) string {
	return logger.TruncateForLog(s, rawTextPreviewLimit)
}
