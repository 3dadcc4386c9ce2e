package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"voxscribe/internal/chunker"
	"voxscribe/internal/config"
	"voxscribe/internal/downloader"
	"voxscribe/internal/logger"
	"voxscribe/internal/models"
	"voxscribe/internal/pipeline"
	"voxscribe/internal/router"
	"voxscribe/internal/summarizer"
	"voxscribe/internal/transcriber"
	"voxscribe/pkg/executor"
)

var (
	flagConfig    string
	flagSummarize bool
	flagModel     string
	flagDocx      bool
)

var rootCmd = &cobra.Command{
	Use:   "voxscribe [inputs...]",
	Short: "Transcribe local audio files and YouTube links, optionally summarize",
	Long: `Voxscribe accepts local .mp3 files and YouTube links, produces text
transcripts via OpenAI's speech recognition, and optionally a summary via a
chat model (OpenAI GPT or Google Gemini).`,
	Example: `  voxscribe talk.mp3
  voxscribe --summarize=false lecture.mp3
  voxscribe --gpt-model=gpt-4 "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  voxscribe a.mp3 b.mp3 "https://youtu.be/tAP1eZYEuKA"`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (RunE -> flagChanged -> rootCmd).
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		r := buildRouter(cfg)
		if failed := r.Dispatch(cmd.Context(), args); failed > 0 {
			return fmt.Errorf("%d of %d inputs failed", failed, len(args))
		}
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "optional YAML config file")
	pf.BoolVar(&flagSummarize, "summarize", true, "produce a summary of each transcript")
	pf.StringVar(&flagModel, "gpt-model", models.DefaultAlias,
		"chat model alias ("+strings.Join(models.Aliases(), "|")+")")
	pf.BoolVar(&flagDocx, "docx", false, "additionally export transcript and summary as .docx")
}

// flagChanged reports whether a persistent flag was given explicitly. The
// watch subcommand parses into the same shared pflag.Flag values, so the
// root command's flag set is authoritative for both entry points.
func flagChanged(name string) bool {
	return rootCmd.PersistentFlags().Changed(name)
}

// buildConfig merges the config file, flags, and environment into one
// immutable Config, failing fast on a bad model alias or missing credential
// before any input is touched.
func buildConfig() (*config.Config, error) {
	// Best-effort .env loading; credentials may come from the shell too.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	cfg.Summarize = flagSummarize
	// A flag given on the command line beats the config file, even when it
	// repeats the default; otherwise the file value (already defaulted by
	// Validate) stands.
	if flagChanged("gpt-model") {
		cfg.Chat.Model = flagModel
	}
	if flagChanged("docx") {
		cfg.Output.Docx = flagDocx
	}

	model, err := models.Resolve(cfg.Chat.Model)
	if err != nil {
		return nil, err
	}

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	if cfg.Summarize && model.Provider == models.ProviderGemini {
		cfg.GeminiKey = os.Getenv("GEMINI_API_KEY")
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set (required for the %q alias)", cfg.Chat.Model)
		}
	}

	return cfg, nil
}

func buildPipeline(cfg *config.Config) (pipeline.Pipeline, logger.Logger) {
	log := logger.New(cfg.Logging.Level)
	exec := executor.New()

	ch := chunker.New(cfg, exec, log)
	tr := transcriber.New(cfg, log)
	sm := summarizer.New(cfg, log)

	return pipeline.New(cfg, ch, tr, sm, log), log
}

func buildRouter(cfg *config.Config) *router.Router {
	pl, log := buildPipeline(cfg)
	dl := downloader.New(log)
	return router.New(cfg, dl, pl, log)
}
