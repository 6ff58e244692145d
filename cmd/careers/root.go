package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abbababa/careers/internal/config"
	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/notifier"
	"github.com/abbababa/careers/internal/ratelimit"
	"github.com/abbababa/careers/internal/retry"
	"github.com/abbababa/careers/internal/translate"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "careers",
	Short: "Multilingual job board content pipeline",
	Long: "careers generates dated batches of job postings, keeps six translated mirrors in sync " +
		"through an LLM gateway, and retires batches when roles are filled.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; values already in the environment win.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return model.InvalidError("load .env", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: CAREERS_CONFIG env var or ./careers.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > CAREERS_CONFIG env var > "./careers.yaml".
// Only the implicit default may be missing.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path, false)
	}
	if env := os.Getenv("CAREERS_CONFIG"); env != "" {
		return config.Load(env, false)
	}
	return config.Load("careers.yaml", true)
}

// setupLogger returns the text logger every command writes to. Each
// invocation gets its own run_id so interleaved runs can be told apart.
func setupLogger(dbg bool, cmd *cobra.Command) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).
		With("run_id", uuid.NewString(), "cmd", cmd.Name())
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// lockStore takes the content lock for a mutating command.
func lockStore(store *content.Store) (func(), error) {
	unlock, err := store.Lock()
	if errors.Is(err, content.ErrLocked) {
		return nil, model.UnavailableError(err.Error(), nil)
	}
	return unlock, err
}

// validateDate rejects a non-empty flag value that is not YYYY-MM-DD.
func validateDate(flag, v string) error {
	if v == "" {
		return nil
	}
	if _, err := model.ParseDate(v); err != nil {
		return model.UsageError("--%s must be YYYY-MM-DD, got %q", flag, v)
	}
	return nil
}

func today() string {
	return model.FormatDate(time.Now().UTC())
}

func newRetrier(logger *slog.Logger) *retry.Retrier {
	return retry.New(3, 2*time.Second, logger)
}

// setupNotifier builds the announcement chain: IndexNow when a key is set,
// plus the configured extra channel.
func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	retrier := newRetrier(logger)
	var chain notifier.Multi
	if cfg.IndexNow.Key != "" {
		chain = append(chain, notifier.NewIndexNowNotifier(cfg.IndexNow.Endpoint, cfg.Site.Host,
			cfg.IndexNow.Key, cfg.IndexNow.KeyLocation, httpClient, retrier, logger))
	} else {
		logger.Warn("INDEXNOW_KEY not set, search engines will not be notified")
	}
	switch cfg.Notify.Type {
	case "slack":
		logger.Info("using slack notifier")
		chain = append(chain, notifier.NewSlackNotifier(cfg.Notify.WebhookURL, httpClient, retrier, logger))
	default:
		chain = append(chain, notifier.NewLogNotifier(logger))
	}
	return chain
}

// buildRunner wires the gateway, the per-model limiter and the worker pool.
// It returns nil when no gateway credential is configured.
func buildRunner(cfg *config.Config, store *content.Store, minDelay time.Duration, logger *slog.Logger) *translate.Runner {
	if !cfg.Translate.Enabled() {
		return nil
	}
	provider := translate.NewOpenAIProvider(cfg.Translate.BaseURL, cfg.Translate.APIKey, cfg.Translate.MaxTokens, &http.Client{})
	translator := translate.NewTranslator(
		provider,
		cfg.Translate.ModelFor,
		translate.SystemTemplate,
		cfg.Translate.Timeout,
		ratelimit.NewKeyedLimiter(minDelay),
		logger,
	)
	return translate.NewRunner(store, translator, cfg.Translate.Concurrency, logger)
}
