package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/abbababa/careers/internal/model"
)

// Config is the root configuration for the careers content pipeline.
type Config struct {
	ContentRoot string
	Site        SiteConfig
	Languages   []string
	Generate    GenerateConfig
	Translate   TranslateConfig
	Refresh     RefreshConfig
	Fill        FillConfig
	IndexNow    IndexNowConfig
	Notify      NotifyConfig
	Schedule    ScheduleConfig
	CheckURLs   CheckURLsConfig
}

// SiteConfig describes where the rendered site is published.
type SiteConfig struct {
	BaseURL string // e.g. https://careers.abbababa.com
	Host    string // derived from BaseURL when empty
}

type GenerateConfig struct {
	ValidDays int
}

// TranslateConfig controls the LLM gateway used for translation.
type TranslateConfig struct {
	BaseURL      string            // OpenAI-compatible endpoint root
	APIKey       string            // expanded from env var by Load
	Models       map[string]string // target language -> model id
	DefaultModel string
	Concurrency  int
	Timeout      time.Duration // per-call timeout
	MinDelay     time.Duration // minimum gap between calls to the same model
	MaxTokens    int
}

// ModelFor returns the configured model for lang, falling back to DefaultModel.
func (t TranslateConfig) ModelFor(lang string) string {
	if m, ok := t.Models[lang]; ok && m != "" {
		return m
	}
	return t.DefaultModel
}

// Enabled reports whether a gateway credential is present.
func (t TranslateConfig) Enabled() bool {
	return t.APIKey != ""
}

type RefreshConfig struct {
	ValidDays int
	MinDelay  time.Duration
}

type FillConfig struct {
	MaxReplacements int
}

// IndexNowConfig controls URL submission to search engines.
type IndexNowConfig struct {
	Endpoint    string
	Key         string
	KeyLocation string
	LedgerPath  string
	Retention   time.Duration
}

// NotifyConfig selects the extra announcement channel besides IndexNow.
type NotifyConfig struct {
	Type       string // "log" or "slack"
	WebhookURL string
}

// ScheduleConfig controls the periodic refresh.
type ScheduleConfig struct {
	Cron       string
	QStashURL  string
	QStashKey  string
	RefreshURL string
}

// CheckURLsConfig controls the URL audit.
type CheckURLsConfig struct {
	BannedPatterns []string
	ScanDirs       []string
	Extensions     []string
	LivePaths      []string
	Timeout        time.Duration
}

const (
	defaultContentRoot  = "src/content"
	defaultBaseURL      = "https://careers.abbababa.com"
	defaultGatewayURL   = "https://ai-gateway.vercel.sh/v1"
	defaultModel        = "google/gemini-2.0-flash"
	defaultIndexNowURL  = "https://api.indexnow.org/IndexNow"
	defaultQStashURL    = "https://qstash.upstash.io/v2/schedules"
	defaultScheduleCron = "0 2 */14 * *"
)

var defaultModels = map[string]string{
	"zh": "google/gemini-2.0-flash",
	"es": "google/gemini-2.0-flash",
	"pt": "google/gemini-2.0-flash",
	"de": "google/gemini-2.0-flash",
	"ko": "anthropic/claude-haiku-4.5",
	"ja": "anthropic/claude-haiku-4.5",
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations as strings).
type rawConfig struct {
	Content   rawContentConfig   `yaml:"content"`
	Site      rawSiteConfig      `yaml:"site"`
	Languages []string           `yaml:"languages"`
	Generate  rawDaysConfig      `yaml:"generate"`
	Translate rawTranslateConfig `yaml:"translate"`
	Refresh   rawRefreshConfig   `yaml:"refresh"`
	Fill      rawFillConfig      `yaml:"fill"`
	IndexNow  rawIndexNowConfig  `yaml:"indexnow"`
	Notify    rawNotifyConfig    `yaml:"notify"`
	Schedule  rawScheduleConfig  `yaml:"schedule"`
	CheckURLs rawCheckURLsConfig `yaml:"check_urls"`
}

type rawContentConfig struct {
	Root string `yaml:"root"`
}

type rawSiteConfig struct {
	BaseURL string `yaml:"base_url"`
	Host    string `yaml:"host"`
}

type rawDaysConfig struct {
	ValidDays *int `yaml:"valid_days"`
}

type rawTranslateConfig struct {
	BaseURL      string            `yaml:"base_url"`
	APIKey       *string           `yaml:"api_key"`
	Models       map[string]string `yaml:"models"`
	DefaultModel string            `yaml:"default_model"`
	Concurrency  *int              `yaml:"concurrency"`
	Timeout      string            `yaml:"timeout"`
	MinDelay     string            `yaml:"min_delay"`
	MaxTokens    int               `yaml:"max_tokens"`
}

type rawRefreshConfig struct {
	ValidDays *int   `yaml:"valid_days"`
	MinDelay  string `yaml:"min_delay"`
}

type rawFillConfig struct {
	MaxReplacements *int `yaml:"max_replacements"`
}

type rawIndexNowConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Key         *string `yaml:"key"`
	KeyLocation string  `yaml:"key_location"`
	LedgerPath  string  `yaml:"ledger_path"`
	Retention   string  `yaml:"retention"`
}

type rawNotifyConfig struct {
	Type       string `yaml:"type"`
	WebhookURL string `yaml:"webhook_url"`
}

type rawScheduleConfig struct {
	Cron       string  `yaml:"cron"`
	QStashURL  string  `yaml:"qstash_url"`
	QStashKey  *string `yaml:"qstash_token"`
	RefreshURL string  `yaml:"refresh_url"`
}

type rawCheckURLsConfig struct {
	BannedPatterns []string `yaml:"banned_patterns"`
	ScanDirs       []string `yaml:"scan_dirs"`
	Extensions     []string `yaml:"extensions"`
	LivePaths      []string `yaml:"live_paths"`
	Timeout        string   `yaml:"timeout"`
}

// Load reads and parses the YAML config file at path, validates it, and
// returns Config. When optional is true a missing file yields the defaults.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Parse(nil)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML bytes. Environment variables are expanded
// before parsing; unset fields take their defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var err error
	translateTimeout := 2 * time.Minute
	if raw.Translate.Timeout != "" {
		translateTimeout, err = time.ParseDuration(raw.Translate.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse translate.timeout %q: %w", raw.Translate.Timeout, err)
		}
	}

	var translateDelay time.Duration
	if raw.Translate.MinDelay != "" {
		translateDelay, err = time.ParseDuration(raw.Translate.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse translate.min_delay %q: %w", raw.Translate.MinDelay, err)
		}
	}

	refreshDelay := 200 * time.Millisecond
	if raw.Refresh.MinDelay != "" {
		refreshDelay, err = time.ParseDuration(raw.Refresh.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse refresh.min_delay %q: %w", raw.Refresh.MinDelay, err)
		}
	}

	retention := 30 * 24 * time.Hour
	if raw.IndexNow.Retention != "" {
		retention, err = time.ParseDuration(raw.IndexNow.Retention)
		if err != nil {
			return nil, fmt.Errorf("parse indexnow.retention %q: %w", raw.IndexNow.Retention, err)
		}
	}

	checkTimeout := 10 * time.Second
	if raw.CheckURLs.Timeout != "" {
		checkTimeout, err = time.ParseDuration(raw.CheckURLs.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse check_urls.timeout %q: %w", raw.CheckURLs.Timeout, err)
		}
	}

	baseURL := strings.TrimRight(orDefault(raw.Site.BaseURL, defaultBaseURL), "/")
	host := raw.Site.Host
	if host == "" {
		host = strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	}

	models := make(map[string]string, len(defaultModels))
	for lang, m := range defaultModels {
		models[lang] = m
	}
	for lang, m := range raw.Translate.Models {
		models[lang] = m
	}

	languages := raw.Languages
	if len(languages) == 0 {
		languages = append([]string(nil), model.TargetLanguages...)
	}

	apiKey := os.Getenv("AI_GATEWAY_API_KEY")
	if raw.Translate.APIKey != nil {
		apiKey = *raw.Translate.APIKey
	}
	indexNowKey := os.Getenv("INDEXNOW_KEY")
	if raw.IndexNow.Key != nil {
		indexNowKey = *raw.IndexNow.Key
	}
	qstashKey := os.Getenv("QSTASH_TOKEN")
	if raw.Schedule.QStashKey != nil {
		qstashKey = *raw.Schedule.QStashKey
	}

	keyLocation := raw.IndexNow.KeyLocation
	if keyLocation == "" && indexNowKey != "" {
		keyLocation = baseURL + "/" + indexNowKey + ".txt"
	}

	cfg := &Config{
		ContentRoot: orDefault(raw.Content.Root, defaultContentRoot),
		Site: SiteConfig{
			BaseURL: baseURL,
			Host:    host,
		},
		Languages: languages,
		Generate: GenerateConfig{
			ValidDays: intOrDefault(raw.Generate.ValidDays, 14),
		},
		Translate: TranslateConfig{
			BaseURL:      strings.TrimRight(orDefault(raw.Translate.BaseURL, defaultGatewayURL), "/"),
			APIKey:       apiKey,
			Models:       models,
			DefaultModel: orDefault(raw.Translate.DefaultModel, defaultModel),
			Concurrency:  intOrDefault(raw.Translate.Concurrency, 20),
			Timeout:      translateTimeout,
			MinDelay:     translateDelay,
			MaxTokens:    raw.Translate.MaxTokens,
		},
		Refresh: RefreshConfig{
			ValidDays: intOrDefault(raw.Refresh.ValidDays, 30),
			MinDelay:  refreshDelay,
		},
		Fill: FillConfig{
			MaxReplacements: intOrDefault(raw.Fill.MaxReplacements, 5),
		},
		IndexNow: IndexNowConfig{
			Endpoint:    orDefault(raw.IndexNow.Endpoint, defaultIndexNowURL),
			Key:         indexNowKey,
			KeyLocation: keyLocation,
			LedgerPath:  orDefault(raw.IndexNow.LedgerPath, ".indexnow.db"),
			Retention:   retention,
		},
		Notify: NotifyConfig{
			Type:       orDefault(raw.Notify.Type, "log"),
			WebhookURL: raw.Notify.WebhookURL,
		},
		Schedule: ScheduleConfig{
			Cron:       orDefault(raw.Schedule.Cron, defaultScheduleCron),
			QStashURL:  orDefault(raw.Schedule.QStashURL, defaultQStashURL),
			QStashKey:  qstashKey,
			RefreshURL: orDefault(raw.Schedule.RefreshURL, baseURL+"/api/refresh"),
		},
		CheckURLs: CheckURLsConfig{
			BannedPatterns: orDefaultList(raw.CheckURLs.BannedPatterns, []string{
				"api.abbababa.com", "agents.abbababa.com", "www.abbababa.com",
			}),
			ScanDirs:   orDefaultList(raw.CheckURLs.ScanDirs, []string{"src", "scripts", "public"}),
			Extensions: orDefaultList(raw.CheckURLs.Extensions, []string{".ts", ".tsx", ".mdx", ".md", ".json", ".txt", ".go"}),
			LivePaths: orDefaultList(raw.CheckURLs.LivePaths, []string{
				"/", "/en", "/sitemap.xml", "/robots.txt", "/llms.txt", "/feed.xml", "/jobs.json",
			}),
			Timeout: checkTimeout,
		},
	}
	if cfg.Translate.MaxTokens == 0 {
		cfg.Translate.MaxTokens = 16000
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ContentRoot == "" {
		return fmt.Errorf("content.root must not be empty")
	}
	if !strings.HasPrefix(cfg.Site.BaseURL, "http://") && !strings.HasPrefix(cfg.Site.BaseURL, "https://") {
		return fmt.Errorf("site.base_url must be an http(s) URL, got %q", cfg.Site.BaseURL)
	}
	for _, lang := range cfg.Languages {
		if !model.IsTargetLanguage(lang) {
			return fmt.Errorf("languages: %q is not a supported target language", lang)
		}
	}
	for lang := range cfg.Translate.Models {
		if !model.IsTargetLanguage(lang) {
			return fmt.Errorf("translate.models: %q is not a supported target language", lang)
		}
	}
	if cfg.Generate.ValidDays <= 0 {
		return fmt.Errorf("generate.valid_days must be positive, got %d", cfg.Generate.ValidDays)
	}
	if cfg.Refresh.ValidDays <= 0 {
		return fmt.Errorf("refresh.valid_days must be positive, got %d", cfg.Refresh.ValidDays)
	}
	if cfg.Translate.Concurrency <= 0 {
		return fmt.Errorf("translate.concurrency must be positive, got %d", cfg.Translate.Concurrency)
	}
	if cfg.Translate.Timeout <= 0 {
		return fmt.Errorf("translate.timeout must be positive, got %v", cfg.Translate.Timeout)
	}
	if cfg.Fill.MaxReplacements <= 0 {
		return fmt.Errorf("fill.max_replacements must be positive, got %d", cfg.Fill.MaxReplacements)
	}
	if _, err := cron.ParseStandard(cfg.Schedule.Cron); err != nil {
		return fmt.Errorf("schedule.cron %q: %w", cfg.Schedule.Cron, err)
	}

	switch cfg.Notify.Type {
	case "log":
	case "slack":
		if !strings.HasPrefix(cfg.Notify.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notify.webhook_url must start with https://hooks.slack.com/")
		}
	default:
		return fmt.Errorf("notify.type must be \"log\" or \"slack\", got %q", cfg.Notify.Type)
	}

	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultList(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
