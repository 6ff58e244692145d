package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/abadojack/whatlanggo"

	"github.com/abbababa/careers/internal/model"
)

// Limiter paces calls that share a key.
type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// ModelRouter picks the model that serves a target language.
type ModelRouter func(lang string) string

// Translator produces a translated copy of one posting in one language.
type Translator struct {
	provider Provider
	models   ModelRouter
	tmpl     *template.Template
	timeout  time.Duration
	limiter  Limiter
	logger   *slog.Logger
}

// NewTranslator creates a translator. limiter may be nil.
func NewTranslator(provider Provider, models ModelRouter, tmpl *template.Template, timeout time.Duration, limiter Limiter, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Translator{
		provider: provider,
		models:   models,
		tmpl:     tmpl,
		timeout:  timeout,
		limiter:  limiter,
		logger:   logger,
	}
}

// Translate sends the whitelisted fields of src to the model routed for lang
// and merges the reply onto a copy of src. The call is bounded by the
// translator's timeout; any failure leaves src untouched.
func (t *Translator) Translate(ctx context.Context, src *model.JobPosting, lang string) (*model.JobPosting, error) {
	if !model.IsTargetLanguage(lang) {
		return nil, fmt.Errorf("unsupported target language %q", lang)
	}
	modelID := t.models(lang)

	var sys bytes.Buffer
	if err := t.tmpl.Execute(&sys, struct{ Language string }{Language: model.PromptName(lang)}); err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	payload, err := json.MarshalIndent(extractFields(src), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx, modelID); err != nil {
			return nil, err
		}
	}

	callCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	reply, err := t.provider.Complete(callCtx, Request{
		Model:  modelID,
		System: sys.String(),
		User:   string(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("complete (model %s): %w", modelID, err)
	}

	translated, err := parseReply(reply)
	if err != nil {
		return nil, fmt.Errorf("parse reply (model %s): %w", modelID, err)
	}

	out := merge(src, translated, lang)
	t.checkLanguage(out, lang)
	return out, nil
}

// checkLanguage logs a warning when the translated description reliably
// reads as a different language than requested.
func (t *Translator) checkLanguage(p *model.JobPosting, lang string) {
	if p.Description == "" {
		return
	}
	info := whatlanggo.Detect(p.Description)
	if !info.IsReliable() {
		return
	}
	if got := info.Lang.Iso6391(); got != "" && got != lang {
		t.logger.Warn("translation language mismatch",
			"lang", lang,
			"detected", got,
			"category", p.Category,
			"slug", p.Slug(),
		)
	}
}
