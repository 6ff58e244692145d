package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/retry"
)

// Ensure SlackNotifier implements model.Notifier.
var _ model.Notifier = (*SlackNotifier)(nil)

// maxListedPages caps how many English links one Slack message lists.
const maxListedPages = 10

// SlackNotifier posts a summary of changed pages to a Slack channel via an
// Incoming Webhook.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	retrier    *retry.Retrier
	logger     *slog.Logger
}

func NewSlackNotifier(webhookURL string, httpClient *http.Client, retrier *retry.Retrier, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
		retrier:    retrier,
		logger:     logger,
	}
}

// Notify sends one Block Kit message summarizing pages per language.
func (s *SlackNotifier) Notify(ctx context.Context, pages []model.Page) error {
	if len(pages) == 0 {
		return nil
	}

	body, err := json.Marshal(buildPayload(pages))
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	err = s.retrier.Do(ctx, "slack notify", func(ctx context.Context) error {
		return s.post(ctx, body)
	})
	if err != nil {
		return err
	}
	s.logger.Info("slack message sent", "pages", len(pages))
	return nil
}

func (s *SlackNotifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("slack returned %d", resp.StatusCode),
		}
	}
	return nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func buildPayload(pages []model.Page) slackPayload {
	perLang := map[string]int{}
	var english []model.Page
	for _, p := range pages {
		perLang[p.Lang]++
		if p.Lang == model.SourceLanguage {
			english = append(english, p)
		}
	}

	langs := make([]string, 0, len(perLang))
	for l := range perLang {
		langs = append(langs, l)
	}
	sort.Strings(langs)

	fields := make([]slackText, 0, len(langs))
	for _, l := range langs {
		fields = append(fields, slackText{Type: "mrkdwn", Text: fmt.Sprintf("*%s:*\n%d", strings.ToUpper(l), perLang[l])})
	}

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: fmt.Sprintf("Careers: %d pages updated", len(pages))},
		},
	}
	// Slack allows at most 10 fields per section.
	for start := 0; start < len(fields); start += 10 {
		end := min(start+10, len(fields))
		blocks = append(blocks, slackBlock{Type: "section", Fields: fields[start:end]})
	}

	if len(english) > 0 {
		var sb strings.Builder
		for i, p := range english {
			if i == maxListedPages {
				fmt.Fprintf(&sb, "…and %d more", len(english)-maxListedPages)
				break
			}
			fmt.Fprintf(&sb, "• <%s|%s>\n", p.URL, p.Title)
		}
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: strings.TrimRight(sb.String(), "\n")},
		})
	}

	blocks = append(blocks, slackBlock{Type: "divider"})
	return slackPayload{Blocks: blocks}
}
