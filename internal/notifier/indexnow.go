package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/abbababa/careers/internal/model"
	"github.com/abbababa/careers/internal/retry"
)

// Ensure IndexNowNotifier implements model.Notifier.
var _ model.Notifier = (*IndexNowNotifier)(nil)

// maxURLsPerRequest is the IndexNow limit for one submission.
const maxURLsPerRequest = 10000

// IndexNowNotifier pushes changed page URLs to an IndexNow endpoint.
type IndexNowNotifier struct {
	endpoint    string
	host        string
	key         string
	keyLocation string
	httpClient  *http.Client
	retrier     *retry.Retrier
	logger      *slog.Logger
}

// NewIndexNowNotifier returns a notifier that submits URLs for host, proving
// ownership with key published at keyLocation.
func NewIndexNowNotifier(endpoint, host, key, keyLocation string, httpClient *http.Client, retrier *retry.Retrier, logger *slog.Logger) *IndexNowNotifier {
	return &IndexNowNotifier{
		endpoint:    endpoint,
		host:        host,
		key:         key,
		keyLocation: keyLocation,
		httpClient:  httpClient,
		retrier:     retrier,
		logger:      logger,
	}
}

type indexNowRequest struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Notify submits every page URL, split into requests of at most 10,000 URLs.
func (n *IndexNowNotifier) Notify(ctx context.Context, pages []model.Page) error {
	if len(pages) == 0 {
		return nil
	}

	urls := make([]string, len(pages))
	for i, p := range pages {
		urls[i] = p.URL
	}

	for start := 0; start < len(urls); start += maxURLsPerRequest {
		end := min(start+maxURLsPerRequest, len(urls))
		batch := urls[start:end]
		err := n.retrier.Do(ctx, "indexnow submit", func(ctx context.Context) error {
			return n.submit(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("indexnow submit %d urls: %w", len(batch), err)
		}
		n.logger.Info("indexnow submitted", "urls", len(batch))
	}
	return nil
}

func (n *IndexNowNotifier) submit(ctx context.Context, urls []string) error {
	body, err := json.Marshal(indexNowRequest{
		Host:        n.host,
		Key:         n.key,
		KeyLocation: n.keyLocation,
		URLList:     urls,
	})
	if err != nil {
		return fmt.Errorf("marshal indexnow payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build indexnow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to indexnow: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &model.HTTPError{
		StatusCode: resp.StatusCode,
		RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After")),
		Err:        fmt.Errorf("indexnow: %s", strings.TrimSpace(string(msg))),
	}
}
