package scheduler

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

// QStashClient registers recurring HTTP triggers with Upstash QStash.
type QStashClient struct {
	endpoint   string // e.g. https://qstash.upstash.io/v2/schedules
	token      string
	httpClient *http.Client
	retrier    *retry.Retrier
	logger     *slog.Logger
}

func NewQStashClient(endpoint, token string, httpClient *http.Client, retrier *retry.Retrier, logger *slog.Logger) *QStashClient {
	return &QStashClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
		httpClient: httpClient,
		retrier:    retrier,
		logger:     logger,
	}
}

type triggerBody struct {
	Trigger string `json:"trigger"`
	Days    int    `json:"days"`
}

type scheduleResponse struct {
	ScheduleID string `json:"scheduleId"`
}

// Register creates a schedule that POSTs to destination on cronExpr. days is
// forwarded in the message body for the receiving endpoint's logs.
func (c *QStashClient) Register(ctx context.Context, destination, cronExpr string, days int) (string, error) {
	if c.token == "" {
		return "", model.UsageError("QSTASH_TOKEN is not set")
	}
	body, err := json.Marshal(triggerBody{Trigger: "scheduled-refresh", Days: days})
	if err != nil {
		return "", fmt.Errorf("marshal qstash body: %w", err)
	}

	var id string
	err = c.retrier.Do(ctx, "qstash register", func(ctx context.Context) error {
		var err error
		id, err = c.register(ctx, destination, cronExpr, body)
		return err
	})
	if err != nil {
		return "", err
	}
	c.logger.Info("qstash schedule registered", "schedule_id", id, "destination", destination, "cron", cronExpr)
	return id, nil
}

func (c *QStashClient) register(ctx context.Context, destination, cronExpr string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/"+destination, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build qstash request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Upstash-Cron", cronExpr)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post to qstash: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read qstash response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("qstash: %s", strings.TrimSpace(string(data))),
		}
	}

	var out scheduleResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode qstash response: %w", err)
	}
	if out.ScheduleID == "" {
		return "", fmt.Errorf("qstash response has no scheduleId")
	}
	return out.ScheduleID, nil
}
