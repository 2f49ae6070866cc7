package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"isogen/internal/infrastructure/resilience"
)

// Improver calls an external rewrite service over HTTP. It satisfies the
// same contract as the canned responder, so the worker can swap it in
// when a real model endpoint is configured.
type Improver struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

func NewImprover(baseURL string, executor *resilience.Executor) *Improver {
	return &Improver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		executor:   executor,
	}
}

func (i *Improver) Improve(ctx context.Context, text string) (string, error) {
	request := map[string]any{
		"text": text,
	}

	var response struct {
		Improved string `json:"improved"`
	}

	call := func(callCtx context.Context) error {
		return i.postJSON(callCtx, "/v1/improve", request, &response, "improve")
	}

	var err error
	if i.executor != nil {
		err = i.executor.Execute(ctx, "improver.improve", call, classifyImproverError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", wrapTemporaryIfNeeded("improve text", err)
	}
	return strings.TrimSpace(response.Improved), nil
}

func (i *Improver) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("improver %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPStatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
