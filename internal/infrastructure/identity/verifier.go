package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"isogen/internal/core/domain"
)

// Verifier resolves bearer tokens against a delegated auth endpoint.
// When the endpoint is absent or unreachable and local fallback is on,
// the token maps to a stable local user id so single-node deployments
// keep working without the external service.
type Verifier struct {
	endpoint      string
	localFallback bool
	httpClient    *http.Client
}

func NewVerifier(endpoint string, timeout time.Duration, localFallback bool) *Verifier {
	if timeout <= 0 {
		timeout = 1500 * time.Millisecond
	}
	return &Verifier{
		endpoint:      strings.TrimSpace(endpoint),
		localFallback: localFallback,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.WrapError(domain.ErrUnauthorized, "verify token", fmt.Errorf("empty bearer token"))
	}

	if v.endpoint == "" {
		if v.localFallback {
			return localUserID(token), nil
		}
		return "", domain.WrapError(domain.ErrUnauthorized, "verify token", fmt.Errorf("no auth endpoint configured"))
	}

	userID, err := v.verifyRemote(ctx, token)
	if err == nil {
		return userID, nil
	}
	if domain.IsKind(err, domain.ErrUnauthorized) {
		return "", err
	}
	if v.localFallback {
		return localUserID(token), nil
	}
	return "", err
}

func (v *Verifier) verifyRemote(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(domain.ErrTemporary, "verify token", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", domain.WrapError(domain.ErrUnauthorized, "verify token", fmt.Errorf("auth endpoint status %s", resp.Status))
	case resp.StatusCode >= 300:
		return "", domain.WrapError(domain.ErrTemporary, "verify token", fmt.Errorf("auth endpoint status %s", resp.Status))
	}

	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode verify response: %w", err)
	}
	if strings.TrimSpace(payload.UserID) == "" {
		return "", domain.WrapError(domain.ErrUnauthorized, "verify token", fmt.Errorf("auth endpoint returned empty user id"))
	}
	return payload.UserID, nil
}

func localUserID(token string) string {
	h := fnv.New64a()
	h.Write([]byte(token))
	return fmt.Sprintf("local-%016x", h.Sum64())
}
