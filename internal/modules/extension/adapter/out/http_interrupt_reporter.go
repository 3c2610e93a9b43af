package out

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	extensionout "focusflow/internal/modules/extension/port/out"
)

// HTTPInterruptReporter calls PATCH /session/interrupt/{id} on the API.
type HTTPInterruptReporter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPInterruptReporter(baseURL string, client *http.Client) extensionout.InterruptReporter {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPInterruptReporter{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (r *HTTPInterruptReporter) ReportInterruption(ctx context.Context, sessionID, token string) error {
	endpoint := r.baseURL + "/session/interrupt/" + url.PathEscape(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("patch interruption: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("patch interruption: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}
