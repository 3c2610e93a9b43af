package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	blocklistdto "focusflow/internal/modules/blocklist/dto"
	clientout "focusflow/internal/modules/client/port/out"
	sessiondto "focusflow/internal/modules/session/dto"
	apperrors "focusflow/internal/platform/errors"
)

// RESTClient talks to the FocusFlow server with a bearer token.
type RESTClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRESTClient(baseURL, token string, client *http.Client) clientout.API {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RESTClient{baseURL: strings.TrimRight(baseURL, "/"), token: token, client: client}
}

type sessionEnvelope struct {
	Message string                    `json:"message"`
	Session *sessiondto.SessionOutput `json:"session"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *RESTClient) StartSession(ctx context.Context, workDuration, breakDuration int, title string) (sessiondto.SessionOutput, error) {
	body := map[string]any{"workDuration": workDuration, "breakDuration": breakDuration}
	if title != "" {
		body["title"] = title
	}
	return c.sessionCall(ctx, http.MethodPost, "/session/start", body)
}

func (c *RESTClient) EndSession(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error) {
	return c.sessionCall(ctx, http.MethodPost, "/session/end", map[string]string{"sessionId": sessionID})
}

func (c *RESTClient) AbortSession(ctx context.Context, sessionID, reason string) (sessiondto.SessionOutput, error) {
	return c.sessionCall(ctx, http.MethodPost, "/session/abort", map[string]string{"sessionId": sessionID, "abortReason": reason})
}

func (c *RESTClient) RecordInterruption(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error) {
	return c.sessionCall(ctx, http.MethodPatch, "/session/interrupt/"+url.PathEscape(sessionID), nil)
}

func (c *RESTClient) ActiveSession(ctx context.Context) (sessiondto.SessionOutput, bool, error) {
	env := sessionEnvelope{}
	if err := c.do(ctx, http.MethodGet, "/session/active", nil, &env); err != nil {
		return sessiondto.SessionOutput{}, false, err
	}
	if env.Session == nil {
		return sessiondto.SessionOutput{}, false, nil
	}
	return *env.Session, true, nil
}

func (c *RESTClient) Blocklist(ctx context.Context) ([]blocklistdto.EntryOutput, error) {
	entries := []blocklistdto.EntryOutput{}
	if err := c.do(ctx, http.MethodGet, "/blocklist", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *RESTClient) AddToBlocklist(ctx context.Context, websites, apps []string) (blocklistdto.AddOutput, error) {
	body := map[string][]string{"website": nonNil(websites), "app": nonNil(apps)}
	out := blocklistdto.AddOutput{}
	if err := c.do(ctx, http.MethodPost, "/blocklist", body, &out); err != nil {
		return blocklistdto.AddOutput{}, err
	}
	return out, nil
}

func (c *RESTClient) RemoveFromBlocklist(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodDelete, "/blocklist/"+url.PathEscape(entryID), nil, nil)
}

func (c *RESTClient) Analytics(ctx context.Context) (analyticsdto.Bundle, error) {
	bundle := analyticsdto.Bundle{}
	if err := c.do(ctx, http.MethodGet, "/session/analytics", nil, &bundle); err != nil {
		return analyticsdto.Bundle{}, err
	}
	return bundle, nil
}

func (c *RESTClient) sessionCall(ctx context.Context, method, path string, body any) (sessiondto.SessionOutput, error) {
	env := sessionEnvelope{}
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	if env.Session == nil {
		return sessiondto.SessionOutput{}, fmt.Errorf("%s %s: response has no session", method, path)
	}
	return *env.Session, nil
}

func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return responseError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// responseError maps the server's status taxonomy back onto the sentinels.
func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	env := errorEnvelope{}
	message := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &env) == nil && env.Message != "" {
		message = env.Message
	}
	if message == "" {
		message = resp.Status
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return apperrors.New(apperrors.ErrInvalidInput, message)
	case http.StatusUnauthorized:
		return apperrors.New(apperrors.ErrUnauthorized, message)
	case http.StatusNotFound:
		return apperrors.New(apperrors.ErrNotFound, message)
	}
	if env.Error != "" {
		message += ": " + env.Error
	}
	return fmt.Errorf("server returned %s: %s", resp.Status, message)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
