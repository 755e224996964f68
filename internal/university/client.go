// Package university talks to the student's university account: the
// API the bot syncs activity mutations to, and the public subject page.
package university

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AuthError means the stored token was rejected (401/403).
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("university: auth rejected (status %d)", e.Status)
}

// NetworkError covers transport failures and server-side errors.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("university: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type Client struct {
	http            *http.Client
	baseURL         string
	subjectPageBase string
}

func NewClient(baseURL, subjectPageBase string) *Client {
	return &Client{
		http:            &http.Client{Timeout: 10 * time.Second},
		baseURL:         strings.TrimRight(baseURL, "/"),
		subjectPageBase: strings.TrimRight(subjectPageBase, "/"),
	}
}

func (c *Client) RemoveActivity(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/activities/"+url.PathEscape(id), token, "remove activity")
}

func (c *Client) CheckActivity(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodPost, "/activities/"+url.PathEscape(id)+"/check", token, "check activity")
}

func (c *Client) UncheckActivity(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodPost, "/activities/"+url.PathEscape(id)+"/uncheck", token, "uncheck activity")
}

func (c *Client) do(ctx context.Context, method, path, token, op string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Status: resp.StatusCode}
	default:
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
}

// SubjectPageURL builds the public page for a subject code, e.g.
// https://uspdigital.usp.br/jupiterweb/obterDisciplina?sgldis=MAC0110.
func (c *Client) SubjectPageURL(code string) string {
	return c.subjectPageBase + "/obterDisciplina?sgldis=" + url.QueryEscape(code)
}
