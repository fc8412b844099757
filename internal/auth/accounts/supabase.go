package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseClient talks to a GoTrue-style auth REST API
// (POST /auth/v1/token, POST /auth/v1/signup, GET /auth/v1/user).
type SupabaseClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewSupabaseClient(baseURL, apiKey string) *SupabaseClient {
	return &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sessionResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`

	// signup with confirmation pending returns the bare user object
	ID    string `json:"id"`
	Email string `json:"email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}

func (e *errorResponse) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (c *SupabaseClient) SignIn(ctx context.Context, email, password string) (*Account, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp sessionResponse
	err := c.post(ctx, "/auth/v1/token?grant_type=password", body, &resp)
	if err != nil {
		return nil, err
	}

	return accountFrom(&resp), nil
}

func (c *SupabaseClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Account, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		body["data"] = metadata
	}

	var resp sessionResponse
	err := c.post(ctx, "/auth/v1/signup", body, &resp)
	if err != nil {
		return nil, err
	}

	return accountFrom(&resp), nil
}

func (c *SupabaseClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("accounts: user lookup failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, c.apiError(res)
	}

	var u userResponse
	if err := json.NewDecoder(res.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("accounts: user decode failed: %w", err)
	}

	return &User{ID: u.ID, Email: u.Email}, nil
}

func (c *SupabaseClient) post(ctx context.Context, path string, body any, out *sessionResponse) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("accounts: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.apiError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("accounts: response decode failed: %w", err)
	}

	return nil
}

// apiError maps provider error payloads onto the package sentinels so
// callers can branch on the condition, not the transport.
func (c *SupabaseClient) apiError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))

	var e errorResponse
	_ = json.Unmarshal(raw, &e)
	msg := e.text()

	switch {
	case e.ErrorCode == "user_already_exists",
		res.StatusCode == http.StatusUnprocessableEntity && strings.Contains(strings.ToLower(msg), "registered"),
		strings.Contains(strings.ToLower(msg), "already registered"):
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, msg)
	case res.StatusCode == http.StatusBadRequest, res.StatusCode == http.StatusUnauthorized:
		if msg == "" {
			msg = string(raw)
		}
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
	}

	if msg == "" {
		msg = string(raw)
	}
	return fmt.Errorf("accounts: provider returned %d: %s", res.StatusCode, msg)
}

func accountFrom(resp *sessionResponse) *Account {
	acc := &Account{
		ID:          resp.User.ID,
		Email:       resp.User.Email,
		AccessToken: resp.AccessToken,
	}
	if acc.ID == "" {
		// confirmation-pending signup: bare user object, no session
		acc.ID = resp.ID
		acc.Email = resp.Email
	}
	return acc
}
