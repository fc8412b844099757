package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://api-free.deepl.com/v2/translate"

// UpstreamError carries the translation provider's status and body so the
// proxy can pass them through unchanged.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("translate: upstream returned %d", e.StatusCode)
}

// Client is a thin DeepL client (form-encoded POST, auth_key parameter).
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, errors.New("translate: api key not configured")
	}

	form := url.Values{
		"auth_key":    {c.apiKey},
		"text":        {text},
		"source_lang": {sourceLang},
		"target_lang": {targetLang},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate: request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("translate: read failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: res.StatusCode, Body: body}
	}

	return json.RawMessage(body), nil
}
