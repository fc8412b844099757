package line

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const providerName = "line"

const (
	defaultAuthURL  = "https://access.line.me/oauth2/v2.1/authorize"
	defaultTokenURL = "https://api.line.me/oauth2/v2.1/token"
	defaultAPIBase  = "https://api.line.me"
)

// Profile is the provider-side view of the logged-in user, immutable per
// callback invocation.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// ExchangeError carries the provider's raw error payload for operator
// diagnosis when the token endpoint rejects the grant.
type ExchangeError struct {
	Body string
	err  error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("line: token exchange failed: %v", e.err)
}

func (e *ExchangeError) Unwrap() error { return e.err }

// Provider implements LINE Login. LINE is not natively integrated with
// the backend auth provider, so it only produces identity facts; account
// and session decisions happen downstream.
type Provider struct {
	oauthConfig *oauth2.Config
	apiBase     string
	http        *http.Client
}

func New(clientID, clientSecret, redirectURL string) (*Provider, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("line oauth config missing required fields")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   defaultAuthURL,
			TokenURL:  defaultTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{"profile", "openid"},
	}

	return &Provider{
		oauthConfig: oauthCfg,
		apiBase:     defaultAPIBase,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the LINE authorization URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

// Exchange swaps the authorization code for an access token. A rejection
// from the token endpoint is returned as *ExchangeError with the
// provider's error body attached.
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.http)

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &ExchangeError{Body: string(retrieveErr.Body), err: err}
		}
		return nil, &ExchangeError{err: err}
	}

	return token, nil
}

// FetchProfile loads the provider profile with the bearer token. Any
// network failure or non-2xx response is a fetch failure.
func (p *Provider) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBase+"/v2/profile", nil)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)

	res, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("line: profile fetch failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("line: profile endpoint returned %d", res.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("line: profile decode failed: %w", err)
	}

	if profile.UserID == "" {
		return nil, errors.New("line: profile missing userId")
	}

	return &profile, nil
}
