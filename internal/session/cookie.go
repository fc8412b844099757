package session

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
)

const CookieName = "accessToken"

// Issue packages the backend session token as a transport-safe cookie.
// The value is base64url-encoded so no externally influenced byte reaches
// an HTTP header unescaped. No expiry is set; the token's lifetime is
// owned by the authentication provider.
func Issue(sessionToken string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(sessionToken)),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// DecodeToken reverses Issue's encoding.
func DecodeToken(cookieValue string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cookieValue)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Redirect computes the post-login redirect target on the configured
// frontend origin. afterLogin is treated as an opaque relative path; a
// caller-supplied absolute or protocol-relative URL collapses to "/" so
// the response can never redirect off-origin.
func Redirect(frontendOrigin, afterLogin string) string {
	path := afterLogin
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/"
	}
	if u, err := url.Parse(path); err != nil || u.IsAbs() || u.Host != "" {
		path = "/"
	}

	return strings.TrimRight(frontendOrigin, "/") + "/?afterLogin=" + url.QueryEscape(path)
}
