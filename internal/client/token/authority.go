// Package token acquires bearer tokens for the external event providers.
// The service authenticates with a signed JWT assertion and caches the
// returned access token until shortly before expiry.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const expiryMargin = 30 * time.Second

type Authority struct {
	tokenURL   string
	clientID   string
	secret     []byte
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func New(tokenURL, clientID, secret string, timeout time.Duration) *Authority {
	return &Authority{
		tokenURL: tokenURL,
		clientID: clientID,
		secret:   []byte(secret),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// AccessToken returns a valid bearer token, refreshing it when the cached
// one is close to expiry.
func (a *Authority) AccessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Before(a.expiresAt.Add(-expiryMargin)) {
		return a.token, nil
	}

	assertion, err := a.signAssertion()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	a.token = response.AccessToken
	a.expiresAt = time.Now().Add(time.Duration(response.ExpiresIn) * time.Second)

	return a.token, nil
}

func (a *Authority) signAssertion() (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    a.clientID,
		Audience:  jwt.ClaimStrings{a.tokenURL},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	assertion, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign assertion: %w", err)
	}

	return assertion, nil
}
