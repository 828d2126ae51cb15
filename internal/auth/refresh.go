// Package auth handles Strava OAuth token lifecycle. The interactive
// authorization flow happens outside this app; tokens arrive already granted
// and are kept fresh here.
package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// refreshBuffer is how close to expiry a token may get before it is
// refreshed proactively
const refreshBuffer = 60 * time.Second

// TokenSource wraps oauth2.TokenSource with persistence. Refreshed tokens
// are handed to the persist callback before use, so a crash never loses a
// rotated refresh token.
type TokenSource struct {
	config  *oauth2.Config
	token   *oauth2.Token
	persist func(*oauth2.Token) error
	mu      sync.Mutex
}

// NewTokenSource creates a TokenSource that refreshes tokens as needed and
// calls persist to store each new token
func NewTokenSource(cfg *oauth2.Config, token *oauth2.Token, persist func(*oauth2.Token) error) *TokenSource {
	return &TokenSource{
		config:  cfg,
		token:   token,
		persist: persist,
	}
}

// Token returns a valid token, refreshing if necessary
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if time.Until(ts.token.Expiry) > refreshBuffer {
		return ts.token, nil
	}

	src := ts.config.TokenSource(context.Background(), ts.token)
	newToken, err := src.Token()
	if err != nil {
		return nil, err
	}

	if ts.persist != nil {
		if err := ts.persist(newToken); err != nil {
			return nil, err
		}
	}

	ts.token = newToken
	return newToken, nil
}

// IsExpired checks if the current token is expired or about to expire
func (ts *TokenSource) IsExpired() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return time.Until(ts.token.Expiry) <= refreshBuffer
}

// CurrentToken returns the current token without refreshing
func (ts *TokenSource) CurrentToken() *oauth2.Token {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token
}
