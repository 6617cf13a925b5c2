// Package auth stores the API token used by the remote client.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvToken overrides any stored token.
const EnvToken = "TADA_TOKEN"

const credFileName = "credentials.json"

type TokenInfo struct {
	Token     string     `json:"token"`
	Source    string     `json:"source"`     // "env" | "file"
	CreatedAt time.Time  `json:"created_at"` // when we saved to file
	ExpiresAt *time.Time `json:"expires_at"` // optional (JWT exp claim)
}

// Expired reports whether the token has a known expiry in the past.
func (ti *TokenInfo) Expired(now time.Time) bool {
	return ti != nil && ti.ExpiresAt != nil && now.After(*ti.ExpiresAt)
}

// Dir is ~/.tada, shared with the config file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".tada"), nil
}

func credFilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}

// GetToken returns nil, nil when no token is configured.
func GetToken() (*TokenInfo, error) {
	// 1) env override
	env := strings.TrimSpace(os.Getenv(EnvToken))
	if env != "" {
		tok := stripBearer(env)
		return &TokenInfo{Token: tok, Source: "env", ExpiresAt: expiry(tok)}, nil
	}

	// 2) file
	p, err := credFilePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // not logged in
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var ti TokenInfo
	if err := json.Unmarshal(b, &ti); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	ti.Token = stripBearer(ti.Token)
	return &ti, nil
}

// SetToken writes the token to ~/.tada/credentials.json (0600). When expires
// is nil and the token is a JWT, its exp claim is used.
func SetToken(token string, expires *time.Time) error {
	token = stripBearer(token)
	if token == "" {
		return fmt.Errorf("empty token")
	}
	if expires == nil {
		expires = expiry(token)
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	ti := TokenInfo{
		Token:     token,
		Source:    "file",
		CreatedAt: time.Now(),
		ExpiresAt: expires,
	}
	b, err := json.MarshalIndent(ti, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	p, err := credFilePath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func DeleteToken() error {
	p, err := credFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// Claims decodes a JWT payload without verifying its signature. Opaque
// tokens return an error.
func Claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(stripBearer(token), claims); err != nil {
		return nil, fmt.Errorf("not a jwt: %w", err)
	}
	return claims, nil
}

func expiry(token string) *time.Time {
	claims, err := Claims(token)
	if err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}

// stripBearer drops a leading "Bearer" scheme word, alone or followed by
// the token.
func stripBearer(s string) string {
	s = strings.TrimSpace(s)
	if f := strings.Fields(s); len(f) > 0 && strings.EqualFold(f[0], "bearer") {
		return strings.TrimSpace(s[len(f[0]):])
	}
	return s
}
