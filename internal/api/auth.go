package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/me/clinidash/pkg/model"
)

// Login authenticates against the remote service. The authentication
// endpoint takes form-encoded credentials, unlike every other endpoint.
//
// A failed login must leave any existing session untouched, so this path
// never consults the 401 observer; any non-2xx response surfaces as an
// authentication error carrying the server's detail text when present.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	const op = "auth.login"

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/login", strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, wrapError(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(op, 0, start)
		return TokenResponse{}, wrapError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(op, resp.StatusCode, start)
		return TokenResponse{}, wrapError(op, fmt.Errorf("read response: %w", err))
	}
	c.record(op, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := detailOf(body)
		if msg == "" {
			msg = "invalid credentials"
		}
		return TokenResponse{}, &Error{Op: op, Kind: KindAuthentication, StatusCode: resp.StatusCode, Message: msg}
	}

	var tok TokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return TokenResponse{}, wrapError(op, fmt.Errorf("parse response: %w", err))
	}
	if tok.AccessToken == "" {
		return TokenResponse{}, &Error{Op: op, Kind: KindTransport, Message: "empty access token in response"}
	}
	return tok, nil
}

// TokenClaims are the fields this client reads from an access token's
// payload segment. The signature is NOT verified: the parsed role is a UI
// hint only, never an authorization decision — the server enforces access
// on every call.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// DecodeToken parses the token's payload without verifying its signature.
func DecodeToken(raw string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("decode token: %w", err)
	}

	var out TokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if out.Subject == "" {
		return TokenClaims{}, fmt.Errorf("decode token: missing subject claim")
	}
	return out, nil
}

// IdentityFromToken derives the cached user identity from a freshly issued
// token. An absent role claim defaults to practitioner.
func IdentityFromToken(raw string) (model.Identity, error) {
	claims, err := DecodeToken(raw)
	if err != nil {
		return model.Identity{}, err
	}
	return model.IdentityForEmail(claims.Subject, claims.Role), nil
}
