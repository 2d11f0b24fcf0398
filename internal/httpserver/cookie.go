// internal/httpserver/cookie.go
//
// Browser-side storage for the Favorites Store.
//
// The favorites entry is kept in one cookie whose value is an HS256 JWT; the
// "fav" claim holds the stored JSON array verbatim. The signing key is derived
// from COOKIE_SECRET with HKDF-SHA256 so the raw secret never signs anything.
// A cookie that fails verification reads as absent.

package httpserver

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	"github.com/eabrahm-wq/GameDirectory/internal/favorites"
	"github.com/eabrahm-wq/GameDirectory/internal/store"
)

const (
	favoritesCookie = "dmg_favorites"
	cookieMaxAge    = 365 * 24 * time.Hour
	hkdfInfo        = "daily-mind-games favorites cookie v1"
)

var errBadCookie = errors.New("httpserver: invalid favorites cookie")

type favClaims struct {
	Fav json.RawMessage `json:"fav"`
	jwt.RegisteredClaims
}

// cookieCodec signs and verifies favorites cookies.
type cookieCodec struct {
	key    []byte
	secure bool
}

func newCookieCodec(secret string, secure bool) (*cookieCodec, error) {
	if secret == "" {
		return nil, errors.New("httpserver: cookie secret is required")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("httpserver: derive cookie key: %w", err)
	}
	return &cookieCodec{key: key, secure: secure}, nil
}

// sign wraps a stored value (a JSON document) in a token.
func (c *cookieCodec) sign(value string, now time.Time) (string, error) {
	if !json.Valid([]byte(value)) {
		return "", fmt.Errorf("httpserver: favorites value is not JSON")
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, favClaims{
		Fav: json.RawMessage(value),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cookieMaxAge)),
		},
	})
	return t.SignedString(c.key)
}

// parse verifies a token and returns the stored value.
func (c *cookieCodec) parse(token string, now time.Time) (string, error) {
	claims := &favClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !tok.Valid {
		return "", errBadCookie
	}
	if len(claims.Fav) == 0 {
		return "", errBadCookie
	}
	return string(claims.Fav), nil
}

// cookieStore adapts one request/response pair to store.Store. Only the
// favorites key is backed; other keys read as absent and writes fail.
type cookieStore struct {
	codec *cookieCodec
	w     http.ResponseWriter
	r     *http.Request
	now   time.Time

	written *string // value set during this request, if any
}

var _ store.Store = (*cookieStore)(nil)

func (s *Server) cookieStore(w http.ResponseWriter, r *http.Request) *cookieStore {
	return &cookieStore{codec: s.cookies, w: w, r: r, now: s.now()}
}

func (c *cookieStore) GetItem(_ context.Context, key string) (string, bool, error) {
	if key != favorites.Key {
		return "", false, nil
	}
	if c.written != nil {
		return *c.written, true, nil
	}
	ck, err := c.r.Cookie(favoritesCookie)
	if err != nil || ck.Value == "" {
		return "", false, nil
	}
	v, err := c.codec.parse(ck.Value, c.now)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *cookieStore) SetItem(_ context.Context, key, value string) error {
	if key != favorites.Key {
		return fmt.Errorf("httpserver: cookie storage has no slot for %q", key)
	}
	tok, err := c.codec.sign(value, c.now)
	if err != nil {
		return err
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     favoritesCookie,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.codec.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  c.now.Add(cookieMaxAge),
		MaxAge:   int(cookieMaxAge / time.Second),
	})
	c.written = &value
	return nil
}
