// Package lastresult remembers the most recent successful input per
// calculator in a signed cookie, so a result can be recomputed later without
// any server-side storage.
package lastresult

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNotFound means the request carries no valid cookie for the calculator.
var ErrNotFound = errors.New("no stored result")

// maxInput keeps the signed cookie under the 4 KB browser limit.
const maxInput = 2048

const cookiePrefix = "last_"

type claims struct {
	Calculator string          `json:"calc"`
	Input      json.RawMessage `json:"input"`
	jwt.RegisteredClaims
}

type Store struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// New returns a store signing with key. secure marks cookies HTTPS-only.
func New(key []byte, ttl time.Duration, secure bool) *Store {
	return &Store{key: key, ttl: ttl, secure: secure, now: time.Now}
}

func CookieName(calculator string) string {
	return cookiePrefix + calculator
}

// Save overwrites the cookie for calculator with input.
func (s *Store) Save(w http.ResponseWriter, calculator string, input []byte) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, input); err != nil {
		return fmt.Errorf("compact input: %w", err)
	}
	if compact.Len() > maxInput {
		return fmt.Errorf("input of %d bytes is too large to remember", compact.Len())
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Calculator: calculator,
		Input:      compact.Bytes(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(calculator),
		Value:    signed,
		Expires:  now.Add(s.ttl),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load returns the input stored for calculator. Missing, expired, tampered
// or mismatched cookies all report ErrNotFound.
func (s *Store) Load(r *http.Request, calculator string) (json.RawMessage, error) {
	cookie, err := r.Cookie(CookieName(calculator))
	if err != nil {
		return nil, ErrNotFound
	}
	var c claims
	_, err = jwt.ParseWithClaims(cookie.Value, &c, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if c.Calculator != calculator {
		return nil, fmt.Errorf("%w: cookie belongs to %q", ErrNotFound, c.Calculator)
	}
	return c.Input, nil
}

// Remember wraps a calculator handler and stores the request body when the
// handler answers 200.
func (s *Store) Remember(calculator string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		rw := &recorder{ResponseWriter: w, onOK: func() {
			if err := s.Save(w, calculator, body); err != nil {
				log.Printf("remember %s: %v", calculator, err)
			}
		}}
		next.ServeHTTP(rw, r)
	})
}

// recorder sets the cookie just before the status line is written.
type recorder struct {
	http.ResponseWriter
	onOK  func()
	wrote bool
}

func (rw *recorder) WriteHeader(code int) {
	if !rw.wrote {
		rw.wrote = true
		if code == http.StatusOK {
			rw.onOK()
		}
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recorder) Write(b []byte) (int, error) {
	if !rw.wrote {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
