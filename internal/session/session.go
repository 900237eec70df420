// Package session holds the explicit, per-request session context. A session
// is created on login, invalidated on logout or expiry, and read-only
// everywhere else.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

// Session is the authenticated caller. BackendToken is forwarded as the
// bearer token on every backend call and never sent back to the browser.
type Session struct {
	ID           string      `json:"-"`
	UserID       pedido.ID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         pedido.Role `json:"role"`
	StoreID      pedido.ID   `json:"loja_id,omitempty"`
	StoreName    string      `json:"loja_name,omitempty"`
	BackendToken string      `json:"-"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// Internal reports whether the caller works on the department side.
func (s *Session) Internal() bool { return s.Role.Internal() }

type claims struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	StoreID      string `json:"loja_id,omitempty"`
	StoreName    string `json:"loja_name,omitempty"`
	BackendToken string `json:"bt"`
	jwt.RegisteredClaims
}

// Revoker remembers sessions closed before their expiry.
type Revoker interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	Revoked(ctx context.Context, id string) (bool, error)
}

// Manager signs and verifies portal session tokens.
type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoked Revoker
	now     func() time.Time
}

func NewManager(secret string, ttl time.Duration, revoked Revoker) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, revoked: revoked, now: time.Now}
}

// Identity is what the backend login returns about the user.
type Identity struct {
	UserID    pedido.ID
	Name      string
	Email     string
	Role      pedido.Role
	StoreID   pedido.ID
	StoreName string
}

// Issue creates a session for id and returns it with its signed token.
func (m *Manager) Issue(id Identity, backendToken string) (*Session, string, error) {
	if !id.Role.Valid() {
		return nil, "", fmt.Errorf("issue session: %w", apperr.ErrForbidden)
	}
	now := m.now()
	s := &Session{
		ID:           uuid.NewString(),
		UserID:       id.UserID,
		Name:         id.Name,
		Email:        id.Email,
		Role:         id.Role,
		BackendToken: backendToken,
		ExpiresAt:    now.Add(m.ttl).Truncate(time.Second),
	}
	if id.Role == pedido.RoleStore {
		s.StoreID = id.StoreID
		s.StoreName = id.StoreName
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:         s.Name,
		Email:        s.Email,
		Role:         string(s.Role),
		StoreID:      string(s.StoreID),
		StoreName:    s.StoreName,
		BackendToken: backendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   string(s.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	})
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign session: %w", err)
	}
	return s, signed, nil
}

// Parse verifies raw and returns the session it carries. Expired, revoked or
// malformed tokens yield apperr.ErrUnauthorized.
func (m *Manager) Parse(ctx context.Context, raw string) (*Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}
	role := pedido.Role(c.Role)
	if !role.Valid() || c.ID == "" {
		return nil, fmt.Errorf("%w: invalid claims", apperr.ErrUnauthorized)
	}
	if m.revoked != nil {
		gone, err := m.revoked.Revoked(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if gone {
			return nil, fmt.Errorf("%w: session closed", apperr.ErrUnauthorized)
		}
	}
	return &Session{
		ID:           c.ID,
		UserID:       pedido.ID(c.Subject),
		Name:         c.Name,
		Email:        c.Email,
		Role:         role,
		StoreID:      pedido.ID(c.StoreID),
		StoreName:    c.StoreName,
		BackendToken: c.BackendToken,
		ExpiresAt:    c.ExpiresAt.Time,
	}, nil
}

// Invalidate closes s until its natural expiry.
func (m *Manager) Invalidate(ctx context.Context, s *Session) error {
	if m.revoked == nil || s == nil {
		return nil
	}
	if !s.ExpiresAt.After(m.now()) {
		return nil
	}
	return m.revoked.Revoke(ctx, s.ID, s.ExpiresAt)
}

type ctxKey struct{}

// WithSession returns a child context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithSession, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
