package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"thermostat_dashboard/internal/models"
)

// Fixed keys of the persisted session.
const (
	TokenKey       = "apiToken"
	UsernameKey    = "userName"
	RoleKey        = "userRole"
	HomeownerIDKey = "homeownerId"
	ExpiresAtKey   = "sessionExpiresAt"
	SessionIDKey   = "sessionId"
)

var sessionKeys = []string{TokenKey, UsernameKey, RoleKey, HomeownerIDKey, ExpiresAtKey, SessionIDKey}

// SessionKV keeps the signed-in session in the key-value store.
type SessionKV struct {
	kv KeyValueStore
}

func NewSessionKV(kv KeyValueStore) *SessionKV {
	return &SessionKV{kv: kv}
}

var _ SessionStore = (*SessionKV)(nil)

func (s *SessionKV) Save(ctx context.Context, sess models.Session) error {
	values := map[string]string{
		TokenKey:       sess.Token,
		UsernameKey:    sess.Username,
		RoleKey:        string(sess.Role),
		HomeownerIDKey: strconv.Itoa(sess.HomeownerID),
		ExpiresAtKey:   "",
		SessionIDKey:   sess.SessionID,
	}
	if !sess.ExpiresAt.IsZero() {
		values[ExpiresAtKey] = sess.ExpiresAt.UTC().Format(time.RFC3339)
	}
	for _, k := range sessionKeys {
		if err := s.kv.Set(ctx, k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Load returns ok=false when no token is stored.
func (s *SessionKV) Load(ctx context.Context) (models.Session, bool, error) {
	token, ok, err := s.kv.Get(ctx, TokenKey)
	if err != nil || !ok || token == "" {
		return models.Session{}, false, err
	}
	sess := models.Session{Token: token}

	if v, _, err := s.kv.Get(ctx, UsernameKey); err != nil {
		return models.Session{}, false, err
	} else {
		sess.Username = v
	}
	if v, _, err := s.kv.Get(ctx, RoleKey); err != nil {
		return models.Session{}, false, err
	} else {
		sess.Role = models.Role(v)
	}
	if v, _, err := s.kv.Get(ctx, HomeownerIDKey); err != nil {
		return models.Session{}, false, err
	} else if id, convErr := strconv.Atoi(v); convErr == nil {
		sess.HomeownerID = id
	}
	if v, _, err := s.kv.Get(ctx, ExpiresAtKey); err != nil {
		return models.Session{}, false, err
	} else if ts, parseErr := time.Parse(time.RFC3339, v); parseErr == nil {
		sess.ExpiresAt = ts
	}
	if v, _, err := s.kv.Get(ctx, SessionIDKey); err != nil {
		return models.Session{}, false, err
	} else {
		sess.SessionID = v
	}
	return sess, true, nil
}

// Token returns "" when nobody is signed in.
func (s *SessionKV) Token(ctx context.Context) (string, error) {
	token, _, err := s.kv.Get(ctx, TokenKey)
	return token, err
}

// Clear removes every session key, continuing past individual failures.
func (s *SessionKV) Clear(ctx context.Context) error {
	var errs []error
	for _, k := range sessionKeys {
		if err := s.kv.Delete(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
