package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/logger"
	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/repository"
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbiddenRole      = errors.New("role not allowed")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthBackend is the backend's login surface.
type AuthBackend interface {
	LoginHomeowner(ctx context.Context, username, password string) (models.Session, error)
	LoginGuest(ctx context.Context, username, pin, homeowner string) (models.Session, error)
	LoginTechnician(ctx context.Context, username, password, homeowner string) (models.Session, error)
	SignUpHomeowner(ctx context.Context, username, password string) error
}

// DashboardLifecycle starts and stops the dashboard of the signed-in role.
type DashboardLifecycle interface {
	Start(role models.Role) *Dashboard
	Stop()
}

type Credentials struct {
	Username  string `json:"username" validate:"required,max=64"`
	Password  string `json:"password" validate:"required_without=PIN,max=128"`
	PIN       string `json:"pin" validate:"omitempty,numeric,min=4,max=8"`
	Homeowner string `json:"homeowner" validate:"max=64"`
}

// LoginResult carries the local token handed to dashboard clients.
type LoginResult struct {
	Token     string         `json:"token"`
	Role      models.Role    `json:"role"`
	Username  string         `json:"username"`
	ExpiresAt time.Time      `json:"expires_at"`
	Session   models.Session `json:"-"`
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// AuthService signs users into the backend, keeps the backend session in the
// local store and issues a short-lived local JWT for dashboard clients.
type AuthService struct {
	backend    AuthBackend
	sessions   repository.SessionStore
	events     repository.EventRepo
	dashboards DashboardLifecycle
	clock      Clock
	log        *logger.Logger
	validate   *validator.Validate
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(backend AuthBackend, sessions repository.SessionStore, events repository.EventRepo, dashboards DashboardLifecycle, cfg AuthConfig, clock Clock, log *logger.Logger) *AuthService {
	if clock == nil {
		clock = RealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		backend:    backend,
		sessions:   sessions,
		events:     events,
		dashboards: dashboards,
		clock:      clock,
		log:        log,
		validate:   validator.New(),
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Login authenticates against the backend with the flow of role, persists
// the session and starts the role's dashboard.
func (s *AuthService) Login(ctx context.Context, role models.Role, in Credentials) (LoginResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Homeowner = strings.TrimSpace(in.Homeowner)
	if err := s.validate.Struct(in); err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var (
		sess models.Session
		err  error
	)
	switch role {
	case models.RoleHomeowner:
		sess, err = s.backend.LoginHomeowner(ctx, in.Username, in.Password)
	case models.RoleGuest:
		if in.PIN == "" || in.Homeowner == "" {
			return LoginResult{}, fmt.Errorf("%w: guest login needs pin and homeowner", ErrValidation)
		}
		sess, err = s.backend.LoginGuest(ctx, in.Username, in.PIN, in.Homeowner)
	case models.RoleTechnician:
		if in.Homeowner == "" {
			return LoginResult{}, fmt.Errorf("%w: technician login needs homeowner", ErrValidation)
		}
		sess, err = s.backend.LoginTechnician(ctx, in.Username, in.Password, in.Homeowner)
	default:
		return LoginResult{}, ErrForbiddenRole
	}
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return LoginResult{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return LoginResult{}, err
	}
	if sess.Token == "" {
		return LoginResult{}, fmt.Errorf("%w: backend returned no token", ErrInvalidCredentials)
	}
	if sess.Role == "" {
		sess.Role = role
	}
	if sess.Role != role {
		return LoginResult{}, fmt.Errorf("%w: backend signed in a %s", ErrForbiddenRole, sess.Role)
	}

	sess.SessionID = uuid.NewString()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return LoginResult{}, fmt.Errorf("persist session: %w", err)
	}

	res, err := s.issue(sess)
	if err != nil {
		return LoginResult{}, err
	}

	if s.dashboards != nil {
		s.dashboards.Start(sess.Role)
	}
	s.appendEvent(ctx, models.ActivityLogin, fmt.Sprintf("%s %s signed in", sess.Role, sess.Username), map[string]any{"role": string(sess.Role), "username": sess.Username})
	s.log.Infow("login", "role", sess.Role, "username", sess.Username)
	return res, nil
}

// SignUp creates a homeowner account on the backend without signing in.
func (s *AuthService) SignUp(ctx context.Context, in Credentials) error {
	in.Username = strings.TrimSpace(in.Username)
	if err := s.validate.Struct(in); err != nil || in.Password == "" {
		if err == nil {
			err = errors.New("password is required")
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.backend.SignUpHomeowner(ctx, in.Username, in.Password)
}

// Logout stops the dashboard and forgets the session.
func (s *AuthService) Logout(ctx context.Context) error {
	sess, _, _ := s.sessions.Load(ctx)
	if s.dashboards != nil {
		s.dashboards.Stop()
	}
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if sess.Username != "" {
		s.appendEvent(ctx, models.ActivityLogout, fmt.Sprintf("%s signed out", sess.Username), map[string]any{"username": sess.Username})
	}
	return nil
}

// Resume restarts the dashboard of a stored, unexpired session. It reports
// whether a dashboard was started.
func (s *AuthService) Resume(ctx context.Context) (bool, error) {
	sess, ok, err := s.sessions.Load(ctx)
	if err != nil || !ok {
		return false, err
	}
	if !sess.Role.Valid() {
		return false, nil
	}
	if !sess.ExpiresAt.IsZero() && !s.clock.Now().Before(sess.ExpiresAt) {
		if err := s.sessions.Clear(ctx); err != nil {
			return false, err
		}
		return false, ErrSessionExpired
	}
	if s.dashboards != nil {
		s.dashboards.Start(sess.Role)
	}
	return true, nil
}

// ParseToken verifies a local JWT and returns its claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate parses token and checks it was issued for the stored
// session. Every sign-in gets a new session id, so tokens issued before a
// logout stay invalid even when the same user signs in again.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.ParseToken(token)
	if err != nil {
		return nil, err
	}
	sess, ok, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || sess.SessionID == "" || sess.SessionID != claims.ID ||
		sess.Username != claims.Username || sess.Role != claims.Role {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) issue(sess models.Session) (LoginResult, error) {
	now := s.clock.Now()
	exp := now.Add(s.tokenTTL)
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(exp) {
		exp = sess.ExpiresAt
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.SessionID,
			Subject:   sess.Username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: sess.Username,
		Role:     sess.Role,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{
		Token:     signed,
		Role:      sess.Role,
		Username:  sess.Username,
		ExpiresAt: exp.UTC(),
		Session:   sess,
	}, nil
}

func (s *AuthService) appendEvent(ctx context.Context, typ, desc string, meta map[string]any) {
	if s.events == nil {
		return
	}
	if err := s.events.Append(ctx, models.ActivityEvent{
		OccurredAt:  s.clock.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	}); err != nil {
		s.log.Warnw("activity_append_failed", "type", typ, "err", err)
	}
}
