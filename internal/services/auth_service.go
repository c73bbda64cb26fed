package services

import (
	"MovingList/internal/allowlist"
	"MovingList/internal/config"
	"MovingList/internal/metrics"
	"MovingList/internal/session"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"net/url"
	"strings"
	"time"
)

type Session struct {
	ID          string
	AccessToken string
	Email       string
	ExpiresAt   time.Time
}

type AuthService interface {
	RequestLogin(ctx context.Context, email, redirectTo string) error
	Verify(ctx context.Context, loginToken string) (*Session, error)
	Authenticate(ctx context.Context, accessToken string) (*Session, error)
	Logout(ctx context.Context, accessToken string) error
}

type authServiceImpl struct {
	store      session.Store
	mail       MailService
	allowList  allowlist.List
	authConfig config.AuthConfig
	log        *logrus.Logger
	now        func() time.Time
}

func NewAuthService(
	store session.Store,
	mail MailService,
	configuration *config.Configuration,
	logService LogService,
) AuthService {
	return &authServiceImpl{
		store:      store,
		mail:       mail,
		allowList:  allowlist.New(configuration.Auth.AllowedEmails),
		authConfig: configuration.Auth,
		log:        logService.Log,
		now:        time.Now,
	}
}

func (s *authServiceImpl) RequestLogin(ctx context.Context, email, redirectTo string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		metrics.SignInRequests.WithLabelValues("invalid").Inc()
		return ErrEmailRequired
	}
	if !s.allowList.Allows(email) {
		metrics.SignInRequests.WithLabelValues("forbidden").Inc()
		s.log.WithField("email", email).Warn("sign-in attempt from address outside the allow-list")
		return ErrEmailNotAllowed
	}

	token, err := generateToken()
	if err != nil {
		return fmt.Errorf("generate login token: %w", err)
	}
	link, err := s.loginLink(redirectTo, token)
	if err != nil {
		return err
	}
	normalized := allowlist.Normalize(email)
	if err := s.store.SaveLoginToken(ctx, token, normalized, s.authConfig.LoginTokenTTL); err != nil {
		return err
	}
	if err := s.mail.SendLoginLink(ctx, email, link); err != nil {
		metrics.SignInRequests.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignInRequests.WithLabelValues("sent").Inc()
	s.log.WithField("email", normalized).Info("login link issued")
	return nil
}

func (s *authServiceImpl) loginLink(redirectTo, token string) (string, error) {
	if redirectTo == "" {
		redirectTo = s.authConfig.RedirectURL
	}
	target, err := url.Parse(redirectTo)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidRedirect, redirectTo)
	}
	if !s.redirectAllowed(target) {
		s.log.WithField("redirect_to", redirectTo).Warn("sign-in request with a redirect outside the configured targets")
		return "", fmt.Errorf("%w: %q", ErrInvalidRedirect, redirectTo)
	}
	query := target.Query()
	query.Set("token", token)
	target.RawQuery = query.Encode()
	return target.String(), nil
}

// redirectAllowed reports whether target shares scheme and host with one of
// the configured redirects, and its path too when that entry names one.
func (s *authServiceImpl) redirectAllowed(target *url.URL) bool {
	for _, raw := range s.authConfig.Redirects() {
		allowed, err := url.Parse(raw)
		if err != nil {
			continue
		}
		if !strings.EqualFold(allowed.Scheme, target.Scheme) || !strings.EqualFold(allowed.Host, target.Host) {
			continue
		}
		path := strings.TrimSuffix(allowed.Path, "/")
		if path == "" || path == strings.TrimSuffix(target.Path, "/") {
			return true
		}
	}
	return false
}

// Verify exchanges a single-use login token for a session.
func (s *authServiceImpl) Verify(ctx context.Context, loginToken string) (*Session, error) {
	if strings.TrimSpace(loginToken) == "" {
		return nil, ErrInvalidToken
	}
	email, err := s.store.ConsumeLoginToken(ctx, loginToken)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	// the allow-list may have shrunk since the link was mailed
	if !s.allowList.Allows(email) {
		return nil, ErrEmailNotAllowed
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		ExpiresAt: now.Add(s.authConfig.SessionTTL).Truncate(time.Second),
	}
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ID:        sess.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	sess.AccessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	record := session.Record{Email: email, CreatedAt: now, ExpiresAt: sess.ExpiresAt}
	if err := s.store.SaveSession(ctx, sess.ID, record); err != nil {
		return nil, err
	}
	s.log.WithField("email", email).Info("session started")
	return sess, nil
}

// Authenticate accepts a token only while it is correctly signed, unexpired
// and not revoked.
func (s *authServiceImpl) Authenticate(ctx context.Context, accessToken string) (*Session, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.authConfig.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	record, err := s.store.LookupSession(ctx, claims.ID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:          claims.ID,
		AccessToken: accessToken,
		Email:       record.Email,
		ExpiresAt:   record.ExpiresAt,
	}, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, accessToken string) error {
	sess, err := s.Authenticate(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := s.store.RevokeSession(ctx, sess.ID); err != nil {
		return err
	}
	s.log.WithField("email", sess.Email).Info("session ended")
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
