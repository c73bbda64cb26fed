package inventory

import (
	"MovingList/internal/allowlist"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Gate admits a visitor when the identity provider holds a session and only
// asks the provider for sign-in links to allow-listed addresses.
type Gate struct {
	provider   IdentityProvider
	allowList  allowlist.List
	redirectTo string
	log        logrus.FieldLogger
}

func NewGate(provider IdentityProvider, allowedEmails []string, redirectTo string, log logrus.FieldLogger) *Gate {
	return &Gate{
		provider:   provider,
		allowList:  allowlist.New(allowedEmails),
		redirectTo: redirectTo,
		log:        log,
	}
}

// Session returns the current session, or nil when signed out.
func (g *Gate) Session(ctx context.Context) (*Session, error) {
	sess, err := g.provider.Session(ctx)
	if err != nil {
		g.log.WithError(err).Error("failed to read session")
		return nil, fmt.Errorf("%w: session: %w", ErrRemote, err)
	}
	return sess, nil
}

func (g *Gate) SignIn(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !g.allowList.Allows(email) {
		return fmt.Errorf("%w: %s is not allowed to sign in", ErrAuthorization, email)
	}
	if err := g.provider.SignInWithOTP(ctx, email, g.redirectTo); err != nil {
		g.log.WithField("email", email).WithError(err).Error("sign-in request failed")
		return fmt.Errorf("%w: sign in: %w", ErrRemote, err)
	}
	return nil
}

// Watch subscribes fn to session changes until the returned function is called.
func (g *Gate) Watch(fn func(SessionEvent)) func() {
	return g.provider.OnSessionChange(fn)
}

func (g *Gate) SignOut(ctx context.Context) error {
	if err := g.provider.SignOut(ctx); err != nil {
		g.log.WithError(err).Error("sign-out failed")
		return fmt.Errorf("%w: sign out: %w", ErrRemote, err)
	}
	return nil
}
