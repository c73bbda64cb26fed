// Package inventory keeps the signed-in owner's boxes and items in memory,
// mirrors every change to a remote store and derives the filtered view.
package inventory

import (
	"MovingList/internal/models"
	"context"
	"time"
)

// RemoteStore is the hosted data store holding the box and item collections.
// Deleting a box must delete its items.
type RemoteStore interface {
	// ListBoxes returns every box, newest first.
	ListBoxes(ctx context.Context) ([]models.Box, error)
	ListItems(ctx context.Context, query ItemQuery) ([]models.Item, error)
	InsertBox(ctx context.Context, name string) (*models.Box, error)
	UpdateBox(ctx context.Context, id uint, name string) error
	DeleteBox(ctx context.Context, id uint) error
	InsertItem(ctx context.Context, boxID uint, name string) (*models.Item, error)
	UpdateItem(ctx context.Context, id uint, name string) error
	DeleteItem(ctx context.Context, id uint) error
}

// ItemQuery narrows ListItems. A zero BoxID lists items of every box.
type ItemQuery struct {
	BoxID   uint
	OrderBy string
}

type IdentityProvider interface {
	// Session returns nil without error when nobody is signed in.
	Session(ctx context.Context) (*Session, error)
	OnSessionChange(fn func(SessionEvent)) (unsubscribe func())
	SignInWithOTP(ctx context.Context, email, redirectTo string) error
	SignOut(ctx context.Context) error
}

type Session struct {
	AccessToken string    `json:"access_token"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type SessionEventKind int

const (
	SignedIn SessionEventKind = iota
	SignedOut
)

func (k SessionEventKind) String() string {
	switch k {
	case SignedIn:
		return "signed_in"
	case SignedOut:
		return "signed_out"
	}
	return "unknown"
}

type SessionEvent struct {
	Kind SessionEventKind
	// Session is nil for SignedOut.
	Session *Session
}
