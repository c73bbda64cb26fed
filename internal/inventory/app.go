package inventory

import (
	"MovingList/internal/models"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type Options struct {
	AllowedEmails []string
	// RedirectTo is where the mailed sign-in link points.
	RedirectTo string
}

// App wires the gate, the collection and the dispatcher together and keeps
// the collection in step with the session.
type App struct {
	Gate       *Gate
	Store      *Collection
	Dispatcher *Dispatcher

	log         logrus.FieldLogger
	mu          sync.Mutex
	unsubscribe func()
}

func NewApp(provider IdentityProvider, remote RemoteStore, opts Options, log logrus.FieldLogger) *App {
	store := NewCollection(log)
	return &App{
		Gate:       NewGate(provider, opts.AllowedEmails, opts.RedirectTo, log),
		Store:      store,
		Dispatcher: NewDispatcher(remote, store, log),
		log:        log,
	}
}

// Start subscribes to session changes and loads the collection when a
// session already exists. It reports whether the visitor is signed in.
func (a *App) Start(ctx context.Context) (bool, error) {
	a.mu.Lock()
	if a.unsubscribe == nil {
		a.unsubscribe = a.Gate.Watch(a.onSessionChange)
	}
	a.mu.Unlock()

	sess, err := a.Gate.Session(ctx)
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, nil
	}
	return true, a.Dispatcher.Reload(ctx)
}

func (a *App) onSessionChange(event SessionEvent) {
	a.log.WithField("event", event.Kind.String()).Debug("session changed")
	switch event.Kind {
	case SignedIn:
		// failures are recorded in Store.LoadErr
		_ = a.Dispatcher.Reload(context.Background())
	case SignedOut:
		a.Store.Reset()
	}
}

// Reload fetches both collections again, discarding local state on success.
func (a *App) Reload(ctx context.Context) error {
	return a.Dispatcher.Reload(ctx)
}

func (a *App) View(query string) []models.Box {
	return a.Store.View(query)
}

func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}
