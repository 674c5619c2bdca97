package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// CheckInterval is how often the guard re-reads the stored credential.
// An expired token can therefore be noticed up to one interval late.
const CheckInterval = 15 * time.Second

// NoticeExpired is shown when a stored session has run out.
const NoticeExpired = "Sessão expirada, faça o login novamente"

// NoticeMissing is shown when no token is stored at all.
const NoticeMissing = "Token não encontrado, faça o login novamente"

// Guard polls the stored credential on a fixed interval, independent of any
// request's lifecycle. It only observes: no token is cleared, no request is
// intercepted. When the credential is absent, malformed or expired it flips
// to the expired state and fires the notify callback once per transition.
type Guard struct {
	store    Store
	interval time.Duration
	notify   func(notice string)
	now      func() time.Time

	mu      sync.RWMutex
	expired bool
	notice  string
}

func NewGuard(store Store, notify func(notice string)) *Guard {
	return &Guard{
		store:    store,
		interval: CheckInterval,
		notify:   notify,
		now:      time.Now,
	}
}

// Expired reports the state observed at the last tick.
func (g *Guard) Expired() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.expired
}

// Notice is the message for the current state: NoticeMissing when no token
// is stored, NoticeExpired otherwise, empty while the session is live.
func (g *Guard) Notice() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.notice
}

// Reset clears the expired state, e.g. after a fresh login.
func (g *Guard) Reset() {
	g.mu.Lock()
	g.expired = false
	g.notice = ""
	g.mu.Unlock()
}

// Tick runs one check immediately. Exposed so tests and the run loop share
// the same code path.
func (g *Guard) Tick() {
	err := Check(g.store, g.now())

	notice := ""
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			notice = NoticeMissing
		} else {
			notice = NoticeExpired
		}
	}

	g.mu.Lock()
	was := g.expired
	g.expired = err != nil
	g.notice = notice
	fire := g.expired && !was
	g.mu.Unlock()

	if fire && g.notify != nil {
		g.notify(notice)
	}
}

// Run blocks, checking every interval until ctx is canceled.
func (g *Guard) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}
