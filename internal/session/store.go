// Package session keeps one roster controller per browser session.
//
// Sessions are identified by a random UUID carried in a cookie and live in
// memory only. Idle sessions are dropped lazily when new ones are created.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/roster-admin/internal/metrics"
	"github.com/csg33k/roster-admin/internal/roster"
)

const (
	CookieName     = "roster_session"
	DefaultMaxIdle = 12 * time.Hour
)

// Session owns the view state of one browser tab group.
type Session struct {
	ID string

	mu       sync.Mutex
	ctrl     *roster.Controller
	lastSeen time.Time
}

// With runs fn while holding the session lock.
func (s *Session) With(fn func(c *roster.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctrl)
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  func() *roster.Controller
	maxIdle  time.Duration
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewStore returns an empty store. factory builds the controller of every
// new session.
func NewStore(factory func() *roster.Controller, maxIdle time.Duration, m *metrics.Metrics) *Store {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Store{
		sessions: make(map[string]*Session),
		factory:  factory,
		maxIdle:  maxIdle,
		metrics:  m,
		now:      time.Now,
	}
}

// Get returns the session for id. Any other id gets a fresh session under a
// newly minted id; ids offered by clients are never adopted.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	if s, ok := st.sessions[id]; ok {
		s.lastSeen = now
		return s
	}

	st.expire(now)
	s := &Session{ID: uuid.NewString(), ctrl: st.factory(), lastSeen: now}
	st.sessions[s.ID] = s
	st.report()
	return s
}

// FromRequest resolves the session of r and refreshes its cookie on w.
func (st *Store) FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	var id string
	if c, err := r.Cookie(CookieName); err == nil {
		id = c.Value
	}
	s := st.Get(id)
	if s.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		reissue(r, s.ID)
	}
	return s
}

// reissue swaps the session cookie on r so later lookups within the same
// request resolve the session just issued.
func reissue(r *http.Request, id string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, c := range cookies {
		if c.Name != CookieName {
			r.AddCookie(c)
		}
	}
	r.AddCookie(&http.Cookie{Name: CookieName, Value: id})
}

// Delete forgets a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	st.report()
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// expire must be called with mu held.
func (st *Store) expire(now time.Time) {
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.maxIdle {
			delete(st.sessions, id)
		}
	}
}

// report must be called with mu held.
func (st *Store) report() {
	if st.metrics != nil {
		st.metrics.ActiveSessions.Set(float64(len(st.sessions)))
	}
}
