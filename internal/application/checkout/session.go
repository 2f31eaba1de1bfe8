package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stylesphere/storefront/internal/domain/checkout"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = shared.NewDomainError("SESSION_NOT_FOUND", "Checkout session not found")

// Session is one buyer's checkout attempt: the immutable selection, the form
// being filled in, and the submitter state machine. Nothing is shared between
// sessions.
type Session struct {
	ID        uuid.UUID
	Submitter *checkout.Submitter
	CreatedAt time.Time

	mu        sync.Mutex
	selection checkout.SelectionContext
	form      checkout.FormState
}

// NewSession creates a session around a validated selection
func NewSession(selection checkout.SelectionContext, submitter *checkout.Submitter) *Session {
	return &Session{
		ID:        uuid.New(),
		Submitter: submitter,
		CreatedAt: time.Now(),
		selection: selection,
		form:      checkout.NewFormState(),
	}
}

// Selection returns the immutable product selection
func (s *Session) Selection() checkout.SelectionContext {
	return s.selection
}

// Form returns a snapshot of the current form state
func (s *Session) Form() checkout.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// UpdateForm applies one structural field update
func (s *Session) UpdateForm(section, field, value string) (checkout.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.form.Update(section, field, value)
	if err != nil {
		return checkout.FormState{}, err
	}
	s.form = updated
	return updated, nil
}

// DefaultSessionTTL is how long an untouched checkout session is kept.
// Abandoned checkouts are the common case, so the store must forget them
const DefaultSessionTTL = 30 * time.Minute

// SessionStore keeps live checkout sessions in memory, keyed by session id.
// Sessions older than the TTL are treated as gone: Get expires them lazily,
// and Put sweeps the whole map at most once per TTL so sessions nobody ever
// reads again are still reclaimed
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*Session
	ttl       time.Duration
	lastSweep time.Time
}

// NewSessionStore creates an empty session store with the default TTL
func NewSessionStore() *SessionStore {
	return NewSessionStoreWithTTL(DefaultSessionTTL)
}

// NewSessionStoreWithTTL creates an empty session store. A non-positive ttl
// disables expiry
func NewSessionStoreWithTTL(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:  make(map[uuid.UUID]*Session),
		ttl:       ttl,
		lastSweep: time.Now(),
	}
}

// Put registers a session
func (st *SessionStore) Put(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked(time.Now())
	st.sessions[session.ID] = session
}

// Get looks up a session by id. An expired session is removed and reported
// as not found
func (st *SessionStore) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.expired(session, time.Now()) {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (st *SessionStore) expired(session *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(session.CreatedAt) >= st.ttl
}

func (st *SessionStore) sweepLocked(now time.Time) {
	if st.ttl <= 0 || now.Sub(st.lastSweep) < st.ttl {
		return
	}
	st.lastSweep = now
	for id, session := range st.sessions {
		if st.expired(session, now) {
			delete(st.sessions, id)
		}
	}
}

// Delete removes a session
func (st *SessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of stored sessions, expired ones included
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
