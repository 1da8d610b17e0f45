// Package document holds the canonical resume record for each active editing
// session and applies structural edits without a new extraction round-trip.
// Sessions live in process memory only; there is no persistence layer behind
// them, and a restart discards all of them.
package document

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dscirocco/cvarchitect/internal/types"
)

// DefaultTTL is how long an idle session survives before the sweeper drops it.
const DefaultTTL = 2 * time.Hour

// Session is one user's editing state: the current record plus the bookkeeping
// needed to keep a late extraction response from clobbering a newer one.
type Session struct {
	ID string

	mu           sync.RWMutex
	record       *types.ResumeRecord
	profileImage string
	lastAccess   time.Time

	// beginSeq is incremented every time a re-generation starts for this
	// session. A result is applied only if it carries the latest sequence
	// number, so concurrent language switches resolve last-write-wins.
	beginSeq uint64
}

// Store is the in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
}

// NewStore creates a session store and starts the idle-session sweeper.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create registers a new session holding the given record.
func (s *Store) Create(record *types.ResumeRecord) *Session {
	session := &Session{
		ID:         uuid.NewString(),
		record:     record,
		lastAccess: time.Now(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns the session for an ID, or ErrSessionNotFound.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	session.touch()
	return session, nil
}

// Close stops the sweeper.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) sweep() {
	ticker := time.NewTicker(s.ttl / 4)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, session := range s.sessions {
				session.mu.RLock()
				idle := session.lastAccess.Before(cutoff)
				session.mu.RUnlock()
				if idle {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

func (sess *Session) touch() {
	sess.mu.Lock()
	sess.lastAccess = time.Now()
	sess.mu.Unlock()
}

// Record returns a deep copy of the current record, safe to serialize while
// edits continue.
func (sess *Session) Record() *types.ResumeRecord {
	sess.mu.RLock()
	defer sess.mu.RUnlock()
	return cloneRecord(sess.record)
}

// Replace swaps the whole record, used when the editor submits a full
// document (wholesale replace is how the UI applies multi-field edits).
func (sess *Session) Replace(record *types.ResumeRecord) {
	sess.mu.Lock()
	sess.record = record
	sess.lastAccess = time.Now()
	sess.mu.Unlock()
}

// ProfileImage returns the photo reference attached to the session, usually
// a data URL, or empty when the user did not upload one.
func (sess *Session) ProfileImage() string {
	sess.mu.RLock()
	defer sess.mu.RUnlock()
	return sess.profileImage
}

// SetProfileImage attaches a photo reference to the session.
func (sess *Session) SetProfileImage(ref string) {
	sess.mu.Lock()
	sess.profileImage = ref
	sess.mu.Unlock()
}

// BeginRegeneration marks the start of a re-extraction (for example a
// language switch) and returns the sequence token the eventual result must
// present to CommitRegeneration.
func (sess *Session) BeginRegeneration() uint64 {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.beginSeq++
	return sess.beginSeq
}

// CommitRegeneration installs a regenerated record if seq is still current.
// A stale result (an older request finishing after a newer one) is dropped
// and the method reports false; the previously displayed record stays
// intact.
func (sess *Session) CommitRegeneration(record *types.ResumeRecord, seq uint64) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if seq != sess.beginSeq {
		return false
	}
	sess.record = record
	sess.lastAccess = time.Now()
	return true
}

func cloneRecord(r *types.ResumeRecord) *types.ResumeRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.WorkExperience = make([]types.WorkExperience, len(r.WorkExperience))
	for i, w := range r.WorkExperience {
		w.Description = append([]string(nil), w.Description...)
		out.WorkExperience[i] = w
	}
	out.Education = append([]types.Education(nil), r.Education...)
	out.Skills = append([]types.LabeledToggle(nil), r.Skills...)
	out.Languages = append([]types.LabeledToggle(nil), r.Languages...)
	out.Certifications = append([]types.LabeledToggle(nil), r.Certifications...)
	return &out
}
