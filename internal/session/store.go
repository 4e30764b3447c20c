package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"pixelform/internal/artifact"
)

// maxSessions bounds concurrently held sessions; the least recently
// used session is evicted when the cap is reached. Sessions are
// memory-only and never outlive the process.
const maxSessions = 1024

// ErrBusy refuses a submit while a run is already in flight.
var ErrBusy = errors.New("a generation run is already in progress")

// Notification is pushed to subscribers after every applied event.
type Notification struct {
	Seq   int64
	State State
}

// Session serializes all mutations of one State behind a mutex and
// fans out a Notification per applied event.
type Session struct {
	ID string

	mu    sync.Mutex
	state State
	seq   int64
	subs  map[chan Notification]struct{}
}

// Snapshot returns the current state. Entries and artifacts inside are
// immutable by convention, so the shallow copy is safe to read.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one event and returns the resulting state.
func (s *Session) Dispatch(ev Event) State {
	s.mu.Lock()
	s.state = Apply(s.state, ev)
	s.seq++
	n := Notification{Seq: s.seq, State: s.state}
	for ch := range s.subs {
		select {
		case ch <- n:
		default: // slow subscriber, drop rather than block mutation
		}
	}
	st := s.state
	s.mu.Unlock()
	return st
}

// Begin gates one run per session: it rejects when busy, otherwise
// applies SubmissionStarted and returns the artifacts that were staged
// at submit time.
func (s *Session) Begin(entry Entry) ([]artifact.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Busy {
		return nil, ErrBusy
	}
	stagedArtifacts := s.state.Pending
	s.state = Apply(s.state, SubmissionStarted{Entry: entry})
	s.seq++
	n := Notification{Seq: s.seq, State: s.state}
	for ch := range s.subs {
		select {
		case ch <- n:
		default:
		}
	}
	return stagedArtifacts, nil
}

// Subscribe registers a state listener. The returned cancel func must
// be called to release the channel.
func (s *Session) Subscribe() (<-chan Notification, func()) {
	ch := make(chan Notification, 32)
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[chan Notification]struct{})
	}
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch, func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
}

// Store holds active sessions in a bounded LRU cache.
type Store struct {
	cache *lru.Cache[string, *Session]
}

func NewStore() (*Store, error) {
	cache, err := lru.New[string, *Session](maxSessions)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

func (s *Store) Create() *Session {
	sess := &Session{
		ID:    uuid.NewString(),
		state: NewState(),
	}
	s.cache.Add(sess.ID, sess)
	return sess
}

func (s *Store) Get(id string) (*Session, bool) {
	return s.cache.Get(id)
}

func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}
