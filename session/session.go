// Package session keeps drill state between requests: the chord on screen
// and the octave offset that stepwise transposition accumulates.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/db"
	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/logger"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/voicing"
)

var (
	ErrNotFound      = errors.New("session not found")
	ErrNoChord       = errors.New("session has no chord to transpose")
	ErrInvalidConfig = errors.New("invalid session config")
)

type Config struct {
	Selections []model.Selection
	Keys       []model.KeySignature
	Mode       model.Mode
}

// Validate fills in the default mode and rejects symbols the engine does not
// know. Empty selections or keys are allowed; they just never produce a chord.
func (c *Config) Validate() error {
	if c.Mode == "" {
		c.Mode = model.Major
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	for _, k := range c.Keys {
		if _, ok := keysig.Lookup(k); !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalidConfig, model.ErrUnknownKey, k)
		}
	}
	for _, sel := range c.Selections {
		if _, _, ok := voicing.SelectionToCategory(sel); !ok {
			return fmt.Errorf("%w: selection %+v", ErrInvalidConfig, sel)
		}
	}
	return nil
}

type Snapshot struct {
	ID           string
	Seq          int
	Chord        *model.Chord
	OctaveOffset int
	Displayed    model.Pitches
	Label        string
	Name         string
	Exhausted    bool
}

type session struct {
	id      string
	config  Config
	chord   *model.Chord
	offset  int
	seq     int
	touched time.Time
}

func (s *session) snapshot() Snapshot {
	snap := Snapshot{ID: s.id, Seq: s.seq, OctaveOffset: s.offset, Exhausted: s.chord == nil}
	if s.chord != nil {
		c := *s.chord
		snap.Chord = &c
		snap.Displayed = chord.Displayed(c, s.offset)
		snap.Label = chord.RomanNumeral(c)
		snap.Name = chord.Name(c)
	}
	return snap
}

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 24 * time.Hour

// Manager holds sessions in memory. Sessions idle for longer than the TTL
// are dropped; a TTL of zero keeps them for the life of the process.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*session
	generator *chord.Generator
	store     db.HistoryStore
	ttl       time.Duration
	now       func() time.Time
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(g *chord.Generator, store db.HistoryStore, opts ...Option) *Manager {
	if store == nil {
		store = db.NewMemoryStore()
	}
	m := &Manager{
		sessions:  make(map[string]*session),
		generator: g,
		store:     store,
		ttl:       DefaultTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a session and draws its first chord. Expired sessions are
// swept first.
func (m *Manager) Create(ctx context.Context, cfg Config) (Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	now := m.now()
	m.evictLocked(now)
	s := &session{id: uuid.New().String(), config: cfg, touched: now}
	m.sessions[s.id] = s
	snap := m.draw(s)
	m.mu.Unlock()

	m.record(ctx, snap)
	return snap, nil
}

// Next replaces the current chord with a fresh random one and resets the
// octave offset.
func (m *Manager) Next(ctx context.Context, id string) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.lookupLocked(id)
	if !ok {
		m.mu.Unlock()
		return Snapshot{}, ErrNotFound
	}
	snap := m.draw(s)
	m.mu.Unlock()

	m.record(ctx, snap)
	return snap, nil
}

// Step transposes the current chord one diatonic step.
func (m *Manager) Step(ctx context.Context, id string, dir chord.Direction) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.lookupLocked(id)
	if !ok {
		m.mu.Unlock()
		return Snapshot{}, ErrNotFound
	}
	if s.chord == nil {
		m.mu.Unlock()
		return Snapshot{}, ErrNoChord
	}
	next, offset, err := chord.Step(*s.chord, dir, s.offset)
	if err != nil {
		m.mu.Unlock()
		return Snapshot{}, err
	}
	s.chord = &next
	s.offset = offset
	s.seq++
	snap := s.snapshot()
	m.mu.Unlock()

	m.record(ctx, snap)
	return snap, nil
}

func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.lookupLocked(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return s.snapshot(), nil
}

func (m *Manager) History(ctx context.Context, id string) ([]model.HistoryEntry, error) {
	m.mu.Lock()
	_, ok := m.lookupLocked(id)
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return m.store.List(ctx, id)
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.touched) > m.ttl
}

// lookupLocked finds a live session and marks it used. m.mu must be held.
func (m *Manager) lookupLocked(id string) (*session, bool) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		return nil, false
	}
	s.touched = now
	return s, true
}

func (m *Manager) evictLocked(now time.Time) {
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
		}
	}
}

// draw must be called with m.mu held.
func (m *Manager) draw(s *session) Snapshot {
	s.chord = m.generator.GenerateRandomChord(s.config.Selections, s.config.Keys, s.config.Mode)
	s.offset = 0
	s.seq++
	return s.snapshot()
}

// record appends the displayed chord to the history store. The session has
// already moved on, so a store failure is logged rather than returned.
func (m *Manager) record(ctx context.Context, snap Snapshot) {
	if snap.Chord == nil {
		return
	}
	err := m.store.Append(ctx, model.HistoryEntry{
		SessionID:    snap.ID,
		Seq:          snap.Seq,
		At:           m.now().UTC(),
		Chord:        *snap.Chord,
		OctaveOffset: snap.OctaveOffset,
		Displayed:    snap.Displayed,
		Label:        snap.Label,
	})
	if err != nil {
		logger.Error("could not record history", err, logger.Fields{"session_id": snap.ID, "seq": snap.Seq})
	}
}
