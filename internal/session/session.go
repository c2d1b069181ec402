// Package session tracks live player connections and the run records
// they produce. The SSH server registers a session per connection;
// local play uses a throwaway ID.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// ID uniquely identifies a player connection (an SSH session or the
// local terminal).
type ID string

// NewID returns a random session identifier.
func NewID() ID {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ID("local")
	}
	return ID(hex.EncodeToString(b[:]))
}

// Run outcomes as stored in run history.
const (
	OutcomeWon    = "won"
	OutcomeLost   = "lost"
	OutcomeSecret = "secret"
)

// RunRecord is everything worth keeping about a finished run.
type RunRecord struct {
	GameID       string
	SessionID    ID
	Company      string
	Outcome      string
	Traction     int
	Distance     float64
	Runway       float64
	Equity       float64
	Survivors    int
	DurationSecs int
}

// RunSaver persists finished runs. Implemented by the storage layer;
// kept as an interface so the platform can play without a database.
type RunSaver interface {
	SaveRunRecord(rec RunRecord) error
}

// Info describes one live session.
type Info struct {
	User        string
	Addr        string
	ConnectedAt time.Time
}

// Registry tracks active sessions. Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]Info
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[ID]Info),
	}
}

// Register adds a session to the registry.
func (r *Registry) Register(id ID, info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = info
}

// Unregister removes a session from the registry.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.sessions[id]
	return info, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
