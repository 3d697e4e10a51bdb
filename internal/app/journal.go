package app

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/atomic"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

// JournalEntry is one recorded step notification
type JournalEntry struct {
	ID        string `json:"id" yaml:"id"`
	Seq       uint64 `json:"seq" yaml:"seq"`
	Ts        string `json:"ts" yaml:"ts"`
	Session   string `json:"session" yaml:"session"`
	Event     string `json:"event" yaml:"event"`
	StepIndex int    `json:"step_index" yaml:"step_index"`
	StepID    string `json:"step_id,omitempty" yaml:"step_id,omitempty"`
	Direction string `json:"direction" yaml:"direction"`
}

// Journal keeps an in-memory, ordered record of step entries and exits
type Journal struct {
	mu      sync.Mutex
	session string
	entries []JournalEntry
	seq     atomic.Uint64
	entropy io.Reader
	now     func() time.Time
}

// NewJournal creates an empty journal for session
func NewJournal(session string) *Journal {
	return &Journal{
		session: session,
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Attach records every event of state until the returned function is called
func (j *Journal) Attach(state *wizard.State) func() {
	return state.Subscribe(func(e wizard.Event) {
		j.Record(e)
	})
}

// Record appends e and returns the stored entry
func (j *Journal) Record(e wizard.Event) JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now().UTC()
	entry := JournalEntry{
		ID:        ulid.MustNew(ulid.Timestamp(now), j.entropy).String(),
		Seq:       j.seq.Inc(),
		Ts:        now.Format(time.RFC3339Nano),
		Session:   j.session,
		Event:     e.Type.String(),
		StepIndex: e.StepIndex,
		StepID:    e.StepID,
		Direction: e.Direction.String(),
	}
	j.entries = append(j.entries, entry)
	return entry
}

// Entries returns a copy of all entries in recording order
func (j *Journal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]JournalEntry(nil), j.entries...)
}

// Seq returns the sequence number of the latest entry without waiting for
// a running Record
func (j *Journal) Seq() uint64 {
	return j.seq.Load()
}

// Len returns the number of entries
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// WriteNDJSON writes one JSON object per line
func (j *Journal) WriteNDJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, entry := range j.Entries() {
		if err := enc.Encode(entry); err != nil {
			return err
		}
	}
	return nil
}

// NewSessionID generates a new session id using ULID
func NewSessionID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
