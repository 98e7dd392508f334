// Package journal persists a record of trigger firings in SQLite. Entries
// are write-once scalars: timestamps as fixed-width UTC strings so they
// sort lexicographically, parameter and payload as validated JSON.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

var (
	// ErrInvalidEntryID indicates an empty entry ID.
	ErrInvalidEntryID = errors.New("invalid entry ID")
	// ErrInvalidParameterJSON indicates a parameter column that is not valid JSON.
	ErrInvalidParameterJSON = errors.New("parameter json is not valid")
	// ErrInvalidPayloadJSON indicates a payload column that is not valid JSON.
	ErrInvalidPayloadJSON = errors.New("payload json is not valid")
	// ErrUnknownOutcome indicates an outcome label the journal does not know.
	ErrUnknownOutcome = errors.New("unknown outcome")
)

// timeLayout pads nanoseconds so stored strings order like the instants
// they encode.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one journaled firing, built on scalars only.
type Entry struct {
	ID            string
	FiredAt       time.Time
	Trigger       string
	Command       string
	Outcome       string
	ParameterJSON []byte
	PayloadJSON   []byte
	Error         string
	Duration      time.Duration
}

// NewEntry converts a firing into a journal entry with a fresh ID.
func NewEntry(firing triggers.Firing) (Entry, error) {
	paramJSON, err := firing.Parameter.ToJSON()
	if err != nil {
		return Entry{}, fmt.Errorf("journal: encode parameter: %w", err)
	}
	payloadJSON, err := firing.Payload.ToJSON()
	if err != nil {
		return Entry{}, fmt.Errorf("journal: encode payload: %w", err)
	}

	errText := ""
	if firing.Err != nil {
		errText = firing.Err.Error()
	}

	entry := Entry{
		ID:            uuid.NewString(),
		FiredAt:       firing.At.UTC(),
		Trigger:       firing.Trigger,
		Command:       firing.Command,
		Outcome:       firing.Outcome.String(),
		ParameterJSON: paramJSON,
		PayloadJSON:   payloadJSON,
		Error:         errText,
		Duration:      firing.Duration,
	}
	if err := entry.validate(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (e Entry) validate() error {
	if e.ID == "" {
		return fmt.Errorf("journal: %w", ErrInvalidEntryID)
	}
	if _, err := bind.ParseOutcome(e.Outcome); err != nil {
		return fmt.Errorf("journal: %q: %w", e.Outcome, ErrUnknownOutcome)
	}
	if !jsoniter.ConfigFastest.Valid(e.ParameterJSON) {
		return fmt.Errorf("journal: %w", ErrInvalidParameterJSON)
	}
	if !jsoniter.ConfigFastest.Valid(e.PayloadJSON) {
		return fmt.Errorf("journal: %w", ErrInvalidPayloadJSON)
	}
	return nil
}

// Filter narrows List results. Zero values mean "any"; Limit 0 means
// unlimited.
type Filter struct {
	Command string
	Outcome string
	Since   time.Time
	Limit   int
}

func (f Filter) validate() error {
	if f.Outcome != "" {
		if _, err := bind.ParseOutcome(f.Outcome); err != nil {
			return fmt.Errorf("journal: filter: %q: %w", f.Outcome, ErrUnknownOutcome)
		}
	}
	if f.Limit < 0 {
		return fmt.Errorf("journal: filter: limit cannot be negative")
	}
	return nil
}
