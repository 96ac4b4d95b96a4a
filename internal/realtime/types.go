package realtime

import (
	"encoding/json"
	"time"
)

// Event is a row change kind. EventAll matches every kind.
type Event string

const (
	EventInsert Event = "INSERT"
	EventUpdate Event = "UPDATE"
	EventDelete Event = "DELETE"
	EventAll    Event = "*"
)

func (e Event) IsValid() bool {
	switch e {
	case EventInsert, EventUpdate, EventDelete, EventAll:
		return true
	}
	return false
}

// Matches reports whether a subscription for e receives a change of kind t.
func (e Event) Matches(t Event) bool {
	return e == EventAll || e == t
}

// Change is one row change on a collection, as carried on the bus.
type Change struct {
	Table           string          `json:"table"`
	Type            Event           `json:"type"`
	Record          json.RawMessage `json:"record"`
	OldRecord       json.RawMessage `json:"old_record,omitempty"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
}

// Decode unmarshals the new row into v.
func (c Change) Decode(v any) error {
	return json.Unmarshal(c.Record, v)
}

// NewChange encodes record and old (which may be nil) into a Change.
func NewChange(table string, event Event, record, old any, at time.Time) (Change, error) {
	if table == "" {
		return Change{}, ErrEmptyCollection
	}
	if event == EventAll || !event.IsValid() {
		return Change{}, ErrInvalidEvent
	}

	rec, err := json.Marshal(record)
	if err != nil {
		return Change{}, err
	}
	c := Change{Table: table, Type: event, Record: rec, CommitTimestamp: at.UTC()}
	if old != nil {
		if c.OldRecord, err = json.Marshal(old); err != nil {
			return Change{}, err
		}
	}
	return c, nil
}

// Callback receives matching changes on the dispatcher goroutine.
type Callback func(Change)

// Message is a raw payload received on a bus channel.
type Message struct {
	Channel string
	Payload []byte
}
