package stores

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time for every stored timestamp. All stores take
// it injected so tests can pin time; the production clock always reports UTC.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies opaque unique identifiers for new rows.
type IDGenerator interface {
	NewID() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall clock in UTC.
func SystemClock() Clock { return systemClock{} }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.New().String() }

// UUIDGenerator returns an IDGenerator backed by random UUIDs.
func UUIDGenerator() IDGenerator { return uuidGenerator{} }
