// Package idgen hands out the opaque identifiers assigned to projects,
// columns and cards when they are created.
package idgen

import (
	"encoding/base32"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new globally unique identifier on every call
type Generator interface {
	NewID() string
}

// Func adapts a plain function to the Generator interface
type Func func() string

// NewID implements Generator
func (f Func) NewID() string {
	return f()
}

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Random generates ids from random (v4) UUIDs encoded as 26 lowercase
// base32 characters, which keeps them short enough for status bars.
type Random struct{}

// NewRandom returns the default generator
func NewRandom() Random {
	return Random{}
}

// NewID implements Generator
func (Random) NewID() string {
	u := uuid.New()
	return strings.ToLower(encoding.EncodeToString(u[:]))
}

// Sequence produces predictable ids ("<prefix>1", "<prefix>2", ...).
// Used by tests and by replay when --deterministic is set.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a sequence generator with the given prefix
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID implements Generator
func (s *Sequence) NewID() string {
	return s.prefix + strconv.FormatInt(s.next.Add(1), 10)
}
