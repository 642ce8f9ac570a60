// Package idgen issues the identifiers the explorer hands out, such as the
// listing view ids carried in fragment URLs.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/pokemon-explorer/internal/pkg/idgen Generator

type Generator interface {
	Generate() string
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// UUIDGenerator issues time-ordered (version 7) UUIDs.
type UUIDGenerator struct {
	prefix string
}

func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// random source failure; a v4 id is still unique
		return withPrefix(g.prefix, uuid.NewString())
	}
	return withPrefix(g.prefix, id.String())
}

// SequentialGenerator issues 1, 2, 3... and is safe for concurrent use.
// Tests use it for predictable view ids.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}
