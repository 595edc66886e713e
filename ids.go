package layerlens

import (
	"fmt"
	"math/rand"
	"time"
)

// IDGenerator supplies identifiers for output nodes. Identifier
// assignment is the only non-deterministic part of a conversion, so
// it is injected: with a fixed generator the pipeline is a pure
// function of its input.
type IDGenerator interface {
	NextID() string
}

type sequentialIDs struct {
	prefix string
	next   int
}

// NewSequentialIDs returns a generator producing prefix-0, prefix-1,
// and so on. Use it wherever reproducible output is needed.
func NewSequentialIDs(prefix string) IDGenerator {
	return &sequentialIDs{prefix: prefix}
}

func (g *sequentialIDs) NextID() string {
	id := fmt.Sprintf("%s-%d", g.prefix, g.next)
	g.next++
	return id
}

type randomIDs struct {
	rng *rand.Rand
}

// NewRandomIDs returns a generator producing random hexadecimal
// identifiers, suitable when output trees from separate conversions
// may be merged downstream.
func NewRandomIDs() IDGenerator {
	return &randomIDs{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *randomIDs) NextID() string {
	return fmt.Sprintf("node-%08x", g.rng.Uint32())
}
