package ledger

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator hands out Prefix1, Prefix2, ... in order.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next uint64
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.Prefix + strconv.FormatUint(g.next, 10)
}
