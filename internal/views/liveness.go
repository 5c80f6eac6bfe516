package views

import (
	"errors"
	"sync/atomic"
)

// ErrStale marks a load whose view was superseded (offer switched,
// panel reopened) before the response arrived. Callers drop the result
// instead of rendering it.
var ErrStale = errors.New("views: view superseded by a newer load")

// liveness is the is-this-view-still-relevant guard. Every load takes a
// fresh generation; a response is applied only while its generation is
// still current. Late responses are discarded, not aborted.
type liveness struct {
	gen atomic.Uint64
}

func (l *liveness) next() uint64 {
	return l.gen.Add(1)
}

func (l *liveness) current(gen uint64) bool {
	return l.gen.Load() == gen
}
