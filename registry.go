package vvector

import (
	"context"
	"sync"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slog"
)

// Process-wide registry of live vectors created with CreateTrackLeaks. The
// registry exists so tests and shutdown paths can discover containers that
// were never destroyed; vectors created without the flag never touch it.
//
// The registry has its own lock because it is shared across containers, even
// though each individual container is single-threaded.
var liveVectors = struct {
	sync.Mutex
	nextID  uint64
	vectors *swiss.Map[uint64, *RawVector]
}{
	vectors: swiss.NewMap[uint64, *RawVector](16),
}

func registerVector(v *RawVector) uint64 {
	liveVectors.Lock()
	defer liveVectors.Unlock()

	liveVectors.nextID++
	id := liveVectors.nextID
	liveVectors.vectors.Put(id, v)

	return id
}

func unregisterVector(id uint64) {
	liveVectors.Lock()
	defer liveVectors.Unlock()

	liveVectors.vectors.Delete(id)
}

// TrackedVectorCount returns the number of leak-tracked vectors that have
// not been destroyed yet.
func TrackedVectorCount() int {
	liveVectors.Lock()
	defer liveVectors.Unlock()

	return liveVectors.vectors.Count()
}

// LogLeakedVectors logs every leak-tracked vector that is still live and
// returns how many there were. Call it after the point where every container
// should have been destroyed- anything it reports was leaked.
func LogLeakedVectors(logger *slog.Logger) int {
	liveVectors.Lock()
	defer liveVectors.Unlock()

	count := 0
	liveVectors.vectors.Iter(func(id uint64, v *RawVector) bool {
		count++
		logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED VECTOR] vector was never destroyed",
			slog.Uint64("id", id),
			slog.Int("length", v.Len()),
			slog.Int("capacityBytes", v.Capacity()),
			slog.Int("elementSize", v.ElementSize()),
		)
		return false
	})

	return count
}
