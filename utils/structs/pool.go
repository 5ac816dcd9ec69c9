package structs

import "sync"

// Pool is an interface for pools of reusable objects.
type Pool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is a Pool backed by a [sync.Pool].
type SyncPool[T any] struct {
	pool *sync.Pool
}

var _ Pool[[]uint64] = (*SyncPool[[]uint64])(nil)

// NewSyncPool creates a new SyncPool.
// The input function f is used to create new objects if none is available in the pool.
func NewSyncPool[T any](f func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{
			New: func() any {
				return f()
			},
		},
	}
}

// Get returns an object of type T from the pool.
func (spool *SyncPool[T]) Get() T {
	return spool.pool.Get().(T)
}

// Put returns obj to the pool.
func (spool *SyncPool[T]) Put(obj T) {
	spool.pool.Put(obj)
}
