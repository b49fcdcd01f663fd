package worker

import (
	"context"
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/repository"

	"github.com/rs/zerolog/log"
)

// saveJob is one pending mirror write. Only the newest blob per key matters:
// every snapshot is the complete record, so intermediate states can be
// skipped when mutations outpace the backend.
type saveJob struct {
	key  string
	blob []byte
}

// Saver mirrors engine state to the key-value backend without ever blocking
// a mutation. Saves are fire-and-forget: Enqueue returns immediately, the
// background goroutine performs the write, and failures are logged and
// swallowed — in-memory state stays the source of truth and is never rolled
// back on a persistence error.
type Saver struct {
	store repository.KVStore
	jobs  chan saveJob
	done  chan struct{}
}

func NewSaver(store repository.KVStore, queueSize int) *Saver {
	return &Saver{
		store: store,
		jobs:  make(chan saveJob, queueSize),
		done:  make(chan struct{}),
	}
}

// Enqueue schedules a mirror write. Never blocks: when the queue is full the
// oldest pending job is evicted to make room, since the newer snapshot
// supersedes it anyway.
func (s *Saver) Enqueue(key string, blob []byte) {
	job := saveJob{key: key, blob: blob}
	for {
		select {
		case s.jobs <- job:
			return
		default:
		}
		select {
		case stale := <-s.jobs:
			log.Debug().Str("key", stale.key).Msg("save queue full, dropping superseded snapshot")
		default:
		}
	}
}

// Start launches the save loop. It drains until ctx is cancelled, then
// flushes the newest pending snapshot per key before signalling Wait.
func (s *Saver) Start(ctx context.Context) {
	go s.run(ctx)
	log.Info().Msg("snapshot saver started")
}

// Wait blocks until the save loop has flushed and exited. Called during
// graceful shutdown so the final state reaches disk.
func (s *Saver) Wait() {
	<-s.done
}

func (s *Saver) run(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			s.flush()
			log.Info().Msg("snapshot saver stopped")
			return
		case job := <-s.jobs:
			s.save(s.coalesce(job))
		}
	}
}

// coalesce drains queued jobs for the same key, keeping only the newest
// blob. Jobs for other keys go straight to the backend in arrival order.
func (s *Saver) coalesce(job saveJob) saveJob {
	for {
		select {
		case next := <-s.jobs:
			if next.key != job.key {
				s.save(job)
			}
			job = next
		default:
			return job
		}
	}
}

func (s *Saver) flush() {
	latest := make(map[string]saveJob)
	order := make([]string, 0, 2)
	for {
		select {
		case job := <-s.jobs:
			if _, seen := latest[job.key]; !seen {
				order = append(order, job.key)
			}
			latest[job.key] = job
		default:
			for _, key := range order {
				s.save(latest[key])
			}
			return
		}
	}
}

// save performs one mirror write. Errors are logged and swallowed — a failed
// save is never surfaced to the caller of a CRUD operation.
func (s *Saver) save(job saveJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.store.Save(ctx, job.key, job.blob); err != nil {
		log.Warn().Str("key", job.key).Err(err).Msg("failed to persist snapshot, keeping in-memory state")
		return
	}
	log.Debug().Str("key", job.key).Int("bytes", len(job.blob)).Msg("snapshot persisted")
}
