package persistence

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/state"
	"code.cloudfoundry.org/access/pkg/logx"
)

const DefaultWriteInterval = 30 * time.Second

// Scheduler consumes write-urgency flags from published snapshots.
// Sync states are written before StateMutated returns; async states
// are coalesced and flushed by the Run loop. A failed write stays
// pending and is retried on the next flush.
type Scheduler struct {
	mu            sync.Mutex
	pendingSystem *state.SystemState
	pendingUsers  map[access.UserID]*state.UserState

	writer   Writer
	logger   logx.Logger
	interval time.Duration
}

type Option func(*Scheduler)

func WithWriteInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = interval
	}
}

func NewScheduler(logger logx.Logger, writer Writer, opts ...Option) *Scheduler {
	s := &Scheduler{
		pendingUsers: make(map[access.UserID]*state.UserState),
		writer:       writer,
		logger:       logger.WithName("persistence-scheduler"),
		interval:     DefaultWriteInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StateMutated inspects the snapshot's write-urgency flags, resetting
// each as it is consumed. Later snapshots supersede pending ones; a
// state only ever reaches the writer in its newest published form.
func (s *Scheduler) StateMutated(ctx context.Context, st *state.AccessState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	systemMode := s.consumeSystem(st)
	if systemMode == state.WriteModeSync {
		if err := s.writeSystemLocked(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// a removed user must never reach the writer off a stale pending entry
	for userID := range s.pendingUsers {
		if !st.UserStates.Contains(userID) {
			delete(s.pendingUsers, userID)
		}
	}

	st.UserStates.Each(func(_ int, userID access.UserID, userState *state.UserState) {
		mode := userState.TakeWriteMode()
		if mode == state.WriteModeNone {
			return
		}
		s.pendingUsers[userID] = userState
		if mode == state.WriteModeSync {
			if err := s.writeUserLocked(ctx, userID); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	})

	return firstErr
}

func (s *Scheduler) consumeSystem(st *state.AccessState) state.WriteMode {
	mode := st.SystemState.TakeWriteMode()
	if mode != state.WriteModeNone {
		s.pendingSystem = st.SystemState
	}
	return mode
}

// Run flushes pending async writes on a fixed cadence until the
// context is cancelled, then performs one final flush.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Flush(ctx); err != nil {
				s.logger.Error(failedToFlush, err)
			}
		case <-ctx.Done():
			if err := s.Flush(context.Background()); err != nil {
				s.logger.Error(failedToFlush, err)
			}
			return ctx.Err()
		}
	}
}

// Flush writes out every pending state now.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	if err := s.writeSystemLocked(ctx); err != nil {
		firstErr = err
	}
	for userID := range s.pendingUsers {
		if err := s.writeUserLocked(ctx, userID); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (s *Scheduler) writeSystemLocked(ctx context.Context) error {
	if s.pendingSystem == nil {
		return nil
	}
	if err := s.writer.WriteSystemState(ctx, s.pendingSystem); err != nil {
		s.logger.Error(failedToWriteSystemState, err)
		return err
	}
	s.pendingSystem = nil
	return nil
}

func (s *Scheduler) writeUserLocked(ctx context.Context, userID access.UserID) error {
	userState, ok := s.pendingUsers[userID]
	if !ok {
		return nil
	}
	if err := s.writer.WriteUserState(ctx, userID, userState); err != nil {
		s.logger.Error(failedToWriteUserState, err, logx.Data{Key: "user-id", Value: userID})
		return err
	}
	delete(s.pendingUsers, userID)
	return nil
}
