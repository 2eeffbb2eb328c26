// Package store owns the current access state snapshot. All mutations
// are serialized behind one lock: copy the current snapshot, mutate
// the copy, publish it atomically. Readers always see a complete,
// never-again-mutated snapshot and need no synchronization.
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
	"code.cloudfoundry.org/access/pkg/access/policy"
	"code.cloudfoundry.org/access/pkg/access/state"
	"code.cloudfoundry.org/access/pkg/logx"
	"code.cloudfoundry.org/access/pkg/metrics"
)

//go:generate counterfeiter . Flusher

// Flusher is handed every freshly published snapshot so it can consume
// the write-urgency flags. Sync urgency must be honored before
// StateMutated returns.
type Flusher interface {
	StateMutated(ctx context.Context, st *state.AccessState) error
}

type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[state.AccessState]

	registry *policy.Registry
	logger   logx.Logger
	statter  metrics.Statter
	flusher  Flusher
}

type Option func(*Store)

func WithLogger(logger logx.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithStatter(statter metrics.Statter) Option {
	return func(s *Store) {
		s.statter = statter
	}
}

func WithFlusher(flusher Flusher) Option {
	return func(s *Store) {
		s.flusher = flusher
	}
}

func NewStore(registry *policy.Registry, opts ...Option) *Store {
	s := &Store{
		registry: registry,
		logger:   logx.None,
		statter:  metrics.NoneStatter,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithName("access-store")
	s.current.Store(state.NewAccessState())
	return s
}

// Current returns the published snapshot. The snapshot is immutable;
// it is superseded, never changed.
func (s *Store) Current() *state.AccessState {
	return s.current.Load()
}

// Mutate runs one transaction: fn receives the old snapshot read-only
// and a copy it owns exclusively. If fn returns nil the copy is
// published. The flusher then consumes the new snapshot's write
// urgency; a sync write failure is returned to the caller.
func (s *Store) Mutate(ctx context.Context, fn func(oldState, newState *state.AccessState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()

	oldState := s.current.Load()
	newState := oldState.Copy()

	if err := fn(oldState, newState); err != nil {
		s.statter.Inc(metricMutationsFailed, 1, alwaysSample)
		return err
	}

	s.current.Store(newState)

	s.statter.Inc(metricMutations, 1, alwaysSample)
	s.statter.TimingDuration(metricMutationDuration, time.Since(started), alwaysSample)

	if s.flusher != nil {
		if err := s.flusher.StateMutated(ctx, newState); err != nil {
			s.logger.Error(failedToScheduleWrite, err)
			return err
		}
	}

	return nil
}

// GetDecision reads a decision from the current snapshot through the
// policy registered for the subject and object schemes.
func (s *Store) GetDecision(subject access.Subject, object access.Object) access.Decision {
	return s.registry.GetDecision(subject, object, s.Current())
}

func (s *Store) SetDecision(ctx context.Context, subject access.Subject, object access.Object, decision access.Decision) error {
	return s.Mutate(ctx, func(oldState, newState *state.AccessState) error {
		s.registry.SetDecision(subject, object, decision, oldState, newState)
		return nil
	})
}

// AddUser registers the user, allocates its empty per-user state, and
// broadcasts the event to every policy.
func (s *Store) AddUser(ctx context.Context, userID access.UserID) error {
	return s.Mutate(ctx, func(oldState, newState *state.AccessState) error {
		if !newState.SystemState.UserIDs.Add(userID) {
			return access.ErrUserAlreadyExists
		}
		newState.UserStates.Put(userID, state.NewUserState())
		newState.SystemState.RequestWrite(state.WriteModeAsync)

		s.registry.OnUserAdded(userID, oldState, newState)

		s.logger.Debug(userAdded, logx.Data{Key: "user-id", Value: userID})
		return nil
	})
}

func (s *Store) RemoveUser(ctx context.Context, userID access.UserID) error {
	return s.Mutate(ctx, func(oldState, newState *state.AccessState) error {
		if !newState.SystemState.UserIDs.Remove(userID) {
			return access.ErrUserNotFound
		}
		newState.UserStates.Remove(userID)
		newState.SystemState.RequestWrite(state.WriteModeAsync)

		s.registry.OnUserRemoved(userID, oldState, newState)

		s.logger.Debug(userRemoved, logx.Data{Key: "user-id", Value: userID})
		return nil
	})
}

// AddPackage records a scanned package, maintains the app-id index,
// and broadcasts OnAppIDAdded (when the app id gains its first
// package) followed by OnPackageAdded.
func (s *Store) AddPackage(ctx context.Context, pkg *access.PackageState) error {
	return s.Mutate(ctx, func(oldState, newState *state.AccessState) error {
		systemState := newState.SystemState

		if systemState.Packages.Contains(pkg.Name) {
			return access.ErrPackageAlreadyExists
		}
		systemState.Packages.Put(pkg.Name, pkg)

		packageNames := systemState.AppIDs.GetOrPut(pkg.AppID, func() *indexed.Set[string] {
			return indexed.NewSet[string]()
		})
		newAppID := packageNames.Len() == 0
		packageNames.Add(pkg.Name)

		systemState.RequestWrite(state.WriteModeAsync)

		if newAppID {
			s.registry.OnAppIDAdded(pkg.AppID, oldState, newState)
		}
		s.registry.OnPackageAdded(pkg.Name, oldState, newState)

		s.logger.Debug(packageAdded, logx.Data{Key: "package", Value: pkg.Name}, logx.Data{Key: "app-id", Value: pkg.AppID})
		return nil
	})
}

// RemovePackage drops the package record entirely. When the app id
// loses its last package, OnAppIDRemoved is broadcast after
// OnPackageRemoved so policies purge every per-uid fact for the id
// before it can be recycled.
func (s *Store) RemovePackage(ctx context.Context, packageName string) error {
	return s.Mutate(ctx, func(oldState, newState *state.AccessState) error {
		systemState := newState.SystemState

		pkg, ok := systemState.Packages.Get(packageName)
		if !ok {
			return access.ErrPackageNotFound
		}
		systemState.Packages.Remove(packageName)

		lastForAppID := false
		if packageNames, ok := systemState.AppIDs.Get(pkg.AppID); ok {
			packageNames.Remove(packageName)
			if packageNames.Len() == 0 {
				systemState.AppIDs.Remove(pkg.AppID)
				lastForAppID = true
			}
		}

		systemState.RequestWrite(state.WriteModeAsync)

		s.registry.OnPackageRemoved(packageName, pkg.AppID, oldState, newState)
		if lastForAppID {
			s.registry.OnAppIDRemoved(pkg.AppID, oldState, newState)
		}

		s.logger.Debug(packageRemoved, logx.Data{Key: "package", Value: packageName}, logx.Data{Key: "app-id", Value: pkg.AppID})
		return nil
	})
}
