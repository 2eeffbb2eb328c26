// Package state defines the snapshot aggregate of all authorization
// facts. A published AccessState is never mutated in place: writers
// derive a copy, mutate it, and publish the copy as the new current
// snapshot, so readers need no synchronization.
package state

import (
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
)

type AccessState struct {
	SystemState *SystemState
	UserStates  *indexed.Map[access.UserID, *UserState]
}

// NewAccessState returns an empty aggregate: no users, no packages,
// no permissions.
func NewAccessState() *AccessState {
	return &AccessState{
		SystemState: NewSystemState(),
		UserStates:  indexed.NewMap[access.UserID, *UserState](),
	}
}

// Copy deep-copies every nested container. Mutating the copy never
// affects the original and vice versa.
func (s *AccessState) Copy() *AccessState {
	return &AccessState{
		SystemState: s.SystemState.Copy(),
		UserStates: s.UserStates.Copy(func(us *UserState) *UserState {
			return us.Copy()
		}),
	}
}

func (s *AccessState) UserState(userID access.UserID) (*UserState, bool) {
	return s.UserStates.Get(userID)
}

// EnsureUserState returns the user's state, creating an empty one if
// the user has none yet.
func (s *AccessState) EnsureUserState(userID access.UserID) *UserState {
	return s.UserStates.GetOrPut(userID, NewUserState)
}
