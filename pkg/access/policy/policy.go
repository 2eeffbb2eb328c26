// Package policy contains the scheme-pair dispatch registry and the
// concrete policies that read and write decisions inside an access
// state snapshot.
package policy

import (
	"fmt"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/state"
)

// SchemePolicy encodes how one kind of authorization fact is stored.
// Policies are stateless; all state lives in the AccessState they are
// handed. GetDecision is a pure read. SetDecision writes into newState
// only, is idempotent, and stores a default-valued decision as absence
// of an entry. Every lifecycle callback must be safe to call on every
// policy for every event.
type SchemePolicy interface {
	SubjectScheme() string
	ObjectScheme() string

	GetDecision(subject access.Subject, object access.Object, st *state.AccessState) access.Decision
	SetDecision(subject access.Subject, object access.Object, decision access.Decision, oldState, newState *state.AccessState)

	Lifecycle
}

type Lifecycle interface {
	OnUserAdded(userID access.UserID, oldState, newState *state.AccessState)
	OnUserRemoved(userID access.UserID, oldState, newState *state.AccessState)
	OnAppIDAdded(appID access.AppID, oldState, newState *state.AccessState)
	OnAppIDRemoved(appID access.AppID, oldState, newState *state.AccessState)
	OnPackageAdded(packageName string, oldState, newState *state.AccessState)
	OnPackageRemoved(packageName string, appID access.AppID, oldState, newState *state.AccessState)
}

// NopLifecycle is embedded by policies that only care about a subset
// of lifecycle events.
type NopLifecycle struct{}

func (NopLifecycle) OnUserAdded(access.UserID, *state.AccessState, *state.AccessState)    {}
func (NopLifecycle) OnUserRemoved(access.UserID, *state.AccessState, *state.AccessState)  {}
func (NopLifecycle) OnAppIDAdded(access.AppID, *state.AccessState, *state.AccessState)    {}
func (NopLifecycle) OnAppIDRemoved(access.AppID, *state.AccessState, *state.AccessState)  {}
func (NopLifecycle) OnPackageAdded(string, *state.AccessState, *state.AccessState)        {}
func (NopLifecycle) OnPackageRemoved(string, access.AppID, *state.AccessState, *state.AccessState) {
}

func mustUID(subject access.Subject) access.UID {
	uid, ok := subject.(access.UID)
	if !ok {
		panic(fmt.Sprintf("access: subject %T is not a uid", subject))
	}
	return uid
}

func mustAppOpName(object access.Object) access.AppOpName {
	op, ok := object.(access.AppOpName)
	if !ok {
		panic(fmt.Sprintf("access: object %T is not an app-op name", object))
	}
	return op
}

func mustPermissionName(object access.Object) access.PermissionName {
	name, ok := object.(access.PermissionName)
	if !ok {
		panic(fmt.Sprintf("access: object %T is not a permission name", object))
	}
	return name
}
