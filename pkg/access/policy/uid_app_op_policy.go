package policy

import (
	"fmt"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
	"code.cloudfoundry.org/access/pkg/access/state"
	"code.cloudfoundry.org/access/pkg/logx"
)

// UIDAppOpPolicy resolves and mutates the app-op mode granted to a UID
// within a user. An absent entry means the op's statically configured
// default mode.
type UIDAppOpPolicy struct {
	NopLifecycle

	logger   logx.Logger
	defaults access.AppOpDefaults
}

func NewUIDAppOpPolicy(logger logx.Logger, defaults access.AppOpDefaults) *UIDAppOpPolicy {
	return &UIDAppOpPolicy{
		logger:   logger.WithName("uid-app-op-policy"),
		defaults: defaults,
	}
}

func (p *UIDAppOpPolicy) SubjectScheme() string { return access.UIDScheme }
func (p *UIDAppOpPolicy) ObjectScheme() string  { return access.AppOpScheme }

func (p *UIDAppOpPolicy) GetDecision(subject access.Subject, object access.Object, st *state.AccessState) access.Decision {
	uid := mustUID(subject)
	op := mustAppOpName(object)

	userState, ok := st.UserState(uid.UserID)
	if !ok {
		return access.Decision(p.defaults.DefaultMode(op))
	}

	modes, ok := userState.UIDAppOpModes.Get(uid.AppID)
	if !ok {
		return access.Decision(p.defaults.DefaultMode(op))
	}

	mode, ok := modes.Get(string(op))
	if !ok {
		return access.Decision(p.defaults.DefaultMode(op))
	}

	return access.Decision(mode)
}

func (p *UIDAppOpPolicy) SetDecision(subject access.Subject, object access.Object, decision access.Decision, oldState, newState *state.AccessState) {
	uid := mustUID(subject)
	op := mustAppOpName(object)

	mode := access.AppOpMode(decision)
	if !mode.Valid() {
		panic(fmt.Sprintf("access: unrecognized app-op mode %d", decision))
	}

	if mode == p.defaults.DefaultMode(op) {
		p.removeMode(newState, uid, op)
		return
	}

	userState := newState.EnsureUserState(uid.UserID)
	modes := userState.UIDAppOpModes.GetOrPut(uid.AppID, indexed.NewMap[string, access.AppOpMode])
	modes.Put(string(op), mode)
	userState.RequestWrite(state.WriteModeAsync)
}

func (p *UIDAppOpPolicy) removeMode(newState *state.AccessState, uid access.UID, op access.AppOpName) {
	userState, ok := newState.UserState(uid.UserID)
	if !ok {
		return
	}

	modes, ok := userState.UIDAppOpModes.Get(uid.AppID)
	if !ok {
		return
	}

	if !modes.Remove(string(op)) {
		return
	}
	if modes.Len() == 0 {
		userState.UIDAppOpModes.Remove(uid.AppID)
	}
	userState.RequestWrite(state.WriteModeAsync)
}

// OnAppIDRemoved purges the app id's modes from every user. App ids
// are recycled by the platform; a stale entry would hand the previous
// package's decisions to whichever package is assigned the id next.
func (p *UIDAppOpPolicy) OnAppIDRemoved(appID access.AppID, oldState, newState *state.AccessState) {
	newState.UserStates.Each(func(_ int, userID access.UserID, userState *state.UserState) {
		if userState.UIDAppOpModes.Remove(appID) {
			userState.RequestWrite(state.WriteModeAsync)
			p.logger.Debug(purgedAppOpModes, logx.Data{Key: "app-id", Value: appID}, logx.Data{Key: "user-id", Value: userID})
		}
	})
}
