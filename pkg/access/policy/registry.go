package policy

import (
	"fmt"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/state"
)

// Registry maps a (subject scheme, object scheme) pair to the policy
// responsible for that fact type. Exactly one policy per pair;
// dispatch on an unregistered pair is a programming error and panics.
type Registry struct {
	policies map[string]map[string]SchemePolicy

	// registration order, for deterministic lifecycle broadcast
	ordered []SchemePolicy
}

func NewRegistry(policies ...SchemePolicy) *Registry {
	r := &Registry{
		policies: make(map[string]map[string]SchemePolicy),
	}
	for _, p := range policies {
		r.register(p)
	}
	return r
}

func (r *Registry) register(p SchemePolicy) {
	subjectScheme := p.SubjectScheme()
	objectScheme := p.ObjectScheme()

	byObject, ok := r.policies[subjectScheme]
	if !ok {
		byObject = make(map[string]SchemePolicy)
		r.policies[subjectScheme] = byObject
	}
	if _, exists := byObject[objectScheme]; exists {
		panic(fmt.Sprintf("access: duplicate policy for scheme pair (%s, %s)", subjectScheme, objectScheme))
	}

	byObject[objectScheme] = p
	r.ordered = append(r.ordered, p)
}

func (r *Registry) MustGet(subjectScheme, objectScheme string) SchemePolicy {
	p, ok := r.policies[subjectScheme][objectScheme]
	if !ok {
		panic(fmt.Sprintf("access: no policy registered for scheme pair (%s, %s)", subjectScheme, objectScheme))
	}
	return p
}

func (r *Registry) GetDecision(subject access.Subject, object access.Object, st *state.AccessState) access.Decision {
	return r.MustGet(subject.SubjectScheme(), object.ObjectScheme()).GetDecision(subject, object, st)
}

func (r *Registry) SetDecision(subject access.Subject, object access.Object, decision access.Decision, oldState, newState *state.AccessState) {
	r.MustGet(subject.SubjectScheme(), object.ObjectScheme()).SetDecision(subject, object, decision, oldState, newState)
}

func (r *Registry) OnUserAdded(userID access.UserID, oldState, newState *state.AccessState) {
	for _, p := range r.ordered {
		p.OnUserAdded(userID, oldState, newState)
	}
}

func (r *Registry) OnUserRemoved(userID access.UserID, oldState, newState *state.AccessState) {
	for _, p := range r.ordered {
		p.OnUserRemoved(userID, oldState, newState)
	}
}

func (r *Registry) OnAppIDAdded(appID access.AppID, oldState, newState *state.AccessState) {
	for _, p := range r.ordered {
		p.OnAppIDAdded(appID, oldState, newState)
	}
}

func (r *Registry) OnAppIDRemoved(appID access.AppID, oldState, newState *state.AccessState) {
	for _, p := range r.ordered {
		p.OnAppIDRemoved(appID, oldState, newState)
	}
}

func (r *Registry) OnPackageAdded(packageName string, oldState, newState *state.AccessState) {
	for _, p := range r.ordered {
		p.OnPackageAdded(packageName, oldState, newState)
	}
}

func (r *Registry) OnPackageRemoved(packageName string, appID access.AppID, oldState, newState *state.AccessState) {
	for _, p := range r.ordered {
		p.OnPackageRemoved(packageName, appID, oldState, newState)
	}
}
