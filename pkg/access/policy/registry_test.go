package policy_test

import (
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/policy"
	"code.cloudfoundry.org/access/pkg/access/state"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type stubPolicy struct {
	policy.NopLifecycle

	subjectScheme string
	objectScheme  string
	decision      access.Decision

	userAddedCalls   []access.UserID
	userRemovedCalls []access.UserID
	appIDRemoved     []access.AppID
	packagesAdded    []string
	packagesRemoved  []string
}

func (p *stubPolicy) SubjectScheme() string { return p.subjectScheme }
func (p *stubPolicy) ObjectScheme() string  { return p.objectScheme }

func (p *stubPolicy) GetDecision(access.Subject, access.Object, *state.AccessState) access.Decision {
	return p.decision
}

func (p *stubPolicy) SetDecision(access.Subject, access.Object, access.Decision, *state.AccessState, *state.AccessState) {
}

func (p *stubPolicy) OnUserAdded(userID access.UserID, _, _ *state.AccessState) {
	p.userAddedCalls = append(p.userAddedCalls, userID)
}

func (p *stubPolicy) OnUserRemoved(userID access.UserID, _, _ *state.AccessState) {
	p.userRemovedCalls = append(p.userRemovedCalls, userID)
}

func (p *stubPolicy) OnAppIDRemoved(appID access.AppID, _, _ *state.AccessState) {
	p.appIDRemoved = append(p.appIDRemoved, appID)
}

func (p *stubPolicy) OnPackageAdded(packageName string, _, _ *state.AccessState) {
	p.packagesAdded = append(p.packagesAdded, packageName)
}

func (p *stubPolicy) OnPackageRemoved(packageName string, _ access.AppID, _, _ *state.AccessState) {
	p.packagesRemoved = append(p.packagesRemoved, packageName)
}

var _ = Describe("Registry", func() {
	var (
		appOpPolicy      *stubPolicy
		permissionPolicy *stubPolicy

		subject *policy.Registry
	)

	BeforeEach(func() {
		appOpPolicy = &stubPolicy{
			subjectScheme: access.UIDScheme,
			objectScheme:  access.AppOpScheme,
			decision:      access.Decision(access.AppOpModeIgnored),
		}
		permissionPolicy = &stubPolicy{
			subjectScheme: access.UIDScheme,
			objectScheme:  access.PermissionScheme,
			decision:      access.Decision(access.PermissionFlagGranted),
		}

		subject = policy.NewRegistry(appOpPolicy, permissionPolicy)
	})

	Describe("NewRegistry", func() {
		It("panics on a duplicate scheme pair", func() {
			Expect(func() {
				policy.NewRegistry(appOpPolicy, appOpPolicy)
			}).To(Panic())
		})
	})

	Describe("#MustGet", func() {
		It("returns the policy registered for the pair", func() {
			Expect(subject.MustGet(access.UIDScheme, access.AppOpScheme)).To(BeIdenticalTo(appOpPolicy))
			Expect(subject.MustGet(access.UIDScheme, access.PermissionScheme)).To(BeIdenticalTo(permissionPolicy))
		})

		It("panics for an unregistered pair", func() {
			Expect(func() {
				subject.MustGet("package", access.AppOpScheme)
			}).To(Panic())
		})
	})

	Describe("#GetDecision", func() {
		It("dispatches on the subject and object schemes", func() {
			st := state.NewAccessState()
			uid := access.UID{UserID: 0, AppID: 10001}

			Expect(subject.GetDecision(uid, access.AppOpName("CAMERA"), st)).
				To(Equal(access.Decision(access.AppOpModeIgnored)))
			Expect(subject.GetDecision(uid, access.PermissionName("com.example.FOO"), st)).
				To(Equal(access.Decision(access.PermissionFlagGranted)))
		})
	})

	Describe("lifecycle broadcast", func() {
		It("reaches every registered policy for every event", func() {
			oldState := state.NewAccessState()
			newState := oldState.Copy()

			subject.OnUserAdded(access.UserID(10), oldState, newState)
			subject.OnUserRemoved(access.UserID(10), oldState, newState)
			subject.OnAppIDRemoved(access.AppID(10001), oldState, newState)
			subject.OnPackageAdded("com.example.app", oldState, newState)
			subject.OnPackageRemoved("com.example.app", access.AppID(10001), oldState, newState)

			for _, p := range []*stubPolicy{appOpPolicy, permissionPolicy} {
				Expect(p.userAddedCalls).To(Equal([]access.UserID{10}))
				Expect(p.userRemovedCalls).To(Equal([]access.UserID{10}))
				Expect(p.appIDRemoved).To(Equal([]access.AppID{10001}))
				Expect(p.packagesAdded).To(Equal([]string{"com.example.app"}))
				Expect(p.packagesRemoved).To(Equal([]string{"com.example.app"}))
			}
		})
	})
})
