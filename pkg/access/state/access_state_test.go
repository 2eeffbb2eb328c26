package state_test

import (
	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/indexed"
	"code.cloudfoundry.org/access/pkg/access/state"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("AccessState", func() {
	Describe("NewAccessState", func() {
		It("produces an empty aggregate", func() {
			subject := state.NewAccessState()

			Expect(subject.SystemState.UserIDs.Len()).To(BeZero())
			Expect(subject.SystemState.Packages.Len()).To(BeZero())
			Expect(subject.SystemState.Permissions.Len()).To(BeZero())
			Expect(subject.UserStates.Len()).To(BeZero())
		})
	})

	Describe("#EnsureUserState", func() {
		It("creates the per-user state once", func() {
			subject := state.NewAccessState()

			userState := subject.EnsureUserState(access.UserID(10))

			Expect(subject.EnsureUserState(access.UserID(10))).To(BeIdenticalTo(userState))
		})
	})

	Describe("#Copy", func() {
		var subject *state.AccessState

		BeforeEach(func() {
			subject = state.NewAccessState()

			subject.SystemState.UserIDs.Add(access.UserID(0))
			subject.SystemState.AppIDs.Put(access.AppID(10001), indexed.NewSet("com.example.app"))
			subject.SystemState.PermissionGroups.Put("storage", access.PermissionGroup{
				Name:        "storage",
				PackageName: "com.example.app",
			})

			userState := subject.EnsureUserState(access.UserID(0))
			modes := userState.UIDAppOpModes.GetOrPut(access.AppID(10001), indexed.NewMap[string, access.AppOpMode])
			modes.Put("CAMERA", access.AppOpModeIgnored)
			flags := userState.PermissionFlags.GetOrPut(access.AppID(10001), indexed.NewMap[string, access.PermissionFlags])
			flags.Put("com.example.permission.FOO", access.PermissionFlagGranted)
		})

		It("never lets a mutation of the copy reach the original", func() {
			c := subject.Copy()

			c.SystemState.UserIDs.Add(access.UserID(1))
			c.SystemState.PermissionGroups.Put("storage", access.PermissionGroup{
				Name:        "storage",
				PackageName: "com.other.app",
			})

			names, ok := c.SystemState.AppIDs.Get(access.AppID(10001))
			Expect(ok).To(BeTrue())
			names.Add("com.other.app")

			userState, ok := c.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			modes, ok := userState.UIDAppOpModes.Get(access.AppID(10001))
			Expect(ok).To(BeTrue())
			modes.Put("CAMERA", access.AppOpModeErrored)
			userState.PermissionFlags.Remove(access.AppID(10001))

			Expect(subject.SystemState.UserIDs.Contains(access.UserID(1))).To(BeFalse())

			group, ok := subject.SystemState.PermissionGroups.Get("storage")
			Expect(ok).To(BeTrue())
			Expect(group.PackageName).To(Equal("com.example.app"))

			originalNames, ok := subject.SystemState.AppIDs.Get(access.AppID(10001))
			Expect(ok).To(BeTrue())
			Expect(originalNames.Contains("com.other.app")).To(BeFalse())

			originalUserState, ok := subject.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			originalModes, ok := originalUserState.UIDAppOpModes.Get(access.AppID(10001))
			Expect(ok).To(BeTrue())
			mode, ok := originalModes.Get("CAMERA")
			Expect(ok).To(BeTrue())
			Expect(mode).To(Equal(access.AppOpModeIgnored))

			Expect(originalUserState.PermissionFlags.Contains(access.AppID(10001))).To(BeTrue())
		})

		It("never lets a mutation of the original reach the copy", func() {
			c := subject.Copy()

			subject.SystemState.UserIDs.Remove(access.UserID(0))
			userState, ok := subject.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			userState.UIDAppOpModes.Remove(access.AppID(10001))

			Expect(c.SystemState.UserIDs.Contains(access.UserID(0))).To(BeTrue())

			copiedUserState, ok := c.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			Expect(copiedUserState.UIDAppOpModes.Contains(access.AppID(10001))).To(BeTrue())
		})

		It("starts the copy with a clean write mode", func() {
			subject.SystemState.RequestWrite(state.WriteModeSync)

			c := subject.Copy()

			Expect(c.SystemState.WriteMode()).To(Equal(state.WriteModeNone))
		})
	})
})
