package state_test

import (
	"code.cloudfoundry.org/access/pkg/access/state"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("WritableState", func() {
	var subject *state.WritableState

	BeforeEach(func() {
		subject = &state.WritableState{}
	})

	Describe("#RequestWrite", func() {
		It("starts at none", func() {
			Expect(subject.WriteMode()).To(Equal(state.WriteModeNone))
		})

		It("escalates from none to async to sync", func() {
			subject.RequestWrite(state.WriteModeAsync)
			Expect(subject.WriteMode()).To(Equal(state.WriteModeAsync))

			subject.RequestWrite(state.WriteModeSync)
			Expect(subject.WriteMode()).To(Equal(state.WriteModeSync))
		})

		It("never downgrades sync to async", func() {
			subject.RequestWrite(state.WriteModeSync)
			subject.RequestWrite(state.WriteModeAsync)

			Expect(subject.WriteMode()).To(Equal(state.WriteModeSync))
		})
	})

	Describe("#TakeWriteMode", func() {
		It("consumes the urgency", func() {
			subject.RequestWrite(state.WriteModeSync)

			Expect(subject.TakeWriteMode()).To(Equal(state.WriteModeSync))
			Expect(subject.WriteMode()).To(Equal(state.WriteModeNone))
		})
	})
})
