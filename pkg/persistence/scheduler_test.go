package persistence_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/state"
	"code.cloudfoundry.org/access/pkg/logx/lagerx"
	"code.cloudfoundry.org/access/pkg/persistence"
	"code.cloudfoundry.org/access/pkg/persistence/persistencefakes"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scheduler", func() {
	var (
		writer  *persistencefakes.FakeWriter
		subject *persistence.Scheduler

		accessState *state.AccessState

		ctx context.Context
	)

	BeforeEach(func() {
		writer = new(persistencefakes.FakeWriter)
		logger := lagerx.NewLogger(lagertest.NewTestLogger("access-test"))
		subject = persistence.NewScheduler(logger, writer)

		accessState = state.NewAccessState()
		accessState.EnsureUserState(access.UserID(0))

		ctx = context.Background()
	})

	Describe("#StateMutated", func() {
		It("does nothing when no state requests a write", func() {
			err := subject.StateMutated(ctx, accessState)

			Expect(err).NotTo(HaveOccurred())
			Expect(writer.WriteSystemStateCallCount()).To(BeZero())
			Expect(writer.WriteUserStateCallCount()).To(BeZero())
		})

		It("writes a sync-urgency system state before returning", func() {
			accessState.SystemState.RequestWrite(state.WriteModeSync)

			err := subject.StateMutated(ctx, accessState)

			Expect(err).NotTo(HaveOccurred())
			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
			_, written := writer.WriteSystemStateArgsForCall(0)
			Expect(written).To(BeIdenticalTo(accessState.SystemState))
		})

		It("defers an async-urgency system state to the next flush", func() {
			accessState.SystemState.RequestWrite(state.WriteModeAsync)

			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())
			Expect(writer.WriteSystemStateCallCount()).To(BeZero())

			Expect(subject.Flush(ctx)).To(Succeed())
			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
		})

		It("writes a sync-urgency user state before returning", func() {
			userState, ok := accessState.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			userState.RequestWrite(state.WriteModeSync)

			err := subject.StateMutated(ctx, accessState)

			Expect(err).NotTo(HaveOccurred())
			Expect(writer.WriteUserStateCallCount()).To(Equal(1))
			_, userID, written := writer.WriteUserStateArgsForCall(0)
			Expect(userID).To(Equal(access.UserID(0)))
			Expect(written).To(BeIdenticalTo(userState))
		})

		It("consumes the write-urgency flags", func() {
			accessState.SystemState.RequestWrite(state.WriteModeAsync)

			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			Expect(accessState.SystemState.WriteMode()).To(Equal(state.WriteModeNone))
		})

		It("supersedes a pending state with a newer snapshot", func() {
			accessState.SystemState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			newer := accessState.Copy()
			newer.SystemState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, newer)).To(Succeed())

			Expect(subject.Flush(ctx)).To(Succeed())

			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
			_, written := writer.WriteSystemStateArgsForCall(0)
			Expect(written).To(BeIdenticalTo(newer.SystemState))
		})

		It("drops a pending write for a user absent from the newer snapshot", func() {
			userState, ok := accessState.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			userState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			newer := accessState.Copy()
			newer.UserStates.Remove(access.UserID(0))
			newer.SystemState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, newer)).To(Succeed())

			Expect(subject.Flush(ctx)).To(Succeed())

			Expect(writer.WriteUserStateCallCount()).To(BeZero())
			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
		})

		It("returns the writer's error for a sync write", func() {
			writer.WriteSystemStateReturns(errors.New("disk on fire"))
			accessState.SystemState.RequestWrite(state.WriteModeSync)

			err := subject.StateMutated(ctx, accessState)

			Expect(err).To(MatchError("disk on fire"))
		})
	})

	Describe("#Flush", func() {
		It("writes every pending state", func() {
			accessState.SystemState.RequestWrite(state.WriteModeAsync)
			userState, ok := accessState.UserState(access.UserID(0))
			Expect(ok).To(BeTrue())
			userState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			Expect(subject.Flush(ctx)).To(Succeed())

			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
			Expect(writer.WriteUserStateCallCount()).To(Equal(1))
		})

		It("writes nothing when nothing is pending", func() {
			Expect(subject.Flush(ctx)).To(Succeed())

			Expect(writer.WriteSystemStateCallCount()).To(BeZero())
			Expect(writer.WriteUserStateCallCount()).To(BeZero())
		})

		It("keeps a failed write pending for the next flush", func() {
			writer.WriteSystemStateReturnsOnCall(0, errors.New("disk on fire"))
			accessState.SystemState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			Expect(subject.Flush(ctx)).To(MatchError("disk on fire"))

			Expect(subject.Flush(ctx)).To(Succeed())
			Expect(writer.WriteSystemStateCallCount()).To(Equal(2))
		})

		It("does not rewrite an already flushed state", func() {
			accessState.SystemState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			Expect(subject.Flush(ctx)).To(Succeed())
			Expect(subject.Flush(ctx)).To(Succeed())

			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
		})
	})

	Describe("#Run", func() {
		It("performs a final flush when the context is cancelled", func() {
			accessState.SystemState.RequestWrite(state.WriteModeAsync)
			Expect(subject.StateMutated(ctx, accessState)).To(Succeed())

			runCtx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- subject.Run(runCtx)
			}()

			cancel()

			Eventually(done).Should(Receive(MatchError(context.Canceled)))
			Expect(writer.WriteSystemStateCallCount()).To(Equal(1))
		})
	})
})
