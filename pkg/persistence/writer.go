// Package persistence turns write-urgency flags on mutated state
// objects into calls against a durable Writer. The wire/disk format is
// the Writer's concern; this package only decides when each state is
// handed over.
package persistence

import (
	"context"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/access/state"
)

//go:generate counterfeiter . Writer

type Writer interface {
	WriteSystemState(ctx context.Context, systemState *state.SystemState) error
	WriteUserState(ctx context.Context, userID access.UserID, userState *state.UserState) error
}
