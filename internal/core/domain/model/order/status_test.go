package order_test

import (
	"errors"
	"fmt"
	"testing"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Created,
	order.Pending,
	order.Processing,
	order.Assigned,
	order.PickedUp,
	order.Delivering,
	order.Completed,
	order.Cancelled,
}

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:    "UNKNOWN",
		order.Created:    "CREATED",
		order.Pending:    "PENDING",
		order.Processing: "PROCESSING",
		order.Assigned:   "ASSIGNED",
		order.PickedUp:   "PICKED_UP",
		order.Delivering: "DELIVERING",
		order.Completed:  "COMPLETED",
		order.Cancelled:  "CANCELLED",
		order.Status(42): "UNKNOWN",
	}

	for status, expected := range tests {
		assert.Equal(t, expected, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range allStatuses {
		t.Run(status.String(), func(t *testing.T) {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	t.Run("should accept lower case with spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus("  picked_up ")

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "SHIPPED"} {
			_, err := order.ParseStatus(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses {
		require.NoError(t, status.Validate(), status.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Created:    {order.Pending, order.Assigned, order.Cancelled},
		order.Pending:    {order.Processing, order.Assigned, order.Cancelled},
		order.Processing: {order.Assigned, order.Cancelled},
		order.Assigned:   {order.PickedUp, order.Cancelled},
		order.PickedUp:   {order.Delivering, order.Cancelled},
		order.Delivering: {order.Completed, order.Cancelled},
		order.Completed:  {},
		order.Cancelled:  {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			expected := contains(allowed[from], to)

			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				assert.Equal(t, expected, from.CanTransitionTo(to))

				next, err := from.Transition(to)
				if expected {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}

				require.ErrorIs(t, err, order.ErrInvalidTransition)
				assert.Equal(t, from, next)

				var transitionErr *order.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, to, transitionErr.To)
				assert.False(t, transitionErr.Stale)
			})
		}
	}
}

func TestStatus_CompletedIsTerminal(t *testing.T) {
	for _, to := range append(allStatuses, order.Unknown) {
		_, err := order.Completed.Transition(to)

		require.ErrorIs(t, err, order.ErrInvalidTransition, to.String())
	}
}

func TestStatus_UnknownCannotTransition(t *testing.T) {
	assert.False(t, order.Unknown.CanTransitionTo(order.Cancelled))
	assert.False(t, order.Unknown.CanTransitionTo(order.Created))
}

func TestStatus_Predicates(t *testing.T) {
	terminal := []order.Status{order.Completed, order.Cancelled}
	active := []order.Status{order.Assigned, order.PickedUp, order.Delivering}
	dispatchable := []order.Status{order.Created, order.Pending, order.Processing}

	for _, s := range allStatuses {
		assert.Equal(t, contains(terminal, s), s.IsTerminal(), "IsTerminal(%s)", s)
		assert.Equal(t, contains(active, s), s.IsActive(), "IsActive(%s)", s)
		assert.Equal(t, contains(dispatchable, s), s.IsDispatchable(), "IsDispatchable(%s)", s)
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	withCourier := []order.Status{order.Assigned, order.PickedUp, order.Delivering, order.Completed}

	for _, s := range allStatuses {
		needs := contains(withCourier, s)

		t.Run(s.String(), func(t *testing.T) {
			if needs {
				require.NoError(t, s.ValidateCanHaveCourier(true))
				require.ErrorIs(t, s.ValidateCanHaveCourier(false), errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, s.ValidateCanHaveCourier(false))
				require.ErrorIs(t, s.ValidateCanHaveCourier(true), errs.ErrValueIsInvalid)
			}
		})
	}
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("should describe the rejected edge", func(t *testing.T) {
		err := order.NewInvalidTransitionError(order.Completed, order.Cancelled)

		assert.Equal(t, "invalid transition: COMPLETED -> CANCELLED", err.Error())
		assert.True(t, errors.Is(err, order.ErrInvalidTransition))
	})

	t.Run("should describe a stale precondition", func(t *testing.T) {
		err := order.NewStaleTransitionError(order.Created, order.Assigned)

		assert.True(t, err.Stale)
		assert.Equal(t, "invalid transition: order is no longer CREATED, cannot move to ASSIGNED", err.Error())
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func contains(list []order.Status, s order.Status) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
