package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.PendingPayment, "PENDING_PAYMENT"},
		{order.Paid, "PAID"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.PendingPayment, order.Paid, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse persisted status names", func(t *testing.T) {
		tests := map[string]order.Status{
			"PENDING_PAYMENT": order.PendingPayment,
			"PAID":            order.Paid,
			"CANCELLED":       order.Cancelled,
		}

		for name, expected := range tests {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Pay(t *testing.T) {
	t.Run("should transition pending payment to paid", func(t *testing.T) {
		newStatus, err := order.PendingPayment.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})

	t.Run("should reject payment from any other state", func(t *testing.T) {
		for _, s := range []order.Status{order.Paid, order.Cancelled, order.Unknown} {
			_, err := s.Pay()
			require.ErrorIs(t, err, order.ErrOrderNotPayable, "status %s", s)
		}
	})
}
