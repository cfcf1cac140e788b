package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should generate valid unique identifiers", func(t *testing.T) {
		id1 := kernel.NewOrderID()
		id2 := kernel.NewOrderID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.NotEmpty(t, id1.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should rebuild identifier from string", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("order-123")

		require.NoError(t, err)
		assert.Equal(t, "order-123", id.String())
	})

	t.Run("should fail for empty string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("order-123")
		b, _ := kernel.OrderIDFromString("order-123")
		c, _ := kernel.OrderIDFromString("order-456")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewUserID(t *testing.T) {
	t.Run("should create from principal identity", func(t *testing.T) {
		id, err := kernel.NewUserID("user-001")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "user-001", id.String())
	})

	t.Run("should fail for empty string", func(t *testing.T) {
		_, err := kernel.NewUserID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewUserID("user-001")
		b, _ := kernel.NewUserID("user-001")
		c, _ := kernel.NewUserID("user-002")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestNewMerchantID(t *testing.T) {
	t.Run("should create from string", func(t *testing.T) {
		id, err := kernel.NewMerchantID("merchant-001")

		require.NoError(t, err)
		assert.Equal(t, "merchant-001", id.String())
	})

	t.Run("should fail for empty string", func(t *testing.T) {
		_, err := kernel.NewMerchantID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewDishID(t *testing.T) {
	t.Run("should create from string", func(t *testing.T) {
		id, err := kernel.NewDishID("dish-001")

		require.NoError(t, err)
		assert.Equal(t, "dish-001", id.String())
	})

	t.Run("should fail for empty string", func(t *testing.T) {
		_, err := kernel.NewDishID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
