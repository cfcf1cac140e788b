package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orderID, err := kernel.OrderIDFromString("order-001")
	require.NoError(t, err)
	userID, err := kernel.NewUserID("user-001")
	require.NoError(t, err)

	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(orderID, userID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "order-001", query.OrderID().String())
		assert.Equal(t, "user-001", query.UserID().String())
	})

	t.Run("should fail with zero-value order id", func(t *testing.T) {
		var emptyID kernel.OrderID

		_, err := queries.NewGetOrderQuery(emptyID, userID)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero-value user id", func(t *testing.T) {
		var emptyUser kernel.UserID

		_, err := queries.NewGetOrderQuery(orderID, emptyUser)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetOrderQuery_Validate(t *testing.T) {
	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, err)
	})
}

func TestNewGetOrderStatsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetOrderStatsQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetOrderStatsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrderStatsQueryIsNotConstructed, err)
	})
}
