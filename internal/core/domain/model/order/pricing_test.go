package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, dishID, dishName string, quantity int, price string) order.OrderItem {
	t.Helper()

	id, err := kernel.NewDishID(dishID)
	require.NoError(t, err)

	item, err := order.NewOrderItem(id, dishName, quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestCalculatePricing(t *testing.T) {
	t.Run("should sum subtotals and add fixed fees", func(t *testing.T) {
		items := []order.OrderItem{
			mustItem(t, "dish-001", "宫保鸡丁", 2, "25.00"),
			mustItem(t, "dish-002", "鱼香肉丝", 1, "30.00"),
		}

		pricing := order.CalculatePricing(items)

		assert.True(t, pricing.ItemsTotal().Equal(decimal.RequireFromString("80.00")),
			"itemsTotal = %s", pricing.ItemsTotal())
		assert.True(t, pricing.PackagingFee().Equal(decimal.RequireFromString("1.00")))
		assert.True(t, pricing.DeliveryFee().Equal(decimal.RequireFromString("3.00")))
		assert.True(t, pricing.FinalAmount().Equal(decimal.RequireFromString("84.00")),
			"finalAmount = %s", pricing.FinalAmount())
	})

	t.Run("should keep exact decimal arithmetic for fractional prices", func(t *testing.T) {
		// 0.1 + 0.2 style sums drift under binary floats; decimals must not.
		items := []order.OrderItem{
			mustItem(t, "dish-001", "豆浆", 3, "0.10"),
			mustItem(t, "dish-002", "油条", 1, "0.20"),
		}

		pricing := order.CalculatePricing(items)

		assert.True(t, pricing.ItemsTotal().Equal(decimal.RequireFromString("0.50")),
			"itemsTotal = %s", pricing.ItemsTotal())
		assert.True(t, pricing.FinalAmount().Equal(decimal.RequireFromString("4.50")),
			"finalAmount = %s", pricing.FinalAmount())
	})

	t.Run("should price a single zero-cost item as fees only", func(t *testing.T) {
		items := []order.OrderItem{
			mustItem(t, "dish-001", "赠品", 1, "0.00"),
		}

		pricing := order.CalculatePricing(items)

		assert.True(t, pricing.ItemsTotal().IsZero())
		assert.True(t, pricing.FinalAmount().Equal(decimal.RequireFromString("4.00")))
	})

	t.Run("should be deterministic for the same items", func(t *testing.T) {
		items := []order.OrderItem{
			mustItem(t, "dish-001", "宫保鸡丁", 2, "25.00"),
		}

		first := order.CalculatePricing(items)
		second := order.CalculatePricing(items)

		assert.True(t, first.IsEqual(second))
	})
}

func TestRestorePricing(t *testing.T) {
	t.Run("should rebuild breakdown without recomputation", func(t *testing.T) {
		// Deliberately inconsistent amounts: restore must not recalculate.
		pricing := order.RestorePricing(
			decimal.RequireFromString("10.00"),
			decimal.RequireFromString("1.00"),
			decimal.RequireFromString("3.00"),
			decimal.RequireFromString("99.00"),
		)

		assert.True(t, pricing.ItemsTotal().Equal(decimal.RequireFromString("10.00")))
		assert.True(t, pricing.FinalAmount().Equal(decimal.RequireFromString("99.00")))
	})
}

func TestOrderItem_Subtotal(t *testing.T) {
	t.Run("should multiply price by quantity", func(t *testing.T) {
		item := mustItem(t, "dish-001", "宫保鸡丁", 4, "12.50")

		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("50.00")))
	})
}
