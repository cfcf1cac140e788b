package order_test

import (
	"strings"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserID(t *testing.T) kernel.UserID {
	t.Helper()
	id, err := kernel.NewUserID("user-001")
	require.NoError(t, err)
	return id
}

func validMerchantID(t *testing.T) kernel.MerchantID {
	t.Helper()
	id, err := kernel.NewMerchantID("merchant-001")
	require.NoError(t, err)
	return id
}

func validDeliveryInfo(t *testing.T) order.DeliveryInfo {
	t.Helper()
	info, err := order.NewDeliveryInfo("张三", "13800138000", "北京市朝阳区望京街道1号")
	require.NoError(t, err)
	return info
}

func validItems(t *testing.T) []order.OrderItem {
	t.Helper()
	return []order.OrderItem{
		mustItem(t, "dish-001", "宫保鸡丁", 2, "25.00"),
		mustItem(t, "dish-002", "鱼香肉丝", 1, "30.00"),
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "不要辣")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		require.NoError(t, o.OrderNumber().Validate())
		assert.Equal(t, "user-001", o.UserID().String())
		assert.Equal(t, "merchant-001", o.MerchantID().String())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "不要辣", o.Remark())
		assert.Equal(t, order.PendingPayment, o.Status())
		assert.False(t, o.CreatedAt().IsZero())
		assert.False(t, o.UpdatedAt().IsZero())
	})

	t.Run("should compute pricing from items at construction", func(t *testing.T) {
		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "")

		require.NoError(t, err)
		assert.True(t, o.Pricing().ItemsTotal().Equal(decimal.RequireFromString("80.00")))
		assert.True(t, o.Pricing().FinalAmount().Equal(decimal.RequireFromString("84.00")))
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		o, err := order.NewOrder(validUserID(t), validMerchantID(t), nil, validDeliveryInfo(t), "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "订单必须至少包含一个餐品")
	})

	t.Run("should fail with unconstructed item in the list", func(t *testing.T) {
		items := []order.OrderItem{{}}

		o, err := order.NewOrder(validUserID(t), validMerchantID(t), items, validDeliveryInfo(t), "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "OrderItem must be created")
	})

	t.Run("should fail with unconstructed delivery info", func(t *testing.T) {
		var info order.DeliveryInfo

		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), info, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "DeliveryInfo must be created")
	})

	t.Run("should accept remark of exactly 200 characters", func(t *testing.T) {
		remark := strings.Repeat("辣", 200)

		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), remark)

		require.NoError(t, err)
		assert.Equal(t, remark, o.Remark())
	})

	t.Run("should fail with remark of 201 characters", func(t *testing.T) {
		remark := strings.Repeat("辣", 201)

		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), remark)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "备注长度不能超过200字符")
	})

	t.Run("should fail with zero-value user id", func(t *testing.T) {
		var userID kernel.UserID

		o, err := order.NewOrder(userID, validMerchantID(t), validItems(t), validDeliveryInfo(t), "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var userID kernel.UserID
		var merchantID kernel.MerchantID

		o, err := order.NewOrder(userID, merchantID, nil, order.DeliveryInfo{}, strings.Repeat("a", 201))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "merchantId")
		assert.Contains(t, err.Error(), "订单必须至少包含一个餐品")
		assert.Contains(t, err.Error(), "备注长度不能超过200字符")
	})

	t.Run("should generate distinct ids for distinct orders", func(t *testing.T) {
		first, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "")
		require.NoError(t, err)
		second, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "")
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("should not expose internal items slice for mutation", func(t *testing.T) {
		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "")
		require.NoError(t, err)

		items := o.Items()
		items[0] = order.OrderItem{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should transition pending payment order to paid", func(t *testing.T) {
		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "")
		require.NoError(t, err)
		createdUpdatedAt := o.UpdatedAt()

		err = o.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.False(t, o.UpdatedAt().Before(createdUpdatedAt))
	})

	t.Run("should fail when paying an already paid order", func(t *testing.T) {
		o, err := order.NewOrder(validUserID(t), validMerchantID(t), validItems(t), validDeliveryInfo(t), "")
		require.NoError(t, err)
		require.NoError(t, o.Pay())

		err = o.Pay()

		require.ErrorIs(t, err, order.ErrOrderNotPayable)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should fail when paying a cancelled order", func(t *testing.T) {
		o := restoredOrder(t, order.Cancelled)

		err := o.Pay()

		require.ErrorIs(t, err, order.ErrOrderNotPayable)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should not recompute pricing on payment", func(t *testing.T) {
		o := restoredOrder(t, order.PendingPayment)
		storedFinal := o.Pricing().FinalAmount()

		require.NoError(t, o.Pay())

		assert.True(t, o.Pricing().FinalAmount().Equal(storedFinal))
	})
}

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	id, err := kernel.OrderIDFromString("order-restored-001")
	require.NoError(t, err)
	number, err := order.OrderNumberFromString("20260831120000123456")
	require.NoError(t, err)

	// Inconsistent on purpose: reconstitution must trust stored pricing.
	pricing := order.RestorePricing(
		decimal.RequireFromString("80.00"),
		decimal.RequireFromString("1.00"),
		decimal.RequireFromString("3.00"),
		decimal.RequireFromString("123.00"),
	)

	createdAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		id, number, validUserID(t), validMerchantID(t),
		validItems(t), validDeliveryInfo(t), "",
		status, pricing, createdAt, createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reconstitute order trusting persisted state", func(t *testing.T) {
		o := restoredOrder(t, order.Paid)

		require.NoError(t, o.Validate())
		assert.Equal(t, "order-restored-001", o.ID().String())
		assert.Equal(t, "20260831120000123456", o.OrderNumber().String())
		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.Pricing().FinalAmount().Equal(decimal.RequireFromString("123.00")))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("order-restored-002")
		require.NoError(t, err)
		number, err := order.OrderNumberFromString("20260831120000123456")
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			id, number, validUserID(t), validMerchantID(t),
			validItems(t), validDeliveryInfo(t), "",
			order.Unknown, order.Pricing{}, time.Now(), time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for directly instantiated order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
