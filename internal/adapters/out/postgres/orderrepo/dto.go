// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order header row embeds the delivery-info and pricing value objects,
// indexed by user for ownership lookups. Line items live in a child table
// and are loaded together with the header.
type OrderDTO struct {
	ID           string          `gorm:"type:varchar(36);primaryKey"`
	OrderNumber  string          `gorm:"type:varchar(20);uniqueIndex"`
	UserID       string          `gorm:"type:varchar(36);index"`
	MerchantID   string          `gorm:"type:varchar(36)"`
	Items        []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
	DeliveryInfo DeliveryInfoDTO `gorm:"embedded"`
	Remark       string          `gorm:"type:varchar(200)"`
	Status       string          `gorm:"type:varchar(20);index"`
	Pricing      PricingDTO      `gorm:"embedded"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item of an order. Rows are replaced
// wholesale when the parent order is updated, so the surrogate key carries
// no meaning beyond preserving insertion order.
type OrderItemDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	OrderID  string          `gorm:"type:varchar(36);index"`
	DishID   string          `gorm:"type:varchar(36)"`
	DishName string          `gorm:"type:varchar(100)"`
	Quantity int             `gorm:"type:int"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryInfoDTO represents the embedded delivery destination within the order table.
type DeliveryInfoDTO struct {
	RecipientName  string `gorm:"type:varchar(50)"`
	RecipientPhone string `gorm:"type:varchar(20)"`
	Address        string `gorm:"type:varchar(500)"`
}

// PricingDTO represents the embedded pricing breakdown within the order table.
// Amounts are stored as exact decimals, never floats.
type PricingDTO struct {
	ItemsTotal   decimal.Decimal `gorm:"type:numeric(10,2)"`
	PackagingFee decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(10,2)"`
	FinalAmount  decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the header together with its line-item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  aggregate.ID().String(),
			DishID:   item.DishID().String(),
			DishName: item.DishName(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber().String(),
		UserID:      aggregate.UserID().String(),
		MerchantID:  aggregate.MerchantID().String(),
		Items:       itemDTOs,
		DeliveryInfo: DeliveryInfoDTO{
			RecipientName:  aggregate.DeliveryInfo().RecipientName(),
			RecipientPhone: aggregate.DeliveryInfo().RecipientPhone(),
			Address:        aggregate.DeliveryInfo().Address(),
		},
		Remark: aggregate.Remark(),
		Status: aggregate.Status().String(),
		Pricing: PricingDTO{
			ItemsTotal:   aggregate.Pricing().ItemsTotal(),
			PackagingFee: aggregate.Pricing().PackagingFee(),
			DeliveryFee:  aggregate.Pricing().DeliveryFee(),
			FinalAmount:  aggregate.Pricing().FinalAmount(),
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder: stored pricing is
// restored verbatim, never recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderNumber, err := order.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewUserID(dto.UserID)
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.NewMerchantID(dto.MerchantID)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dishID, dishErr := kernel.NewDishID(itemDTO.DishID)
		if dishErr != nil {
			return nil, dishErr
		}

		item, itemErr := order.NewOrderItem(dishID, itemDTO.DishName, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryInfo, err := order.NewDeliveryInfo(
		dto.DeliveryInfo.RecipientName,
		dto.DeliveryInfo.RecipientPhone,
		dto.DeliveryInfo.Address,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pricing := order.RestorePricing(
		dto.Pricing.ItemsTotal,
		dto.Pricing.PackagingFee,
		dto.Pricing.DeliveryFee,
		dto.Pricing.FinalAmount,
	)

	return order.RestoreOrder(
		id,
		orderNumber,
		userID,
		merchantID,
		items,
		deliveryInfo,
		dto.Remark,
		status,
		pricing,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
