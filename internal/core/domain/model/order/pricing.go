package order

import (
	"github.com/shopspring/decimal"
)

// Fixed fee components added to every order on top of the items total.
var (
	// PackagingFee is the flat packaging charge, 1.00.
	PackagingFee = decimal.RequireFromString("1.00")

	// DeliveryFee is the flat delivery charge, 3.00.
	DeliveryFee = decimal.RequireFromString("3.00")
)

// Pricing is the monetary breakdown attached to an order at creation time.
// It is computed once by CalculatePricing and never recalculated afterwards;
// reads always return the stored breakdown.
//
// All amounts use exact decimal arithmetic with two-digit scale semantics.
type Pricing struct {
	itemsTotal   decimal.Decimal
	packagingFee decimal.Decimal
	deliveryFee  decimal.Decimal
	finalAmount  decimal.Decimal
}

// CalculatePricing computes the pricing breakdown for a list of line items.
// It is a pure function: itemsTotal is the sum of each item's subtotal, the
// fees are the fixed constants, and finalAmount is their sum.
//
// Example:
//
//	pricing := order.CalculatePricing(items) // items: (25.00 x 2), (30.00 x 1)
//	pricing.ItemsTotal()  // 80.00
//	pricing.FinalAmount() // 84.00
func CalculatePricing(items []OrderItem) Pricing {
	itemsTotal := decimal.Zero
	for _, item := range items {
		itemsTotal = itemsTotal.Add(item.Subtotal())
	}

	return Pricing{
		itemsTotal:   itemsTotal,
		packagingFee: PackagingFee,
		deliveryFee:  DeliveryFee,
		finalAmount:  itemsTotal.Add(PackagingFee).Add(DeliveryFee),
	}
}

// RestorePricing rebuilds a Pricing from persisted amounts without
// recomputation. Used by the persistence layer on the reconstitution path.
func RestorePricing(itemsTotal, packagingFee, deliveryFee, finalAmount decimal.Decimal) Pricing {
	return Pricing{
		itemsTotal:   itemsTotal,
		packagingFee: packagingFee,
		deliveryFee:  deliveryFee,
		finalAmount:  finalAmount,
	}
}

// ItemsTotal returns the sum of all line-item subtotals.
func (p Pricing) ItemsTotal() decimal.Decimal {
	return p.itemsTotal
}

// PackagingFee returns the flat packaging charge.
func (p Pricing) PackagingFee() decimal.Decimal {
	return p.packagingFee
}

// DeliveryFee returns the flat delivery charge.
func (p Pricing) DeliveryFee() decimal.Decimal {
	return p.deliveryFee
}

// FinalAmount returns itemsTotal plus both fees.
func (p Pricing) FinalAmount() decimal.Decimal {
	return p.finalAmount
}

// IsEqual compares two pricing breakdowns by numeric value.
func (p Pricing) IsEqual(other Pricing) bool {
	return p.itemsTotal.Equal(other.itemsTotal) &&
		p.packagingFee.Equal(other.packagingFee) &&
		p.deliveryFee.Equal(other.deliveryFee) &&
		p.finalAmount.Equal(other.finalAmount)
}
