package order

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrDeliveryInfoIsNotConstructed is returned when a DeliveryInfo was not
// created through the NewDeliveryInfo constructor.
var ErrDeliveryInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryInfo must be created via NewDeliveryInfo constructor",
)

// maxAddressLength is the upper bound on delivery addresses, in characters.
const maxAddressLength = 500

// phonePattern accepts mainland mobile numbers: 1, a second digit 3-9, then nine digits.
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// DeliveryInfo is the value object describing where and to whom an order is
// delivered. It is immutable and self-validating.
//
// Validation rules:
//   - recipientName must not be blank
//   - recipientPhone must match ^1[3-9]\d{9}$
//   - address must not be blank and is limited to 500 characters
type DeliveryInfo struct {
	recipientName  string
	recipientPhone string
	address        string

	guard guard.ConstructorGuard
}

// NewDeliveryInfo creates a validated DeliveryInfo.
func NewDeliveryInfo(recipientName, recipientPhone, address string) (DeliveryInfo, error) {
	info := DeliveryInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setRecipientName(recipientName),
		info.setRecipientPhone(recipientPhone),
		info.setAddress(address),
	); err != nil {
		return DeliveryInfo{}, err
	}

	return info, nil
}

// Validate ensures the DeliveryInfo was created through NewDeliveryInfo.
func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

// RecipientName returns the recipient's name.
func (d DeliveryInfo) RecipientName() string {
	return d.recipientName
}

// RecipientPhone returns the recipient's mobile number.
func (d DeliveryInfo) RecipientPhone() string {
	return d.recipientPhone
}

// Address returns the delivery address.
func (d DeliveryInfo) Address() string {
	return d.address
}

func (d *DeliveryInfo) setRecipientName(recipientName string) error {
	if strings.TrimSpace(recipientName) == "" {
		return errs.NewValueIsRequiredErrorWithCause("recipientName", errors.New("收货人姓名不能为空"))
	}
	d.recipientName = recipientName
	return nil
}

func (d *DeliveryInfo) setRecipientPhone(recipientPhone string) error {
	if !phonePattern.MatchString(recipientPhone) {
		return errs.NewValueIsInvalidErrorWithCause("recipientPhone", errors.New("手机号格式不正确"))
	}
	d.recipientPhone = recipientPhone
	return nil
}

func (d *DeliveryInfo) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredErrorWithCause("address", errors.New("收货地址不能为空"))
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("address", errors.New("收货地址长度不能超过500字符"))
	}
	d.address = address
	return nil
}
