package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a full edit of an existing order: customer
// contact, geography, product, pricing, delivery mode, and offer. Orders stay
// fully editable in every status short of in_carrier.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	customerName string
	phone        string
	regionCode   string
	city         string

	productID       kernel.UUID
	productName     string
	productPrice    float64
	productImageURL string

	unitPrice    float64
	quantity     int
	homeDelivery bool
	offerName    string

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a full-edit command. The unit price may differ
// from the product price: the snapshot keeps the catalog price at order time
// while the merchant may have negotiated a different price for this order.
func NewEditOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone string,
	regionCode string,
	city string,
	productID kernel.UUID,
	productName string,
	productPrice float64,
	productImageURL string,
	unitPrice float64,
	quantity int,
	homeDelivery bool,
	offerName string,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		city:            city,
		productImageURL: productImageURL,
		homeDelivery:    homeDelivery,
		offerName:       offerName,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerName, phone),
		cmd.setRegionCode(regionCode),
		cmd.setProduct(productID, productName, productPrice),
		cmd.setPricing(unitPrice, quantity),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the edited customer name.
func (c EditOrderCommand) CustomerName() string { return c.customerName }

// Phone returns the edited customer phone.
func (c EditOrderCommand) Phone() string { return c.phone }

// RegionCode returns the edited region code.
func (c EditOrderCommand) RegionCode() string { return c.regionCode }

// City returns the edited city, possibly empty.
func (c EditOrderCommand) City() string { return c.city }

// ProductID returns the identifier of the (possibly replaced) product.
func (c EditOrderCommand) ProductID() kernel.UUID { return c.productID }

// ProductName returns the product's name.
func (c EditOrderCommand) ProductName() string { return c.productName }

// ProductPrice returns the product's catalog price.
func (c EditOrderCommand) ProductPrice() float64 { return c.productPrice }

// ProductImageURL returns the product's image reference.
func (c EditOrderCommand) ProductImageURL() string { return c.productImageURL }

// UnitPrice returns the per-unit price applied to this order.
func (c EditOrderCommand) UnitPrice() float64 { return c.unitPrice }

// Quantity returns the edited quantity.
func (c EditOrderCommand) Quantity() int { return c.quantity }

// HomeDelivery reports the edited delivery mode.
func (c EditOrderCommand) HomeDelivery() bool { return c.homeDelivery }

// OfferName returns the edited offer name.
func (c EditOrderCommand) OfferName() string { return c.offerName }

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setCustomer(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.customerName = name
	c.phone = phone
	return nil
}

func (c *EditOrderCommand) setRegionCode(regionCode string) error {
	if regionCode == "" {
		return errs.NewValueIsRequiredError("region code")
	}
	c.regionCode = regionCode
	return nil
}

func (c *EditOrderCommand) setProduct(productID kernel.UUID, name string, price float64) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product", err)
	}
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if price < 0 {
		return errs.NewValueIsInvalidError("product price")
	}
	c.productID = productID
	c.productName = name
	c.productPrice = price
	return nil
}

func (c *EditOrderCommand) setPricing(unitPrice float64, quantity int) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unit price")
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.unitPrice = unitPrice
	c.quantity = quantity
	return nil
}
