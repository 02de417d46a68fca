package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new customer order.
// It carries the customer's contact and geography, the product being bought
// (copied into a snapshot by the handler), and the commercial terms.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), storeID,
//	    "Amina", "0555123456", "16", "Bab El Oued",
//	    productID, "Leather Bag", 4500, "https://img.example/bag.jpg",
//	    2, true, "winter promo",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	storeID kernel.UUID

	customerName string
	phone        string
	regionCode   string
	city         string

	productID       kernel.UUID
	productName     string
	productPrice    float64
	productImageURL string

	quantity     int
	homeDelivery bool
	offerName    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Customer name, phone, region, and a selected product are required before
// submit; quantity must be at least 1. The city may be empty, and is checked
// against the region's city list by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	storeID kernel.UUID,
	customerName string,
	phone string,
	regionCode string,
	city string,
	productID kernel.UUID,
	productName string,
	productPrice float64,
	productImageURL string,
	quantity int,
	homeDelivery bool,
	offerName string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		city:            city,
		productImageURL: productImageURL,
		homeDelivery:    homeDelivery,
		offerName:       offerName,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
		cmd.setCustomer(customerName, phone),
		cmd.setRegionCode(regionCode),
		cmd.setProduct(productID, productName, productPrice),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// StoreID returns the identifier of the store the order belongs to.
func (c CreateOrderCommand) StoreID() kernel.UUID { return c.storeID }

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// Phone returns the customer's phone number.
func (c CreateOrderCommand) Phone() string { return c.phone }

// RegionCode returns the customer's delivery region code.
func (c CreateOrderCommand) RegionCode() string { return c.regionCode }

// City returns the customer's city, possibly empty.
func (c CreateOrderCommand) City() string { return c.city }

// ProductID returns the identifier of the ordered product.
func (c CreateOrderCommand) ProductID() kernel.UUID { return c.productID }

// ProductName returns the ordered product's name.
func (c CreateOrderCommand) ProductName() string { return c.productName }

// ProductPrice returns the ordered product's unit price.
func (c CreateOrderCommand) ProductPrice() float64 { return c.productPrice }

// ProductImageURL returns the ordered product's image reference.
func (c CreateOrderCommand) ProductImageURL() string { return c.productImageURL }

// Quantity returns the number of units ordered.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// HomeDelivery reports the selected delivery mode.
func (c CreateOrderCommand) HomeDelivery() bool { return c.homeDelivery }

// OfferName returns the optional promotional offer name.
func (c CreateOrderCommand) OfferName() string { return c.offerName }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone string) error {
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

func (c *CreateOrderCommand) setRegionCode(regionCode string) error {
	if regionCode == "" {
		return errs.NewValueIsRequiredError("region code")
	}
	c.regionCode = regionCode
	return nil
}

func (c *CreateOrderCommand) setProduct(productID kernel.UUID, name string, price float64) error {
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

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}
