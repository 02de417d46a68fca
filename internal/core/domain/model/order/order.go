package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/geo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

const maxQuantity = 10000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer purchase in a merchant's store. It is the
// aggregate root that manages the order lifecycle from creation through
// fulfillment and optional handoff to a delivery carrier.
//
// Order follows these invariants:
//   - Must belong to exactly one store and carry a product snapshot
//   - Customer name, phone, and region are required
//   - Total is always unit price x quantity + delivery fee; DeliveryFee and
//     Total are derived, never hand-edited
//   - The delivery fee is the cached region fee for the selected mode; the
//     cache is taken when the region is selected, so later price-table edits
//     do not alter historical orders
//   - Changing the region resets the city, because city lists are
//     region-scoped
//   - Once status reaches InCarrier the order is immutable except for note
//     edits
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id      kernel.UUID
	storeID kernel.UUID

	customerName string
	phone        string
	regionCode   string
	city         string

	snapshot  product.Snapshot
	unitPrice float64
	quantity  int

	fees         geo.RegionFees
	homeDelivery bool

	status        Status
	note          string
	offerName     string
	revealContact bool
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a valid new Order; persistence rehydration goes through
// RestoreOrder.
//
// The unit price is taken from the product snapshot, and the delivery fee is
// derived from the region fees and the selected delivery mode. The city may
// be empty; when set it must belong to the order's region, which the caller
// verifies against the geography table at input time.
func NewOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerName string,
	phone string,
	regionCode string,
	city string,
	snapshot product.Snapshot,
	quantity int,
	fees geo.RegionFees,
	homeDelivery bool,
	offerName string,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		homeDelivery:  homeDelivery,
		city:          city,
		offerName:     offerName,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setCustomer(customerName, phone),
		order.setRegion(regionCode, fees),
		order.setProduct(snapshot),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rehydrates an Order from persistence. Unlike NewOrder it
// accepts any valid status and the original creation timestamp, and keeps the
// persisted unit price rather than re-reading it from the snapshot.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerName string,
	phone string,
	regionCode string,
	city string,
	snapshot product.Snapshot,
	unitPrice float64,
	quantity int,
	fees geo.RegionFees,
	homeDelivery bool,
	status Status,
	note string,
	offerName string,
	revealContact bool,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        status,
		homeDelivery:  homeDelivery,
		city:          city,
		note:          note,
		offerName:     offerName,
		revealContact: revealContact,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setCustomer(customerName, phone),
		order.setRegion(regionCode, fees),
		order.setProduct(snapshot),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if err := order.setUnitPrice(unitPrice); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the identifier of the store the order belongs to.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the customer's real phone number. Render-time masking is the
// contact visibility policy's concern, never the aggregate's.
func (o *Order) Phone() string {
	return o.phone
}

// RegionCode returns the customer's delivery region code.
func (o *Order) RegionCode() string {
	return o.regionCode
}

// City returns the customer's city. Empty when no city was selected yet or
// after a region change.
func (o *Order) City() string {
	return o.city
}

// Product returns the product snapshot taken at order time.
func (o *Order) Product() product.Snapshot {
	return o.snapshot
}

// UnitPrice returns the price of one unit.
func (o *Order) UnitPrice() float64 {
	return o.unitPrice
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Fees returns the region fees cached when the order's region was selected.
func (o *Order) Fees() geo.RegionFees {
	return o.fees
}

// IsHomeDelivery reports the delivery mode: true for delivery to the
// customer's address, false for a pickup point.
func (o *Order) IsHomeDelivery() bool {
	return o.homeDelivery
}

// DeliveryFee returns the cached region fee for the current delivery mode.
func (o *Order) DeliveryFee() float64 {
	return o.fees.ForMode(o.homeDelivery)
}

// Total returns unit price x quantity + delivery fee. It is derived on every
// call, so it can never drift from its operands.
func (o *Order) Total() float64 {
	return pricing.ComputeTotal(o.unitPrice, o.quantity, o.DeliveryFee())
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Note returns the merchant's free-text note.
func (o *Order) Note() string {
	return o.note
}

// OfferName returns the optional promotional offer name.
func (o *Order) OfferName() string {
	return o.offerName
}

// IsContactRevealed reports whether the merchant explicitly revealed this
// order's contact details, overriding subscription-based masking.
func (o *Order) IsContactRevealed() bool {
	return o.revealContact
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the target status via explicit merchant
// action, optionally replacing the note in the same change so that a status
// change and a note edit issued together are persisted as one update.
//
// Fails with a StateIsLockedError when the order is already InCarrier, and
// rejects InCarrier as a target: carrier handoff goes through EnterCarrier
// only. On failure the order is left exactly as it was.
func (o *Order) ChangeStatus(target Status, note string) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.note = note
	return nil
}

// EnterCarrier marks the order as handed to the delivery carrier.
//
// The order must be exactly Ready; eligibility (the store's carrier binding)
// is the dispatch gate's concern. After a successful call the order is
// locked: only note edits are still allowed.
func (o *Order) EnterCarrier() error {
	newStatus, err := o.status.EnterCarrier()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateNote replaces the merchant's note. Notes remain editable in every
// status, including InCarrier.
func (o *Order) UpdateNote(note string) {
	o.note = note
}

// RevealContact marks the order's contact details as explicitly revealed.
// The flag is one-way: once a merchant has seen the number there is nothing
// left to hide. Fails with a StateIsLockedError when the order is InCarrier,
// since only note edits survive the carrier handoff.
func (o *Order) RevealContact() error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}

	o.revealContact = true
	return nil
}

// ChangeCustomer replaces the customer's name and phone.
// Fails with a StateIsLockedError when the order is InCarrier.
func (o *Order) ChangeCustomer(name, phone string) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}
	return o.setCustomer(name, phone)
}

// ChangeRegion moves the order to another region, caching the new region's
// fees. The city is reset to empty because city lists are region-scoped; the
// delivery fee and total follow the new fees immediately.
func (o *Order) ChangeRegion(regionCode string, fees geo.RegionFees) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}
	if err := o.setRegion(regionCode, fees); err != nil {
		return err
	}

	o.city = ""
	return nil
}

// ChangeCity sets the customer's city. The caller verifies against the
// geography table that the city belongs to the order's region.
func (o *Order) ChangeCity(city string) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}

	o.city = city
	return nil
}

// ChangeDeliveryMode switches between home delivery and pickup point.
// The cached region fees are re-applied without another table lookup, and
// the total follows.
func (o *Order) ChangeDeliveryMode(homeDelivery bool) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}

	o.homeDelivery = homeDelivery
	return nil
}

// ChangeProduct replaces the product snapshot and re-reads the unit price
// from the new snapshot.
func (o *Order) ChangeProduct(snapshot product.Snapshot) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}
	return o.setProduct(snapshot)
}

// ChangePricing sets the unit price and quantity. The total follows.
func (o *Order) ChangePricing(unitPrice float64, quantity int) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}
	if err := o.setUnitPrice(unitPrice); err != nil {
		return err
	}
	return o.setQuantity(quantity)
}

// ChangeOffer replaces the optional offer name.
func (o *Order) ChangeOffer(offerName string) error {
	if err := o.guardUnlocked(); err != nil {
		return err
	}

	o.offerName = offerName
	return nil
}

func (o *Order) guardUnlocked() error {
	if o.status.IsLocked() {
		return errs.NewStateIsLockedError("order", o.status.String())
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setCustomer(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	o.customerName = name
	o.phone = phone
	return nil
}

func (o *Order) setRegion(regionCode string, fees geo.RegionFees) error {
	if regionCode == "" {
		return errs.NewValueIsRequiredError("region code")
	}
	if err := fees.Validate(); err != nil {
		return err
	}
	o.regionCode = regionCode
	o.fees = fees
	return nil
}

func (o *Order) setProduct(snapshot product.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	o.snapshot = snapshot
	o.unitPrice = snapshot.UnitPrice()
	return nil
}

func (o *Order) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unit price")
	}
	o.unitPrice = unitPrice
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	o.quantity = quantity
	return nil
}
