package services

import (
	"storefront/internal/core/domain/model/order"
)

// phoneMask is the fixed-length replacement for hidden phone numbers.
// Its length is independent of the real number so neither digits nor length
// leak through.
const phoneMask = "**********"

// PhoneVisibility is the contact visibility policy: it decides whether a
// customer's phone number is shown in full or fully masked.
//
// The rule, in priority order:
//  1. An explicitly revealed order always shows the real number
//  2. A paid-tier store always shows the real number
//  3. Otherwise the number is replaced by a fixed-length mask
//
// The decision is pure and evaluated at render time against the store's
// current subscription state; it is never persisted, so an expired
// subscription re-masks immediately.
type PhoneVisibility struct{}

// NewPhoneVisibility creates a new PhoneVisibility policy instance.
func NewPhoneVisibility() PhoneVisibility {
	return PhoneVisibility{}
}

// ShowPhone returns the display value for the order's phone number given the
// store's current subscription tier.
func (p PhoneVisibility) ShowPhone(o *order.Order, storeIsPaid bool) string {
	return p.Display(o.Phone(), o.IsContactRevealed(), storeIsPaid)
}

// Display is the same decision over raw values, for read paths that have not
// rehydrated a full aggregate.
func (p PhoneVisibility) Display(phone string, revealContact, storeIsPaid bool) string {
	if revealContact || storeIsPaid {
		return phone
	}
	return phoneMask
}
