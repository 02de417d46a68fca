package geo

import (
	"storefront/internal/pkg/errs"
)

// ErrRegionFeesAreNotConstructed indicates that a RegionFees value was not
// created via NewRegionFees.
var ErrRegionFeesAreNotConstructed = errs.NewValueIsRequiredError("RegionFees must be created via NewRegionFees")

// RegionFees is a value object holding the two delivery fees of a region:
// one for home delivery and one for delivery to a pickup point.
//
// RegionFees is immutable. An order caches a RegionFees value when its region
// is selected so that switching delivery mode re-applies the cached fee
// without another table lookup.
type RegionFees struct {
	homeFee   float64
	pickupFee float64

	isConstructed bool
}

// NewRegionFees creates a RegionFees value. Both fees must be non-negative.
func NewRegionFees(homeFee, pickupFee float64) (RegionFees, error) {
	if homeFee < 0 {
		return RegionFees{}, errs.NewValueIsInvalidError("home fee")
	}
	if pickupFee < 0 {
		return RegionFees{}, errs.NewValueIsInvalidError("pickup fee")
	}

	return RegionFees{
		homeFee:       homeFee,
		pickupFee:     pickupFee,
		isConstructed: true,
	}, nil
}

// Validate ensures the fees were created via NewRegionFees.
func (f RegionFees) Validate() error {
	if !f.isConstructed {
		return ErrRegionFeesAreNotConstructed
	}
	return nil
}

// HomeFee returns the fee for delivery to the customer's address.
func (f RegionFees) HomeFee() float64 {
	return f.homeFee
}

// PickupFee returns the fee for delivery to a pickup point.
func (f RegionFees) PickupFee() float64 {
	return f.pickupFee
}

// ForMode returns the fee matching the delivery mode: the home fee when
// homeDelivery is true, the pickup-point fee otherwise.
func (f RegionFees) ForMode(homeDelivery bool) float64 {
	if homeDelivery {
		return f.homeFee
	}
	return f.pickupFee
}

// Region is one entry of the static geography price table: a region code,
// its localized names, and its two delivery fees.
type Region struct {
	code       string
	name       string
	arabicName string
	fees       RegionFees
}

// Code returns the region's stable identifier.
func (r Region) Code() string {
	return r.code
}

// Name returns the region's Latin name.
func (r Region) Name() string {
	return r.name
}

// ArabicName returns the region's Arabic name.
func (r Region) ArabicName() string {
	return r.arabicName
}

// Fees returns the region's delivery fees.
func (r Region) Fees() RegionFees {
	return r.fees
}

// Regions returns all entries of the price table in table order.
// The returned slice is a copy; mutating it does not affect the table.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// RegionByCode looks a region up by its code.
// Returns an ObjectNotFoundError for unrecognized codes; callers build
// region selectors from this table, so an unknown code reaching here is a
// programming or input error.
func RegionByCode(code string) (Region, error) {
	for _, r := range regions {
		if r.code == code {
			return r, nil
		}
	}
	return Region{}, errs.NewObjectNotFoundError("region", code)
}

// FeesForRegion returns the delivery fees of the region with the given code.
// Returns an ObjectNotFoundError for unrecognized codes.
func FeesForRegion(code string) (RegionFees, error) {
	r, err := RegionByCode(code)
	if err != nil {
		return RegionFees{}, err
	}
	return r.fees, nil
}

// CitiesForRegion returns the cities belonging to the region with the given
// code. The list is region-scoped: changing an order's region invalidates any
// previously selected city. Returns an ObjectNotFoundError for unrecognized
// codes.
func CitiesForRegion(code string) ([]string, error) {
	if _, err := RegionByCode(code); err != nil {
		return nil, err
	}
	out := make([]string, len(cities[code]))
	copy(out, cities[code])
	return out, nil
}

// CityBelongsToRegion reports whether city is in the region's city list.
func CityBelongsToRegion(code, city string) bool {
	for _, c := range cities[code] {
		if c == city {
			return true
		}
	}
	return false
}

func mustFees(homeFee, pickupFee float64) RegionFees {
	f, err := NewRegionFees(homeFee, pickupFee)
	if err != nil {
		panic(err)
	}
	return f
}
