package queries

import (
	"context"

	"storefront/internal/core/domain/model/geo"
)

// GetRegionsQueryHandler serves the region list from the geography table.
type GetRegionsQueryHandler struct{}

// NewGetRegionsQueryHandler creates a handler for region list queries.
func NewGetRegionsQueryHandler() GetRegionsQueryHandler {
	return GetRegionsQueryHandler{}
}

// Handle returns every region in table order.
func (h GetRegionsQueryHandler) Handle(
	_ context.Context,
	query GetRegionsQuery,
) ([]GetRegionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	regions := geo.Regions()
	resp := make([]GetRegionsQueryResponse, 0, len(regions))
	for _, region := range regions {
		resp = append(resp, GetRegionsQueryResponse{
			Code:       region.Code(),
			Name:       region.Name(),
			ArabicName: region.ArabicName(),
			HomeFee:    region.Fees().HomeFee(),
			PickupFee:  region.Fees().PickupFee(),
		})
	}

	return resp, nil
}
