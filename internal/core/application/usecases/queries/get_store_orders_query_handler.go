package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/geo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreOrdersQueryHandler reads a store's orders straight from the
// database, bypassing the aggregate layer. The rows are projected into
// views, phone numbers are masked according to the store's plan, and the
// requested filters are applied in memory over the full collection.
type GetStoreOrdersQueryHandler struct {
	db         *gorm.DB
	visibility services.PhoneVisibility
}

// NewGetStoreOrdersQueryHandler creates a handler for store order list queries.
func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{
		db:         db,
		visibility: services.NewPhoneVisibility(),
	}
}

// Handle executes the query. The store row is read first for its plan flag,
// then every order of the store, newest first. Filtering and sorting happen
// in memory; the dropdown collections come from the unfiltered rows.
func (h GetStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStoreOrdersQuery,
) (GetStoreOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreOrdersQueryResponse{}, err
	}

	var paid bool
	row := h.db.WithContext(ctx).Raw(`
		SELECT paid FROM stores WHERE id = ?
	`, query.StoreID().Bytes()).Row()
	if err := row.Scan(&paid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetStoreOrdersQueryResponse{}, errs.NewObjectNotFoundError("storeID", query.StoreID())
		}
		return GetStoreOrdersQueryResponse{}, err
	}

	views, err := h.loadViews(ctx, query.StoreID(), paid)
	if err != nil {
		return GetStoreOrdersQueryResponse{}, err
	}

	filtered, err := query.Filters().Apply(views)
	if err != nil {
		return GetStoreOrdersQueryResponse{}, err
	}

	return GetStoreOrdersQueryResponse{
		Orders:   filtered,
		Products: DistinctProducts(views),
		Regions:  DistinctRegions(views),
	}, nil
}

func (h GetStoreOrdersQueryHandler) loadViews(
	ctx context.Context,
	storeID kernel.UUID,
	storeIsPaid bool,
) ([]OrderView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			phone,
			region_code,
			city,
			product_id,
			product_name,
			product_image_url,
			unit_price,
			quantity,
			home_fee,
			pickup_fee,
			home_delivery,
			status,
			note,
			offer_name,
			reveal_contact,
			created_at
		FROM orders
		WHERE store_id = ?
		ORDER BY created_at DESC, id
	`, storeID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			id, productID          uuid.UUID
			customerName, phone    string
			regionCode, city       string
			productName, imageURL  string
			unitPrice              float64
			quantity               int
			homeFee, pickupFee     float64
			homeDelivery           bool
			status, note, offer    string
			revealContact          bool
			createdAt              time.Time
		)

		if err = rows.Scan(
			&id, &customerName, &phone, &regionCode, &city,
			&productID, &productName, &imageURL,
			&unitPrice, &quantity, &homeFee, &pickupFee, &homeDelivery,
			&status, &note, &offer, &revealContact, &createdAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		deliveryFee := pickupFee
		if homeDelivery {
			deliveryFee = homeFee
		}

		regionName := regionCode
		if region, regionErr := geo.RegionByCode(regionCode); regionErr == nil {
			regionName = region.Name()
		}

		views = append(views, OrderView{
			ID:              orderID,
			CustomerName:    customerName,
			Phone:           h.visibility.Display(phone, revealContact, storeIsPaid),
			RegionCode:      regionCode,
			RegionName:      regionName,
			City:            city,
			ProductID:       prodID,
			ProductName:     productName,
			ProductImageURL: imageURL,
			UnitPrice:       unitPrice,
			Quantity:        quantity,
			DeliveryFee:     deliveryFee,
			Total:           pricing.ComputeTotal(unitPrice, quantity, deliveryFee),
			HomeDelivery:    homeDelivery,
			Status:          status,
			Note:            note,
			OfferName:       offer,
			ContactRevealed: revealContact,
			CreatedAt:       createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
