package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreQueryHandler retrieves a store profile from the database.
type GetStoreQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreQueryHandler creates a handler for store profile queries.
func NewGetStoreQueryHandler(db *gorm.DB) GetStoreQueryHandler {
	return GetStoreQueryHandler{db: db}
}

// Handle executes the query. An unknown store id yields an ObjectNotFoundError.
func (h GetStoreQueryHandler) Handle(
	ctx context.Context,
	query GetStoreQuery,
) (GetStoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreQueryResponse{}, err
	}

	var (
		id          uuid.UUID
		name        string
		paid        bool
		carrierName sql.NullString
		carrierLogo sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, paid, carrier_name, carrier_logo_url
		FROM stores
		WHERE id = ?
	`, query.StoreID().Bytes()).Row()

	if err := row.Scan(&id, &name, &paid, &carrierName, &carrierLogo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetStoreQueryResponse{}, errs.NewObjectNotFoundError("storeID", query.StoreID())
		}
		return GetStoreQueryResponse{}, err
	}

	storeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetStoreQueryResponse{}, err
	}

	resp := GetStoreQueryResponse{
		ID:   storeID,
		Name: name,
		Paid: paid,
	}
	if carrierName.Valid && carrierName.String != "" {
		resp.Carrier = &CarrierView{
			Name:    carrierName.String,
			LogoURL: carrierLogo.String,
		}
	}

	return resp, nil
}
