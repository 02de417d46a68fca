// Package storerepo provides data transfer objects and mapping functions for
// store persistence, including the embedded carrier binding.
package storerepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
// The carrier binding is embedded with a carrier_ column prefix; an unbound
// store keeps the columns empty.
type StoreDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string
	Paid    bool
	Carrier CarrierDTO `gorm:"embedded;embeddedPrefix:carrier_"`
}

// TableName overrides GORM's default naming convention to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// CarrierDTO represents the carrier binding columns within the store table.
type CarrierDTO struct {
	Name    string
	Key     string
	Token   string
	LogoURL string
}

func fromDomain(aggregate *store.Store) StoreDTO {
	dto := StoreDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Paid: aggregate.IsPaid(),
	}

	if binding := aggregate.Carrier(); binding != nil {
		dto.Carrier = CarrierDTO{
			Name:    binding.Name(),
			Key:     binding.Key(),
			Token:   binding.Token(),
			LogoURL: binding.LogoURL(),
		}
	}

	return dto
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var binding *store.CarrierBinding
	if dto.Carrier.Name != "" {
		b, bindErr := store.NewCarrierBinding(
			dto.Carrier.Name, dto.Carrier.Key, dto.Carrier.Token, dto.Carrier.LogoURL)
		if bindErr != nil {
			return nil, bindErr
		}
		binding = &b
	}

	return store.RestoreStore(id, dto.Name, dto.Paid, binding)
}
