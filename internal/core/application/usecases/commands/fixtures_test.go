package commands_test

import (
	"testing"

	"storefront/internal/core/domain/model/geo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/store"

	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) product.Snapshot {
	t.Helper()
	snapshot, err := product.NewSnapshot(kernel.NewUUID(), "Leather Wallet", 1000, "https://cdn.example.com/wallet.jpg")
	require.NoError(t, err)
	return snapshot
}

func newTestOrder(t *testing.T, storeID kernel.UUID) *order.Order {
	t.Helper()
	fees, err := geo.FeesForRegion("16")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), storeID,
		"Amine Benali", "0550123456",
		"16", "Bab El Oued",
		testSnapshot(t), 2, fees, true, "")
	require.NoError(t, err)
	return aggregate
}

func newReadyTestOrder(t *testing.T, storeID kernel.UUID) *order.Order {
	t.Helper()
	aggregate := newTestOrder(t, storeID)
	require.NoError(t, aggregate.ChangeStatus(order.Ready, ""))
	return aggregate
}

func newDispatchedTestOrder(t *testing.T, storeID kernel.UUID) *order.Order {
	t.Helper()
	aggregate := newReadyTestOrder(t, storeID)
	require.NoError(t, aggregate.EnterCarrier())
	return aggregate
}

func newTestStore(t *testing.T, id kernel.UUID, withCarrier bool) *store.Store {
	t.Helper()
	aggregate, err := store.NewStore(id, "Wallet Shop", false)
	require.NoError(t, err)

	if withCarrier {
		binding, bindErr := store.NewCarrierBinding("FastShip", "key-123", "token-456", "")
		require.NoError(t, bindErr)
		require.NoError(t, aggregate.BindCarrier(binding))
	}
	return aggregate
}
