package queries_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view(name string, status order.Status, regionCode string, home bool, total float64, createdAt time.Time) queries.OrderView {
	return queries.OrderView{
		ID:           kernel.NewUUID(),
		CustomerName: name,
		RegionCode:   regionCode,
		ProductID:    kernel.NewUUID(),
		HomeDelivery: home,
		Status:       status.String(),
		Total:        total,
		CreatedAt:    createdAt,
	}
}

func TestOrderFilterSet_Apply_EmptySetMatchesEverything(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	views := []queries.OrderView{
		view("Amine", order.Pending, "16", true, 2300, base),
		view("Karim", order.Confirmed, "31", false, 1500, base.Add(time.Hour)),
	}

	got, err := queries.NewOrderFilterSet(queries.SortNewest).Apply(views)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Karim", got[0].CustomerName) // newest first
	assert.Equal(t, "Amine", got[1].CustomerName)
}

func TestOrderFilterSet_Apply_ConjunctiveFilters(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	views := []queries.OrderView{
		view("Amine", order.Confirmed, "16", true, 2300, base),
		view("Karim", order.Confirmed, "31", true, 1500, base.Add(time.Hour)),
		view("Samir", order.Pending, "16", true, 900, base.Add(2*time.Hour)),
		view("Amina", order.Confirmed, "16", false, 700, base.Add(3*time.Hour)),
	}

	filters := queries.NewOrderFilterSet(queries.SortNewest).
		WithStatus(order.Confirmed).
		WithRegion("16").
		WithDeliveryMode(true)

	got, err := filters.Apply(views)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Amine", got[0].CustomerName)
}

func TestOrderFilterSet_Apply_CustomerSubstringIsCaseInsensitive(t *testing.T) {
	base := time.Now().UTC()
	views := []queries.OrderView{
		view("Amine Benali", order.Pending, "16", true, 100, base),
		view("Karim Haddad", order.Pending, "16", true, 100, base),
		view("amina cherif", order.Pending, "16", true, 100, base),
	}

	got, err := queries.NewOrderFilterSet(queries.SortNewest).WithCustomer("AMIN").Apply(views)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Amine Benali", got[0].CustomerName)
	assert.Equal(t, "amina cherif", got[1].CustomerName)
}

func TestOrderFilterSet_Apply_ProductFilter(t *testing.T) {
	base := time.Now().UTC()
	target := view("Amine", order.Pending, "16", true, 100, base)
	other := view("Karim", order.Pending, "16", true, 100, base)

	got, err := queries.NewOrderFilterSet(queries.SortNewest).
		WithProduct(target.ProductID).
		Apply([]queries.OrderView{target, other})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ID.IsEqual(target.ID))
}

func TestOrderFilterSet_Apply_PriceSorts(t *testing.T) {
	base := time.Now().UTC()
	views := []queries.OrderView{
		view("A", order.Pending, "16", true, 1500, base),
		view("B", order.Pending, "16", true, 2300, base),
		view("C", order.Pending, "16", true, 700, base),
	}

	high, err := queries.NewOrderFilterSet(queries.SortPriceHigh).Apply(views)
	require.NoError(t, err)
	assert.Equal(t, []float64{2300, 1500, 700}, []float64{high[0].Total, high[1].Total, high[2].Total})

	low, err := queries.NewOrderFilterSet(queries.SortPriceLow).Apply(views)
	require.NoError(t, err)
	assert.Equal(t, []float64{700, 1500, 2300}, []float64{low[0].Total, low[1].Total, low[2].Total})
}

// Equal sort keys keep their incoming relative position.
func TestOrderFilterSet_Apply_StableOnTies(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	views := []queries.OrderView{
		view("First", order.Pending, "16", true, 1000, base),
		view("Second", order.Pending, "16", true, 1000, base),
		view("Third", order.Pending, "16", true, 1000, base),
	}

	got, err := queries.NewOrderFilterSet(queries.SortPriceHigh).Apply(views)
	require.NoError(t, err)
	assert.Equal(t, "First", got[0].CustomerName)
	assert.Equal(t, "Second", got[1].CustomerName)
	assert.Equal(t, "Third", got[2].CustomerName)
}

func TestOrderFilterSet_Apply_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	views := []queries.OrderView{
		view("Old", order.Pending, "16", true, 100, base),
		view("New", order.Pending, "16", true, 100, base.Add(time.Hour)),
	}

	_, err := queries.NewOrderFilterSet(queries.SortNewest).Apply(views)
	require.NoError(t, err)
	assert.Equal(t, "Old", views[0].CustomerName)
	assert.Equal(t, "New", views[1].CustomerName)
}

func TestOrderFilterSet_Apply_NotConstructed(t *testing.T) {
	_, err := queries.OrderFilterSet{}.Apply(nil)
	require.Error(t, err)
}

func TestDistinctProducts_FirstSeenNameWins(t *testing.T) {
	base := time.Now().UTC()
	productID := kernel.NewUUID()

	first := view("A", order.Pending, "16", true, 100, base)
	first.ProductID = productID
	first.ProductName = "Leather Wallet"

	renamed := view("B", order.Pending, "16", true, 100, base)
	renamed.ProductID = productID
	renamed.ProductName = "Leather Wallet v2"

	other := view("C", order.Pending, "16", true, 100, base)
	other.ProductName = "Canvas Bag"

	options := queries.DistinctProducts([]queries.OrderView{first, renamed, other})
	require.Len(t, options, 2)
	assert.Equal(t, "Leather Wallet", options[0].Name)
	assert.Equal(t, "Canvas Bag", options[1].Name)
}

func TestDistinctRegions_Deduplicates(t *testing.T) {
	base := time.Now().UTC()
	views := []queries.OrderView{
		view("A", order.Pending, "16", true, 100, base),
		view("B", order.Pending, "31", true, 100, base),
		view("C", order.Pending, "16", true, 100, base),
	}
	views[0].RegionName = "Algiers"
	views[1].RegionName = "Oran"
	views[2].RegionName = "Algiers"

	options := queries.DistinctRegions(views)
	require.Len(t, options, 2)
	assert.Equal(t, "16", options[0].Code)
	assert.Equal(t, "31", options[1].Code)
}

func TestSortKeyFromString(t *testing.T) {
	key, err := queries.SortKeyFromString("")
	require.NoError(t, err)
	assert.Equal(t, queries.SortNewest, key)

	key, err = queries.SortKeyFromString("price_low")
	require.NoError(t, err)
	assert.Equal(t, queries.SortPriceLow, key)

	_, err = queries.SortKeyFromString("alphabetical")
	require.Error(t, err)
}
