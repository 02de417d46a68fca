package store_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/store"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBinding(t *testing.T) store.CarrierBinding {
	t.Helper()
	b, err := store.NewCarrierBinding("FastShip", "key-123", "tok-456", "https://img.example/fastship.png")
	require.NoError(t, err)
	return b
}

func TestNewCarrierBinding(t *testing.T) {
	t.Run("creates binding with credentials", func(t *testing.T) {
		b := validBinding(t)

		require.NoError(t, b.Validate())
		assert.Equal(t, "FastShip", b.Name())
		assert.Equal(t, "key-123", b.Key())
		assert.Equal(t, "tok-456", b.Token())
		assert.Equal(t, "https://img.example/fastship.png", b.LogoURL())
	})

	t.Run("logo is optional", func(t *testing.T) {
		_, err := store.NewCarrierBinding("FastShip", "key-123", "tok-456", "")
		require.NoError(t, err)
	})

	t.Run("requires name, key, and token", func(t *testing.T) {
		for _, tc := range []struct{ name, key, token string }{
			{"", "key", "tok"},
			{"FastShip", "", "tok"},
			{"FastShip", "key", ""},
		} {
			_, err := store.NewCarrierBinding(tc.name, tc.key, tc.token, "")
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var b store.CarrierBinding
		assert.Equal(t, store.ErrCarrierBindingIsNotConstructed, b.Validate())
	})
}

func TestNewStore(t *testing.T) {
	t.Run("creates store without carrier", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := store.NewStore(id, "Maison Amira", false)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "Maison Amira", s.Name())
		assert.False(t, s.IsPaid())
		assert.False(t, s.HasCarrier())
		assert.Nil(t, s.Carrier())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := store.NewStore(kernel.NewUUID(), "", false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		var id kernel.UUID
		_, err := store.NewStore(id, "Maison Amira", false)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s store.Store
		assert.Equal(t, store.ErrStoreIsNotConstructed, s.Validate())
	})
}

func TestStore_BindCarrier(t *testing.T) {
	t.Run("binds a validated carrier", func(t *testing.T) {
		s, err := store.NewStore(kernel.NewUUID(), "Maison Amira", false)
		require.NoError(t, err)

		require.NoError(t, s.BindCarrier(validBinding(t)))

		assert.True(t, s.HasCarrier())
		require.NotNil(t, s.Carrier())
		assert.Equal(t, "FastShip", s.Carrier().Name())
	})

	t.Run("rejects unconstructed binding", func(t *testing.T) {
		s, err := store.NewStore(kernel.NewUUID(), "Maison Amira", false)
		require.NoError(t, err)

		require.Error(t, s.BindCarrier(store.CarrierBinding{}))
		assert.False(t, s.HasCarrier())
	})

	t.Run("rebinding replaces the previous carrier", func(t *testing.T) {
		s, err := store.NewStore(kernel.NewUUID(), "Maison Amira", false)
		require.NoError(t, err)
		require.NoError(t, s.BindCarrier(validBinding(t)))

		replacement, err := store.NewCarrierBinding("QuickColis", "k2", "t2", "")
		require.NoError(t, err)
		require.NoError(t, s.BindCarrier(replacement))

		assert.Equal(t, "QuickColis", s.Carrier().Name())
	})
}

func TestStore_UnbindCarrier(t *testing.T) {
	s, err := store.NewStore(kernel.NewUUID(), "Maison Amira", true)
	require.NoError(t, err)
	require.NoError(t, s.BindCarrier(validBinding(t)))

	s.UnbindCarrier()

	assert.False(t, s.HasCarrier())
	assert.Nil(t, s.Carrier())
}

func TestRestoreStore(t *testing.T) {
	t.Run("rehydrates with binding", func(t *testing.T) {
		binding := validBinding(t)

		s, err := store.RestoreStore(kernel.NewUUID(), "Maison Amira", true, &binding)

		require.NoError(t, err)
		assert.True(t, s.IsPaid())
		assert.True(t, s.HasCarrier())
	})

	t.Run("rehydrates without binding", func(t *testing.T) {
		s, err := store.RestoreStore(kernel.NewUUID(), "Maison Amira", false, nil)

		require.NoError(t, err)
		assert.False(t, s.HasCarrier())
	})

	t.Run("rejects unconstructed binding", func(t *testing.T) {
		_, err := store.RestoreStore(kernel.NewUUID(), "Maison Amira", false, &store.CarrierBinding{})
		require.Error(t, err)
	})
}

func TestStore_Carrier_ReturnsCopy(t *testing.T) {
	s, err := store.NewStore(kernel.NewUUID(), "Maison Amira", false)
	require.NoError(t, err)
	require.NoError(t, s.BindCarrier(validBinding(t)))

	first := s.Carrier()
	second := s.Carrier()

	assert.NotSame(t, first, second)
}
