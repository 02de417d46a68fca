package services_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneVisibility_Display(t *testing.T) {
	policy := services.NewPhoneVisibility()

	tests := []struct {
		name          string
		revealContact bool
		storeIsPaid   bool
		want          string
	}{
		{"revealed order on free store shows real number", true, false, "0555123456"},
		{"revealed order on paid store shows real number", true, true, "0555123456"},
		{"paid store shows real number", false, true, "0555123456"},
		{"free store fully masks", false, false, "**********"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Display("0555123456", tt.revealContact, tt.storeIsPaid)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("mask has fixed length regardless of number length", func(t *testing.T) {
		short := policy.Display("123", false, false)
		long := policy.Display("0555123456789012", false, false)

		assert.Equal(t, short, long)
		assert.Len(t, short, 10)
		assert.NotContains(t, short, "1")
	})
}

func TestPhoneVisibility_ShowPhone(t *testing.T) {
	policy := services.NewPhoneVisibility()

	t.Run("masks unrevealed order of a free store", func(t *testing.T) {
		o := newOrder(t, order.Pending)
		assert.Equal(t, "**********", policy.ShowPhone(o, false))
	})

	t.Run("reveal flag overrides masking", func(t *testing.T) {
		o := newOrder(t, order.Pending)
		require.NoError(t, o.RevealContact())
		assert.Equal(t, "0555123456", policy.ShowPhone(o, false))
	})

	t.Run("masking follows the current subscription state", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		require.Equal(t, "0555123456", policy.ShowPhone(o, true))
		// Subscription lapsed; the same order re-masks immediately.
		require.Equal(t, "**********", policy.ShowPhone(o, false))
	})
}
