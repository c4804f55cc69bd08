//go:build unit

package order_test

import (
	"testing"

	"bloom-express/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal(t *testing.T) {
	cases := []struct {
		name          string
		packageType   order.PackageType
		hasChocolates bool
		wantPackage   int64
		wantTotal     int64
		wantErr       bool
	}{
		{name: "one dozen", packageType: order.PackageOneDozen, wantPackage: 29900, wantTotal: 29900},
		{name: "two dozen", packageType: order.PackageTwoDozen, wantPackage: 42900, wantTotal: 42900},
		{name: "three dozen", packageType: order.PackageThreeDozen, wantPackage: 64900, wantTotal: 64900},
		{name: "one dozen with chocolates", packageType: order.PackageOneDozen, hasChocolates: true, wantPackage: 29900, wantTotal: 39800},
		{name: "three dozen with chocolates", packageType: order.PackageThreeDozen, hasChocolates: true, wantPackage: 64900, wantTotal: 74800},
		{name: "unknown package", packageType: "4_dozen", wantErr: true},
		{name: "empty package", packageType: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pricing, err := order.CalculateTotal(tc.packageType, tc.hasChocolates)
			if tc.wantErr {
				assert.ErrorIs(t, err, order.ErrUnknownPackage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPackage, pricing.PackagePriceCents)
			assert.Equal(t, tc.wantTotal, pricing.SubtotalCents)
			assert.Equal(t, tc.wantTotal, pricing.TotalCents, "no tax is applied")
			if tc.hasChocolates {
				assert.Equal(t, order.ChocolatesPriceCents, pricing.ChocolatesPriceCents)
			} else {
				assert.Zero(t, pricing.ChocolatesPriceCents)
			}
		})
	}
}

func TestPackageByID(t *testing.T) {
	pkg, err := order.PackageByID(order.PackageTwoDozen)
	require.NoError(t, err)
	assert.Equal(t, 24, pkg.Roses)
	assert.True(t, pkg.Featured)

	_, err = order.PackageByID("bouquet")
	assert.ErrorIs(t, err, order.ErrUnknownPackage)
}
