package order

import "errors"

var ErrUnknownPackage = errors.New("unknown package type")

type PackageType string

const (
	PackageOneDozen   PackageType = "1_dozen"
	PackageTwoDozen   PackageType = "2_dozen"
	PackageThreeDozen PackageType = "3_dozen"
)

type Package struct {
	ID          PackageType
	Name        string
	Roses       int
	PriceCents  int64
	Description string
	Featured    bool
}

// Packages is the full catalog. Three fixed tiers, no SKU management.
var Packages = []Package{
	{
		ID:          PackageOneDozen,
		Name:        "1 Dozen Red Roses",
		Roses:       12,
		PriceCents:  29900,
		Description: "Perfect for a sweet gesture",
	},
	{
		ID:          PackageTwoDozen,
		Name:        "2 Dozen Red Roses",
		Roses:       24,
		PriceCents:  42900,
		Description: "Our most popular choice",
		Featured:    true,
	},
	{
		ID:          PackageThreeDozen,
		Name:        "3 Dozen Red Roses",
		Roses:       36,
		PriceCents:  64900,
		Description: "The ultimate grand gesture",
	},
}

// ChocolatesPriceCents is the single order-bump add-on.
const ChocolatesPriceCents int64 = 9900

func PackageByID(id PackageType) (Package, error) {
	for _, p := range Packages {
		if p.ID == id {
			return p, nil
		}
	}
	return Package{}, ErrUnknownPackage
}

type Pricing struct {
	PackagePriceCents    int64
	ChocolatesPriceCents int64
	SubtotalCents        int64
	TotalCents           int64
}

// CalculateTotal prices an order. No tax is applied.
func CalculateTotal(packageType PackageType, hasChocolates bool) (Pricing, error) {
	pkg, err := PackageByID(packageType)
	if err != nil {
		return Pricing{}, err
	}

	var chocolates int64
	if hasChocolates {
		chocolates = ChocolatesPriceCents
	}

	subtotal := pkg.PriceCents + chocolates
	return Pricing{
		PackagePriceCents:    pkg.PriceCents,
		ChocolatesPriceCents: chocolates,
		SubtotalCents:        subtotal,
		TotalCents:           subtotal,
	}, nil
}
