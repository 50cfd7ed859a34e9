package model

import (
	"github.com/shopspring/decimal"
)

type ValidationLevel string
type ProductClass string

const (
	ValidationDV = ValidationLevel("dv")
	ValidationOV = ValidationLevel("ov")
	ValidationEV = ValidationLevel("ev")

	ProductClassSSL         = ProductClass("ssl")
	ProductClassWildcard    = ProductClass("wildcard")
	ProductClassMultiDomain = ProductClass("multi_domain")
	ProductClassCodeSigning = ProductClass("code_signing")
	ProductClassEmail       = ProductClass("email")
)

// PriceTable maps a period in months to an amount. Provider price tables
// arrive in heterogeneous shapes and are normalized into this form by the
// catalog package.
type PriceTable map[int]decimal.Decimal

// CatalogProduct is the local mirror of one provider product. The pair
// (ProviderSlug, Code) is unique. Rows are created and refreshed only by
// catalog sync; the CanonicalID link is the only field edited elsewhere.
type CatalogProduct struct {
	ProviderSlug string          `json:"provider_slug"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Vendor       string          `json:"vendor"`
	Validation   ValidationLevel `json:"validation"`
	Class        ProductClass    `json:"class"`
	Wildcard     bool            `json:"wildcard"`
	SANSupport   bool            `json:"san_support"`
	MinDomains   int             `json:"min_domains"`
	MaxDomains   int             `json:"max_domains"`
	MaxYears     int             `json:"max_years"`

	// RawPrices keeps the provider's price table verbatim. Catalog sync
	// byte-compares it to detect price changes.
	RawPrices []byte `json:"raw_prices,omitempty"`

	CanonicalID string `json:"canonical_id,omitempty"`
	LastSyncAt  int64  `json:"last_sync_at"`
}

// CanonicalProduct is one abstract certificate offering shared by all
// providers. Codes maps provider slug to that provider's product code; each
// provider holds at most one code and a code belongs to at most one canonical.
type CanonicalProduct struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Vendor     string            `json:"vendor"`
	Validation ValidationLevel   `json:"validation"`
	Class      ProductClass      `json:"class"`
	Codes      map[string]string `json:"codes"`
	Active     bool              `json:"active"`

	// SellPrice is the configured retail price per period, used only for
	// informational margin reporting in price comparisons.
	SellPrice PriceTable `json:"sell_price,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
