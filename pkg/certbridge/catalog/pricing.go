package catalog

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	priceKeyPattern = regexp.MustCompile(`(?i)^price0*(\d+)$`)
	yearKeyPattern  = regexp.MustCompile(`(?i)^0*(\d+)\s*years?$`)
	bareKeyPattern  = regexp.MustCompile(`^0*(\d+)$`)
)

// NormalizePricePeriods turns an arbitrary provider price-period encoding
// into a period-in-months table. Keys are parsed through an ordered set of
// pattern rules; entries with unparseable keys or non-positive amounts are
// discarded. When no period could be parsed but exactly one positive price
// remains, it is treated as a 12-month price.
func NormalizePricePeriods(raw map[string]any) model.PriceTable {
	normalized := model.PriceTable{}
	orphans := []decimal.Decimal{}

	for key, value := range raw {
		amount, ok := parseAmount(value)
		if !ok || !amount.IsPositive() {
			continue
		}

		months := 0
		switch {
		case priceKeyPattern.MatchString(key):
			months, _ = strconv.Atoi(priceKeyPattern.FindStringSubmatch(key)[1])
		case yearKeyPattern.MatchString(key):
			years, _ := strconv.Atoi(yearKeyPattern.FindStringSubmatch(key)[1])
			months = years * 12
		case bareKeyPattern.MatchString(key):
			n, _ := strconv.Atoi(bareKeyPattern.FindStringSubmatch(key)[1])
			// Small bare numbers are year counts, larger ones are months.
			if n <= 10 {
				months = n * 12
			} else {
				months = n
			}
		default:
			orphans = append(orphans, amount)
			continue
		}

		if months > 0 {
			normalized[months] = amount
		}
	}

	if len(normalized) == 0 && len(orphans) == 1 {
		normalized[12] = orphans[0]
	}
	return normalized
}

func parseAmount(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		amount, err := decimal.NewFromString(v.String())
		return amount, err == nil
	case string:
		amount, err := decimal.NewFromString(v)
		return amount, err == nil
	case decimal.Decimal:
		return v, true
	default:
		return decimal.Zero, false
	}
}

type PricePoint struct {
	ProviderSlug string          `json:"provider_slug"`
	Amount       decimal.Decimal `json:"amount"`
}

type PeriodComparison struct {
	Months int        `json:"months"`
	Best   PricePoint `json:"best"`
	// Offers holds every provider's amount for the period; providers
	// without a price for the period are absent.
	Offers map[string]decimal.Decimal `json:"offers"`

	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
	Margin    *decimal.Decimal `json:"margin,omitempty"`
}

type Comparison struct {
	CanonicalID string             `json:"canonical_id"`
	Periods     []PeriodComparison `json:"periods"`
}

type Comparator struct {
	storage MapperStorage
}

func NewComparator(s MapperStorage) *Comparator {
	return &Comparator{storage: s}
}

// Compare collects every provider's normalized price table for the canonical
// product and selects the cheapest provider per observed period. Exact price
// ties go to the first provider in slug order; the ordering is a deliberate,
// stable rule, not an accident of map iteration. Margin against the
// configured sell price is informational output only.
func (c *Comparator) Compare(ctx context.Context, canonicalID string) (Comparison, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return Comparison{}, fmt.Errorf("Comparator::Compare(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	canonicalResult, err := c.storage.ListCanonicalProducts(ctx, tx, storage.ListCanonicalProductsRequest{Limit: 1, IDs: []string{canonicalID}})
	if err != nil {
		return Comparison{}, fmt.Errorf("Comparator::Compare(): fail to ListCanonicalProducts(): %w", err)
	}
	if len(canonicalResult.Canonicals) == 0 {
		return Comparison{}, model.ErrCanonicalNotFound
	}
	canonical := canonicalResult.Canonicals[0]

	productResult, err := c.storage.ListCatalogProducts(ctx, tx, storage.ListCatalogProductsRequest{CanonicalIDs: []string{canonicalID}})
	if err != nil {
		return Comparison{}, fmt.Errorf("Comparator::Compare(): fail to ListCatalogProducts(): %w", err)
	}

	tables := map[string]model.PriceTable{}
	for _, product := range productResult.Products {
		if len(product.RawPrices) == 0 {
			continue
		}
		raw := map[string]any{}
		if err := json.Unmarshal(product.RawPrices, &raw); err != nil {
			continue
		}
		tables[product.ProviderSlug] = NormalizePricePeriods(raw)
	}

	providerSlugs := lo.Keys(tables)
	sort.Strings(providerSlugs)

	periods := []int{}
	for _, table := range tables {
		periods = append(periods, lo.Keys(table)...)
	}
	periods = lo.Uniq(periods)
	sort.Ints(periods)

	comparison := Comparison{CanonicalID: canonicalID}
	for _, months := range periods {
		period := PeriodComparison{Months: months, Offers: map[string]decimal.Decimal{}}

		for _, slug := range providerSlugs {
			amount, ok := tables[slug][months]
			if !ok {
				continue
			}
			period.Offers[slug] = amount
			if period.Best.ProviderSlug == "" || amount.LessThan(period.Best.Amount) {
				period.Best = PricePoint{ProviderSlug: slug, Amount: amount}
			}
		}

		if sellPrice, ok := canonical.SellPrice[months]; ok {
			margin := sellPrice.Sub(period.Best.Amount)
			period.SellPrice = &sellPrice
			period.Margin = &margin
		}

		comparison.Periods = append(comparison.Periods, period)
	}
	return comparison, nil
}
