// Package catalog links provider-specific product codes onto the shared
// canonical taxonomy and normalizes heterogeneous price tables.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// fuzzyMaxDistance bounds the edit distance for the last-resort matching
// strategy. Distance ties leave the product unmapped for manual resolution.
const fuzzyMaxDistance = 3

type MatchStrategy string

const (
	MatchExactCode      = MatchStrategy("exact_code")
	MatchNormalizedName = MatchStrategy("normalized_name")
	MatchFuzzyName      = MatchStrategy("fuzzy_name")
)

type MapperStorage interface {
	storage.CatalogStorage
	storage.CanonicalStorage
}

type AutoMapReport struct {
	Mapped      int                   `json:"mapped"`
	Unmapped    int                   `json:"unmapped"`
	PerStrategy map[MatchStrategy]int `json:"per_strategy"`
}

type CreateCanonicalRequest struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Vendor     string                `json:"vendor"`
	Validation model.ValidationLevel `json:"validation"`
	Class      model.ProductClass    `json:"class"`

	// SellPrice is the configured retail price per period in months. Price
	// comparisons report margin against it.
	SellPrice model.PriceTable `json:"sell_price,omitempty"`
}

type Mapper struct {
	storage MapperStorage
}

func NewMapper(s MapperStorage) *Mapper {
	return &Mapper{storage: s}
}

// AutoMap tries three strategies per unmapped product, each more permissive
// than the last: exact provider-code match, normalized-name match, then fuzzy
// name match. The first strategy that produces a single candidate wins.
func (m *Mapper) AutoMap(ctx context.Context) (AutoMapReport, error) {
	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	canonicalResult, err := m.storage.ListCanonicalProducts(ctx, tx, storage.ListCanonicalProductsRequest{ActiveOnly: true})
	if err != nil {
		return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to ListCanonicalProducts(): %w", err)
	}
	productResult, err := m.storage.ListCatalogProducts(ctx, tx, storage.ListCatalogProductsRequest{UnmappedOnly: true})
	if err != nil {
		return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to ListCatalogProducts(): %w", err)
	}

	canonicals := canonicalResult.Canonicals
	report := AutoMapReport{PerStrategy: map[MatchStrategy]int{}}

	for _, product := range productResult.Products {
		idx, strategy := matchCanonical(product, canonicals)
		if idx < 0 {
			report.Unmapped++
			continue
		}

		canonical := &canonicals[idx]
		if canonical.Codes == nil {
			canonical.Codes = map[string]string{}
		}
		canonical.Codes[product.ProviderSlug] = product.Code
		canonical.UpdatedAt = time.Now().Unix()
		if err := m.storage.StoreCanonicalProduct(ctx, tx, *canonical); err != nil {
			return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to StoreCanonicalProduct(): %w", err)
		}
		if err := m.storage.ClearCanonicalCode(ctx, tx, product.ProviderSlug, product.Code, canonical.ID); err != nil {
			return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to ClearCanonicalCode(): %w", err)
		}
		if err := m.storage.SetProductCanonicalID(ctx, tx, product.ProviderSlug, product.Code, canonical.ID); err != nil {
			return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to SetProductCanonicalID(): %w", err)
		}

		logrus.Debugf("mapped %s/%s to %s via %s", product.ProviderSlug, product.Code, canonical.ID, strategy)
		report.Mapped++
		report.PerStrategy[strategy]++
	}

	if err := tx.Commit(ctx); err != nil {
		return AutoMapReport{}, fmt.Errorf("Mapper::AutoMap(): fail to Commit(): %w", err)
	}
	return report, nil
}

// SetMapping is the manual override. The code is removed from any other
// canonical first; a code belongs to exactly one canonical at a time.
func (m *Mapper) SetMapping(ctx context.Context, canonicalID, providerSlug, code string) error {
	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return fmt.Errorf("Mapper::SetMapping(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	canonical, err := m.getCanonical(ctx, tx, canonicalID)
	if err != nil {
		return err
	}

	if canonical.Codes == nil {
		canonical.Codes = map[string]string{}
	}
	canonical.Codes[providerSlug] = code
	canonical.UpdatedAt = time.Now().Unix()

	if err := m.storage.ClearCanonicalCode(ctx, tx, providerSlug, code, canonical.ID); err != nil {
		return fmt.Errorf("Mapper::SetMapping(): fail to ClearCanonicalCode(): %w", err)
	}
	if err := m.storage.StoreCanonicalProduct(ctx, tx, canonical); err != nil {
		return fmt.Errorf("Mapper::SetMapping(): fail to StoreCanonicalProduct(): %w", err)
	}
	if err := m.storage.SetProductCanonicalID(ctx, tx, providerSlug, code, canonical.ID); err != nil {
		return fmt.Errorf("Mapper::SetMapping(): fail to SetProductCanonicalID(): %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("Mapper::SetMapping(): fail to Commit(): %w", err)
	}
	return nil
}

// CreateCanonical stores a new canonical product, deriving a deterministic id
// from vendor and name when the caller does not supply one.
func (m *Mapper) CreateCanonical(ctx context.Context, req CreateCanonicalRequest) (model.CanonicalProduct, error) {
	if err := ValidateCreateCanonicalRequest(req); err != nil {
		return model.CanonicalProduct{}, err
	}

	id := req.ID
	if id == "" {
		id = DeriveCanonicalID(req.Vendor, req.Name)
	}

	ts := time.Now().Unix()
	canonical := model.CanonicalProduct{
		ID:         id,
		Name:       req.Name,
		Vendor:     req.Vendor,
		Validation: req.Validation,
		Class:      req.Class,
		Codes:      map[string]string{},
		Active:     true,
		SellPrice:  req.SellPrice,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.CanonicalProduct{}, fmt.Errorf("Mapper::CreateCanonical(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.storage.StoreCanonicalProduct(ctx, tx, canonical); err != nil {
		return model.CanonicalProduct{}, fmt.Errorf("Mapper::CreateCanonical(): fail to StoreCanonicalProduct(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.CanonicalProduct{}, fmt.Errorf("Mapper::CreateCanonical(): fail to Commit(): %w", err)
	}
	return canonical, nil
}

func (m *Mapper) getCanonical(ctx context.Context, tx storage.Tx, id string) (model.CanonicalProduct, error) {
	listResult, err := m.storage.ListCanonicalProducts(ctx, tx, storage.ListCanonicalProductsRequest{Limit: 1, IDs: []string{id}})
	if err != nil {
		return model.CanonicalProduct{}, fmt.Errorf("Mapper::getCanonical(): fail to ListCanonicalProducts(): %w", err)
	}
	if len(listResult.Canonicals) == 0 {
		return model.CanonicalProduct{}, model.ErrCanonicalNotFound
	}
	return listResult.Canonicals[0], nil
}

// matchCanonical returns the index of the winning canonical and the strategy
// that produced it, or (-1, "") when the product stays unmapped.
func matchCanonical(product model.CatalogProduct, canonicals []model.CanonicalProduct) (int, MatchStrategy) {
	// Strategy 1: exact provider-code match.
	for i, canonical := range canonicals {
		if canonical.Codes[product.ProviderSlug] == product.Code {
			return i, MatchExactCode
		}
	}

	productName := NormalizeName(product.Name)

	// Strategy 2: normalized-name match gated by vendor alias and, when both
	// sides declare one, validation level. The same gates apply to the fuzzy
	// strategy below.
	for i, canonical := range canonicals {
		if _, taken := canonical.Codes[product.ProviderSlug]; taken {
			continue
		}
		if !VendorAliasCompatible(product.Vendor, canonical.Vendor) {
			continue
		}
		if product.Validation != "" && canonical.Validation != "" && product.Validation != canonical.Validation {
			continue
		}
		if productName != "" && productName == NormalizeName(canonical.Name) {
			return i, MatchNormalizedName
		}
	}

	// Strategy 3: fuzzy match on normalized names, single closest candidate.
	// A name that normalizes to nothing carries no signal and is close to every
	// short name, so it never fuzzy-matches.
	if productName == "" {
		return -1, ""
	}
	bestIdx := -1
	bestDistance := fuzzyMaxDistance
	tie := false
	for i, canonical := range canonicals {
		if _, taken := canonical.Codes[product.ProviderSlug]; taken {
			continue
		}
		if !VendorAliasCompatible(product.Vendor, canonical.Vendor) {
			continue
		}
		if product.Validation != "" && canonical.Validation != "" && product.Validation != canonical.Validation {
			continue
		}
		canonicalName := NormalizeName(canonical.Name)
		if canonicalName == "" {
			continue
		}
		distance := levenshtein(productName, canonicalName)
		if distance >= fuzzyMaxDistance {
			continue
		}
		switch {
		case bestIdx < 0 || distance < bestDistance:
			bestIdx, bestDistance, tie = i, distance, false
		case distance == bestDistance:
			tie = true
		}
	}
	if bestIdx >= 0 && !tie {
		return bestIdx, MatchFuzzyName
	}

	return -1, ""
}

var nameSynonyms = [][2]string{
	{"organization validation", "ov"},
	{"organizational validation", "ov"},
	{"extended validation", "ev"},
	{"domain validation", "dv"},
	{"multi-domain", "md"},
	{"multi domain", "md"},
	{"multidomain", "md"},
	{"wildcard", "wc"},
}

var nameStopWords = map[string]bool{
	"certificate":  true,
	"certificates": true,
	"ssl":          true,
	"tls":          true,
	"standard":     true,
	"premium":      true,
	"secure":       true,
	"single":       true,
	"domain":       true,
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// NormalizeName lowercases, collapses known synonyms, strips stop words and
// punctuation, and squeezes whitespace so brand spelling differences do not
// break name matching.
func NormalizeName(name string) string {
	lowered := strings.ToLower(name)
	for _, synonym := range nameSynonyms {
		lowered = strings.ReplaceAll(lowered, synonym[0], synonym[1])
	}
	lowered = nonAlnum.ReplaceAllString(lowered, " ")

	words := lo.Filter(strings.Fields(lowered), func(word string, _ int) bool {
		return !nameStopWords[word]
	})
	return strings.Join(words, " ")
}

// vendorAliases groups brand renames and sub-brands into one family so a
// rename never breaks matching.
var vendorAliases = [][]string{
	{"sectigo", "comodo", "positivessl", "instantssl", "essentialssl"},
	{"digicert", "geotrust", "thawte", "rapidssl"},
	{"globalsign", "alphassl"},
}

func VendorAliasCompatible(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	for _, family := range vendorAliases {
		if lo.Contains(family, a) && lo.Contains(family, b) {
			return true
		}
	}
	return false
}

// DeriveCanonicalID builds a stable, human-derivable id slug from vendor and
// product name.
func DeriveCanonicalID(vendor, name string) string {
	slug := strings.ToLower(vendor + " " + name)
	slug = nonAlnum.ReplaceAllString(slug, " ")
	return strings.Join(strings.Fields(slug), "-")
}

func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
