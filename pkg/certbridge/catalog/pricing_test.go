package catalog_test

import (
	"context"
	"testing"

	"github.com/certbridge/certbridge/pkg/certbridge/catalog"
	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	mock_catalog "github.com/certbridge/certbridge/test/mock/certbridge/catalog"
	mock_storage "github.com/certbridge/certbridge/test/mock/certbridge/storage"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestNormalizePricePeriods(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want map[int]string
	}{
		{
			name: "price prefixed months",
			raw:  map[string]any{"price012": 50.0, "price024": 90.0},
			want: map[int]string{12: "50", 24: "90"},
		},
		{
			name: "year suffixed keys",
			raw:  map[string]any{"1year": 45.5, "2 years": 80.0},
			want: map[int]string{12: "45.5", 24: "80"},
		},
		{
			name: "small bare numbers are year counts",
			raw:  map[string]any{"1": 30.0, "3": 150.0},
			want: map[int]string{12: "30", 36: "150"},
		},
		{
			name: "large bare numbers are months",
			raw:  map[string]any{"12": 30.0, "24": 55.0},
			want: map[int]string{12: "30", 24: "55"},
		},
		{
			name: "string and json.Number amounts",
			raw:  map[string]any{"price012": "19.99", "price024": json.Number("35.50")},
			want: map[int]string{12: "19.99", 24: "35.5"},
		},
		{
			name: "non positive amounts discarded",
			raw:  map[string]any{"price012": 0.0, "price024": -5.0, "price036": 120.0},
			want: map[int]string{36: "120"},
		},
		{
			name: "unparseable amounts discarded",
			raw:  map[string]any{"price012": "n/a", "price024": []string{"x"}},
			want: map[int]string{},
		},
		{
			name: "single orphan falls back to one year",
			raw:  map[string]any{"cost": 42.0},
			want: map[int]string{12: "42"},
		},
		{
			name: "multiple orphans stay orphaned",
			raw:  map[string]any{"cost": 42.0, "fee": 10.0},
			want: map[int]string{},
		},
		{
			name: "orphan ignored once a period parses",
			raw:  map[string]any{"cost": 42.0, "price012": 30.0},
			want: map[int]string{12: "30"},
		},
		{
			name: "zero period discarded",
			raw:  map[string]any{"price000": 42.0},
			want: map[int]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.NormalizePricePeriods(tt.raw)
			require.Len(t, got, len(tt.want))
			for months, amount := range tt.want {
				require.Contains(t, got, months)
				require.True(t, got[months].Equal(decimal.RequireFromString(amount)), "period %d: got %s want %s", months, got[months], amount)
			}
		})
	}
}

type ComparatorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	ctx        context.Context
	storage    *mock_catalog.MockMapperStorage
	tx         *mock_storage.MockTx
	comparator *catalog.Comparator
}

func TestComparatorTestSuite(t *testing.T) {
	suite.Run(t, new(ComparatorTestSuite))
}

func (s *ComparatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_catalog.NewMockMapperStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.comparator = catalog.NewComparator(s.storage)
}

func (s *ComparatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ComparatorTestSuite) rawPrices(table map[string]any) []byte {
	blob, err := json.Marshal(table)
	s.Require().NoError(err)
	return blob
}

func (s *ComparatorTestSuite) TestCompare() {
	canonical := model.CanonicalProduct{
		ID:     "sectigo-positivessl",
		Name:   "PositiveSSL",
		Vendor: "sectigo",
		Active: true,
		SellPrice: model.PriceTable{
			12: decimal.RequireFromString("25"),
		},
	}

	products := []model.CatalogProduct{
		{
			ProviderSlug: "gogetssl",
			Code:         "100",
			CanonicalID:  canonical.ID,
			RawPrices:    s.rawPrices(map[string]any{"price012": 9.5, "price024": 17.0}),
		},
		{
			ProviderSlug: "thesslstore",
			Code:         "positive",
			CanonicalID:  canonical.ID,
			RawPrices:    s.rawPrices(map[string]any{"1year": 8.0, "2year": 17.0, "3year": 24.0}),
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListCanonicalProducts(gomock.Any(), s.tx, storage.ListCanonicalProductsRequest{Limit: 1, IDs: []string{canonical.ID}}).
			Return(storage.ListCanonicalProductsResponse{Total: 1, Canonicals: []model.CanonicalProduct{canonical}}, nil),
		s.storage.EXPECT().ListCatalogProducts(gomock.Any(), s.tx, storage.ListCatalogProductsRequest{CanonicalIDs: []string{canonical.ID}}).
			Return(storage.ListCatalogProductsResponse{Total: 2, Products: products}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	comparison, err := s.comparator.Compare(s.ctx, canonical.ID)
	s.Require().NoError(err)
	s.Assert().Equal(canonical.ID, comparison.CanonicalID)
	s.Require().Len(comparison.Periods, 3)

	oneYear := comparison.Periods[0]
	s.Assert().Equal(12, oneYear.Months)
	s.Assert().Equal("thesslstore", oneYear.Best.ProviderSlug)
	s.Assert().True(oneYear.Best.Amount.Equal(decimal.RequireFromString("8")))
	s.Require().Len(oneYear.Offers, 2)
	s.Require().NotNil(oneYear.SellPrice)
	s.Require().NotNil(oneYear.Margin)
	s.Assert().True(oneYear.SellPrice.Equal(decimal.RequireFromString("25")))
	s.Assert().True(oneYear.Margin.Equal(decimal.RequireFromString("17")))

	// Exact tie at 24 months goes to the first provider in slug order.
	twoYear := comparison.Periods[1]
	s.Assert().Equal(24, twoYear.Months)
	s.Assert().Equal("gogetssl", twoYear.Best.ProviderSlug)
	s.Assert().Nil(twoYear.SellPrice)
	s.Assert().Nil(twoYear.Margin)

	// Only one provider offers 36 months.
	threeYear := comparison.Periods[2]
	s.Assert().Equal(36, threeYear.Months)
	s.Assert().Equal("thesslstore", threeYear.Best.ProviderSlug)
	s.Require().Len(threeYear.Offers, 1)
}

func (s *ComparatorTestSuite) TestCompareSkipsUnreadablePriceBlobs() {
	canonical := model.CanonicalProduct{ID: "digicert-rapidssl", Active: true}
	products := []model.CatalogProduct{
		{ProviderSlug: "gogetssl", Code: "55", CanonicalID: canonical.ID, RawPrices: []byte("not json")},
		{ProviderSlug: "thesslstore", Code: "rapid", CanonicalID: canonical.ID},
		{
			ProviderSlug: "namecheap",
			Code:         "rapidssl",
			CanonicalID:  canonical.ID,
			RawPrices:    s.rawPrices(map[string]any{"price012": 11.0}),
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListCanonicalProducts(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListCanonicalProductsResponse{Total: 1, Canonicals: []model.CanonicalProduct{canonical}}, nil),
		s.storage.EXPECT().ListCatalogProducts(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListCatalogProductsResponse{Total: 3, Products: products}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	comparison, err := s.comparator.Compare(s.ctx, canonical.ID)
	s.Require().NoError(err)
	s.Require().Len(comparison.Periods, 1)
	s.Assert().Equal("namecheap", comparison.Periods[0].Best.ProviderSlug)
	s.Require().Len(comparison.Periods[0].Offers, 1)
}

func (s *ComparatorTestSuite) TestCompareCanonicalNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListCanonicalProducts(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListCanonicalProductsResponse{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.comparator.Compare(s.ctx, "missing")
	s.Require().ErrorIs(err, model.ErrCanonicalNotFound)
}
