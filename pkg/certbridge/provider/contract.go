// Package provider defines the capability contract every CA-reseller backend
// implements, plus the directory that resolves configured, credentialed
// adapter instances.
package provider

import (
	"context"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/shopspring/decimal"
)

type Operation string

const (
	OpTestConnection  = Operation("test_connection")
	OpBalance         = Operation("balance")
	OpFetchCatalog    = Operation("fetch_catalog")
	OpFetchPrice      = Operation("fetch_price")
	OpValidateOrder   = Operation("validate_order")
	OpPlaceOrder      = Operation("place_order")
	OpOrderStatus     = Operation("order_status")
	OpDownload        = Operation("download")
	OpReissue         = Operation("reissue")
	OpRenew           = Operation("renew")
	OpRevoke          = Operation("revoke")
	OpCancel          = Operation("cancel")
	OpDCVEmails       = Operation("dcv_emails")
	OpResendDCV       = Operation("resend_dcv")
	OpChangeDCVMethod = Operation("change_dcv_method")
	OpManagementURL   = Operation("management_url")
)

// ProductDescriptor is the normalized catalog entry an adapter produces from
// its backend's product listing. RawPrices keeps the provider's price table
// untouched; period normalization happens in the catalog package.
type ProductDescriptor struct {
	Code       string                `json:"code"`
	Name       string                `json:"name"`
	Vendor     string                `json:"vendor"`
	Validation model.ValidationLevel `json:"validation"`
	Class      model.ProductClass    `json:"class"`
	Wildcard   bool                  `json:"wildcard"`
	SANSupport bool                  `json:"san_support"`
	MinDomains int                   `json:"min_domains"`
	MaxDomains int                   `json:"max_domains"`
	MaxYears   int                   `json:"max_years"`
	RawPrices  map[string]any        `json:"raw_prices,omitempty"`
}

type OrderRequest struct {
	ProductCode string            `json:"product_code"`
	Domain      string            `json:"domain"`
	SANs        []string          `json:"sans,omitempty"`
	Years       int               `json:"years"`
	CSR         string            `json:"csr"`
	DCVMethod   string            `json:"dcv_method"`
	DCVEmail    string            `json:"dcv_email,omitempty"`
	Contact     map[string]string `json:"contact,omitempty"`
}

type OrderResult struct {
	RemoteID string            `json:"remote_id"`
	Status   model.OrderStatus `json:"status"`
}

// StatusResult carries only what the provider returned. Zero-valued fields
// mean "not reported" and must never overwrite stored order data.
type StatusResult struct {
	Status        model.OrderStatus `json:"status"`
	Certificate   string            `json:"certificate,omitempty"`
	CACertificate string            `json:"ca_certificate,omitempty"`
	ValidFrom     int64             `json:"valid_from,omitempty"`
	ValidTo       int64             `json:"valid_to,omitempty"`
	Domains       []string          `json:"domains,omitempty"`
}

type CertificateBundle struct {
	Certificate   string `json:"certificate"`
	CACertificate string `json:"ca_certificate"`
}

// Adapter is implemented once per integrated backend. Optional operations
// return model.UnsupportedOperationError instead of failing silently; callers
// match on it to gate affordances or route to another provider.
type Adapter interface {
	Slug() string
	Name() string
	Tier() model.ProviderTier
	Supports(op Operation) bool

	TestConnection(ctx context.Context) error
	Balance(ctx context.Context) (decimal.Decimal, error)
	FetchCatalog(ctx context.Context) ([]ProductDescriptor, error)
	FetchPrice(ctx context.Context, code string) (map[string]any, error)

	ValidateOrder(ctx context.Context, req OrderRequest) error
	PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error)
	OrderStatus(ctx context.Context, remoteID string) (StatusResult, error)

	Download(ctx context.Context, remoteID string) (CertificateBundle, error)
	Reissue(ctx context.Context, remoteID string, csr string) error
	Renew(ctx context.Context, remoteID string) (OrderResult, error)
	Revoke(ctx context.Context, remoteID string, reason string) error
	Cancel(ctx context.Context, remoteID string) error

	DCVEmails(ctx context.Context, domain string) ([]string, error)
	ResendDCV(ctx context.Context, remoteID string) error
	ChangeDCVMethod(ctx context.Context, remoteID string, method string) error

	// ManagementURL points at the provider's own portal. Limited-tier
	// providers route all lifecycle management there.
	ManagementURL(ctx context.Context, remoteID string) (string, error)
}

// Settings is the plain data every adapter constructor receives. Adapters
// never touch the vault or the provider table directly.
type Settings struct {
	Credentials map[string]string
	Mode        model.ProviderMode
	Config      map[string]any
}

// unsupported provides the rejecting default for every optional operation.
// Concrete adapters embed it and override what their backend offers.
type unsupported struct {
	slug string
}

func (u unsupported) errFor(op Operation) error {
	return model.UnsupportedOperationError{Provider: u.slug, Operation: string(op)}
}

func (u unsupported) Balance(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, u.errFor(OpBalance)
}

func (u unsupported) Download(ctx context.Context, remoteID string) (CertificateBundle, error) {
	return CertificateBundle{}, u.errFor(OpDownload)
}

func (u unsupported) Reissue(ctx context.Context, remoteID string, csr string) error {
	return u.errFor(OpReissue)
}

func (u unsupported) Renew(ctx context.Context, remoteID string) (OrderResult, error) {
	return OrderResult{}, u.errFor(OpRenew)
}

func (u unsupported) Revoke(ctx context.Context, remoteID string, reason string) error {
	return u.errFor(OpRevoke)
}

func (u unsupported) Cancel(ctx context.Context, remoteID string) error {
	return u.errFor(OpCancel)
}

func (u unsupported) DCVEmails(ctx context.Context, domain string) ([]string, error) {
	return nil, u.errFor(OpDCVEmails)
}

func (u unsupported) ResendDCV(ctx context.Context, remoteID string) error {
	return u.errFor(OpResendDCV)
}

func (u unsupported) ChangeDCVMethod(ctx context.Context, remoteID string, method string) error {
	return u.errFor(OpChangeDCVMethod)
}

func (u unsupported) ManagementURL(ctx context.Context, remoteID string) (string, error) {
	return "", u.errFor(OpManagementURL)
}
