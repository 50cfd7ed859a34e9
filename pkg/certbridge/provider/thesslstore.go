package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/goccy/go-json"
)

const (
	TheSSLStoreSlug = "thesslstore"

	theSSLStoreLiveURL    = "https://api.thesslstore.com/rest"
	theSSLStoreSandboxURL = "https://sandbox-wbapi.thesslstore.com/rest"
)

func init() {
	Register(TheSSLStoreSlug, NewTheSSLStore)
}

// TheSSLStore is a full-tier backend speaking a JSON POST API. Every request
// body carries the partner code and auth token.
type TheSSLStore struct {
	unsupported
	client      *Client
	partnerCode string
	authToken   string
}

var theSSLStoreOps = map[Operation]bool{
	OpTestConnection: true,
	OpFetchCatalog:   true,
	OpFetchPrice:     true,
	OpValidateOrder:  true,
	OpPlaceOrder:     true,
	OpOrderStatus:    true,
	OpDownload:       true,
	OpReissue:        true,
	OpRevoke:         true,
	OpCancel:         true,
	OpDCVEmails:      true,
	OpResendDCV:      true,
}

func NewTheSSLStore(settings Settings) (Adapter, error) {
	partnerCode := settings.Credentials["partner_code"]
	authToken := settings.Credentials["auth_token"]
	if partnerCode == "" || authToken == "" {
		return nil, fmt.Errorf("thesslstore: partner_code and auth_token credentials are required%w", model.ErrInvalidParameter)
	}

	baseURL := theSSLStoreLiveURL
	if settings.Mode == model.ProviderModeSandbox {
		baseURL = theSSLStoreSandboxURL
	}
	if configured, ok := settings.Config["api_url"].(string); ok && configured != "" {
		baseURL = configured
	}

	return &TheSSLStore{
		unsupported: unsupported{slug: TheSSLStoreSlug},
		client:      NewClient(baseURL, WithRateLimit(5)),
		partnerCode: partnerCode,
		authToken:   authToken,
	}, nil
}

func (t *TheSSLStore) Slug() string             { return TheSSLStoreSlug }
func (t *TheSSLStore) Name() string             { return "The SSL Store" }
func (t *TheSSLStore) Tier() model.ProviderTier { return model.ProviderTierFull }

func (t *TheSSLStore) Supports(op Operation) bool {
	return theSSLStoreOps[op]
}

type theSSLStoreAuth struct {
	PartnerCode string `json:"PartnerCode"`
	AuthToken   string `json:"AuthToken"`
}

type theSSLStoreResult struct {
	AuthResponse struct {
		IsError bool     `json:"isError"`
		Message []string `json:"Message"`
	} `json:"AuthResponse"`
}

func (t *TheSSLStore) auth() theSSLStoreAuth {
	return theSSLStoreAuth{PartnerCode: t.partnerCode, AuthToken: t.authToken}
}

func (t *TheSSLStore) TestConnection(ctx context.Context) error {
	resp, err := t.client.PostJSON(ctx, "/health/validate", map[string]any{"AuthRequest": t.auth()})
	if err != nil {
		return err
	}
	return theSSLStoreError(resp)
}

type theSSLStoreProduct struct {
	ProductCode    string `json:"ProductCode"`
	ProductName    string `json:"ProductName"`
	VendorName     string `json:"VendorName"`
	IsWildcard     bool   `json:"IsWildcard"`
	IsSanEnable    bool   `json:"IsSanEnable"`
	MaxSan         int    `json:"MaxSan"`
	MinSan         int    `json:"MinSan"`
	ValidationType string `json:"ProductValidationType"`
	IsCodeSigning  bool   `json:"IsCodeSigning"`
	PricingInfo    []struct {
		NumberOfMonths int     `json:"NumberOfMonths"`
		Price          float64 `json:"Price"`
	} `json:"PricingInfo"`
}

func (t *TheSSLStore) FetchCatalog(ctx context.Context) ([]ProductDescriptor, error) {
	resp, err := t.client.PostJSON(ctx, "/product/query", map[string]any{
		"AuthRequest": t.auth(),
		"ProductType": 0,
	})
	if err != nil {
		return nil, err
	}
	if err := theSSLStoreError(resp); err != nil {
		return nil, err
	}

	var products []theSSLStoreProduct
	if err := json.Unmarshal(resp.RawBody, &products); err != nil {
		return nil, fmt.Errorf("thesslstore: decode product list: %w", err)
	}

	descriptors := make([]ProductDescriptor, 0, len(products))
	for _, p := range products {
		rawPrices := map[string]any{}
		maxYears := 0
		for _, tier := range p.PricingInfo {
			rawPrices[fmt.Sprintf("price%03d", tier.NumberOfMonths)] = tier.Price
			if years := tier.NumberOfMonths / 12; years > maxYears {
				maxYears = years
			}
		}

		descriptor := ProductDescriptor{
			Code:       p.ProductCode,
			Name:       p.ProductName,
			Vendor:     p.VendorName,
			Validation: theSSLStoreValidation(p.ValidationType),
			Class:      theSSLStoreClass(p),
			Wildcard:   p.IsWildcard,
			SANSupport: p.IsSanEnable,
			MinDomains: max(p.MinSan, 1),
			MaxDomains: max(p.MaxSan, 1),
			MaxYears:   maxYears,
			RawPrices:  rawPrices,
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}

func (t *TheSSLStore) FetchPrice(ctx context.Context, code string) (map[string]any, error) {
	resp, err := t.client.PostJSON(ctx, "/product/query", map[string]any{
		"AuthRequest": t.auth(),
		"ProductCode": code,
	})
	if err != nil {
		return nil, err
	}
	if err := theSSLStoreError(resp); err != nil {
		return nil, err
	}

	var products []struct {
		ProductCode string `json:"ProductCode"`
		PricingInfo []struct {
			NumberOfMonths int     `json:"NumberOfMonths"`
			Price          float64 `json:"Price"`
		} `json:"PricingInfo"`
	}
	if err := json.Unmarshal(resp.RawBody, &products); err != nil {
		return nil, fmt.Errorf("thesslstore: decode price table: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("thesslstore: unknown product %s%w", code, model.ErrProductNotFound)
	}

	rawPrices := map[string]any{}
	for _, tier := range products[0].PricingInfo {
		rawPrices[fmt.Sprintf("price%03d", tier.NumberOfMonths)] = tier.Price
	}
	return rawPrices, nil
}

func (t *TheSSLStore) ValidateOrder(ctx context.Context, req OrderRequest) error {
	resp, err := t.client.PostJSON(ctx, "/csr/decode", map[string]any{
		"AuthRequest": t.auth(),
		"ProductCode": req.ProductCode,
		"CSR":         req.CSR,
	})
	if err != nil {
		return err
	}
	return theSSLStoreError(resp)
}

func (t *TheSSLStore) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	resp, err := t.client.PostJSON(ctx, "/order/neworder", map[string]any{
		"AuthRequest":         t.auth(),
		"ProductCode":         req.ProductCode,
		"CSR":                 req.CSR,
		"ValidityPeriod":      req.Years * 12,
		"DomainName":          req.Domain,
		"DNSNames":            req.SANs,
		"ApproverEmail":       req.DCVEmail,
		"DVAuthMethod":        strings.ToUpper(req.DCVMethod),
		"AdminContact":        req.Contact,
		"WebServerType":       "Other",
		"isCUOrder":           false,
		"isRenewalOrder":      false,
		"isTrialOrder":        false,
	})
	if err != nil {
		return OrderResult{}, err
	}
	if err := theSSLStoreError(resp); err != nil {
		return OrderResult{}, err
	}

	var body struct {
		TheSSLStoreOrderID string `json:"TheSSLStoreOrderID"`
		OrderStatus        struct {
			MajorStatus string `json:"MajorStatus"`
		} `json:"OrderStatus"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return OrderResult{}, fmt.Errorf("thesslstore: decode order result: %w", err)
	}
	return OrderResult{
		RemoteID: body.TheSSLStoreOrderID,
		Status:   theSSLStoreStatus(body.OrderStatus.MajorStatus, ""),
	}, nil
}

func (t *TheSSLStore) OrderStatus(ctx context.Context, remoteID string) (StatusResult, error) {
	resp, err := t.client.PostJSON(ctx, "/order/status", map[string]any{
		"AuthRequest":        t.auth(),
		"TheSSLStoreOrderID": remoteID,
	})
	if err != nil {
		return StatusResult{}, err
	}
	if err := theSSLStoreError(resp); err != nil {
		return StatusResult{}, err
	}

	var body struct {
		MajorStatus       string   `json:"MajorStatus"`
		MinorStatus       string   `json:"MinorStatus"`
		CertificateStartDate string `json:"CertificateStartDateInUTC"`
		CertificateEndDate   string `json:"CertificateEndDateInUTC"`
		CommonName        string   `json:"CommonName"`
		DNSNames          string   `json:"DNSNames"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return StatusResult{}, fmt.Errorf("thesslstore: decode order status: %w", err)
	}

	result := StatusResult{
		Status:    theSSLStoreStatus(body.MajorStatus, body.MinorStatus),
		ValidFrom: theSSLStoreTime(body.CertificateStartDate),
		ValidTo:   theSSLStoreTime(body.CertificateEndDate),
	}
	for _, domain := range strings.Split(body.CommonName+","+body.DNSNames, ",") {
		if domain = strings.TrimSpace(domain); domain != "" {
			result.Domains = append(result.Domains, domain)
		}
	}
	return result, nil
}

func (t *TheSSLStore) Download(ctx context.Context, remoteID string) (CertificateBundle, error) {
	resp, err := t.client.PostJSON(ctx, "/order/download", map[string]any{
		"AuthRequest":        t.auth(),
		"TheSSLStoreOrderID": remoteID,
	})
	if err != nil {
		return CertificateBundle{}, err
	}
	if err := theSSLStoreError(resp); err != nil {
		return CertificateBundle{}, err
	}

	var body struct {
		Certificates []struct {
			FileName string `json:"FileName"`
			Content  string `json:"FileContentInBase64"`
		} `json:"Certificates"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return CertificateBundle{}, fmt.Errorf("thesslstore: decode download: %w", err)
	}

	bundle := CertificateBundle{}
	for _, cert := range body.Certificates {
		if strings.Contains(strings.ToLower(cert.FileName), "ca") {
			bundle.CACertificate = cert.Content
		} else {
			bundle.Certificate = cert.Content
		}
	}
	return bundle, nil
}

func (t *TheSSLStore) Reissue(ctx context.Context, remoteID string, csr string) error {
	resp, err := t.client.PostJSON(ctx, "/order/reissue", map[string]any{
		"AuthRequest":        t.auth(),
		"TheSSLStoreOrderID": remoteID,
		"CSR":                csr,
	})
	if err != nil {
		return err
	}
	return theSSLStoreError(resp)
}

func (t *TheSSLStore) Revoke(ctx context.Context, remoteID string, reason string) error {
	resp, err := t.client.PostJSON(ctx, "/order/refundrequest", map[string]any{
		"AuthRequest":        t.auth(),
		"TheSSLStoreOrderID": remoteID,
		"RefundReason":       reason,
	})
	if err != nil {
		return err
	}
	return theSSLStoreError(resp)
}

func (t *TheSSLStore) Cancel(ctx context.Context, remoteID string) error {
	return t.Revoke(ctx, remoteID, "cancelled by reseller")
}

func (t *TheSSLStore) DCVEmails(ctx context.Context, domain string) ([]string, error) {
	resp, err := t.client.PostJSON(ctx, "/order/approverlist", map[string]any{
		"AuthRequest": t.auth(),
		"DomainName":  domain,
	})
	if err != nil {
		return nil, err
	}
	if err := theSSLStoreError(resp); err != nil {
		return nil, err
	}

	var body struct {
		ApproverEmailList []string `json:"ApproverEmailList"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return nil, fmt.Errorf("thesslstore: decode approver list: %w", err)
	}
	return body.ApproverEmailList, nil
}

func (t *TheSSLStore) ResendDCV(ctx context.Context, remoteID string) error {
	resp, err := t.client.PostJSON(ctx, "/order/resend", map[string]any{
		"AuthRequest":        t.auth(),
		"TheSSLStoreOrderID": remoteID,
		"ResendEmailType":    "InviteEmail",
	})
	if err != nil {
		return err
	}
	return theSSLStoreError(resp)
}

func theSSLStoreError(resp Response) error {
	var result theSSLStoreResult
	if json.Unmarshal(resp.RawBody, &result) == nil && result.AuthResponse.IsError {
		return fmt.Errorf("thesslstore: %s%w", strings.Join(result.AuthResponse.Message, "; "), model.ErrProviderError)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("thesslstore: status %d: %s%w", resp.StatusCode, string(resp.RawBody), model.ErrProviderError)
	}
	return nil
}

func theSSLStoreStatus(major, minor string) model.OrderStatus {
	switch strings.ToLower(major) {
	case "active":
		if strings.EqualFold(minor, "expired") {
			return model.OrderStatusExpired
		}
		return model.OrderStatusCompleted
	case "pending":
		return model.OrderStatusPending
	case "initial":
		return model.OrderStatusPending
	case "cancelled", "canceled":
		return model.OrderStatusCancelled
	case "revoked":
		return model.OrderStatusRevoked
	case "expired":
		return model.OrderStatusExpired
	default:
		return model.OrderStatusProcessing
	}
}

func theSSLStoreValidation(validationType string) model.ValidationLevel {
	switch strings.ToUpper(validationType) {
	case "EV":
		return model.ValidationEV
	case "OV":
		return model.ValidationOV
	default:
		return model.ValidationDV
	}
}

func theSSLStoreClass(p theSSLStoreProduct) model.ProductClass {
	switch {
	case p.IsCodeSigning:
		return model.ProductClassCodeSigning
	case p.IsWildcard:
		return model.ProductClassWildcard
	case p.IsSanEnable && p.MaxSan > 1:
		return model.ProductClassMultiDomain
	default:
		return model.ProductClassSSL
	}
}

func theSSLStoreTime(value string) int64 {
	if value == "" {
		return 0
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "1/2/2006 3:04:05 PM"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Unix()
		}
	}
	return 0
}
