package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

const (
	GoGetSSLSlug = "gogetssl"

	goGetSSLLiveURL    = "https://my.gogetssl.com/api"
	goGetSSLSandboxURL = "https://sandbox.gogetssl.com/api"
)

func init() {
	Register(GoGetSSLSlug, NewGoGetSSL)
}

// GoGetSSL is a full-tier backend. Every call authenticates with an account
// auth key passed as a query parameter, which the base client masks in logs.
type GoGetSSL struct {
	unsupported
	client  *Client
	authKey string
}

var goGetSSLOps = map[Operation]bool{
	OpTestConnection:  true,
	OpBalance:         true,
	OpFetchCatalog:    true,
	OpFetchPrice:      true,
	OpValidateOrder:   true,
	OpPlaceOrder:      true,
	OpOrderStatus:     true,
	OpDownload:        true,
	OpReissue:         true,
	OpRenew:           true,
	OpRevoke:          true,
	OpCancel:          true,
	OpDCVEmails:       true,
	OpResendDCV:       true,
	OpChangeDCVMethod: true,
}

func NewGoGetSSL(settings Settings) (Adapter, error) {
	authKey := settings.Credentials["auth_key"]
	if authKey == "" {
		return nil, fmt.Errorf("gogetssl: auth_key credential is required%w", model.ErrInvalidParameter)
	}

	baseURL := goGetSSLLiveURL
	if settings.Mode == model.ProviderModeSandbox {
		baseURL = goGetSSLSandboxURL
	}
	if configured, ok := settings.Config["api_url"].(string); ok && configured != "" {
		baseURL = configured
	}

	return &GoGetSSL{
		unsupported: unsupported{slug: GoGetSSLSlug},
		client:      NewClient(baseURL, WithRateLimit(5)),
		authKey:     authKey,
	}, nil
}

func (g *GoGetSSL) Slug() string             { return GoGetSSLSlug }
func (g *GoGetSSL) Name() string             { return "GoGetSSL" }
func (g *GoGetSSL) Tier() model.ProviderTier { return model.ProviderTierFull }

func (g *GoGetSSL) Supports(op Operation) bool {
	return goGetSSLOps[op]
}

func (g *GoGetSSL) TestConnection(ctx context.Context) error {
	resp, err := g.client.Get(ctx, "/account/", g.query(nil))
	if err != nil {
		return err
	}
	if err := goGetSSLError(resp); err != nil {
		return err
	}
	return nil
}

func (g *GoGetSSL) Balance(ctx context.Context) (decimal.Decimal, error) {
	resp, err := g.client.Get(ctx, "/account/balance/", g.query(nil))
	if err != nil {
		return decimal.Zero, err
	}
	if err := goGetSSLError(resp); err != nil {
		return decimal.Zero, err
	}

	var body struct {
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return decimal.Zero, fmt.Errorf("gogetssl: decode balance: %w", err)
	}
	return decimal.NewFromString(body.Balance)
}

func (g *GoGetSSL) FetchCatalog(ctx context.Context) ([]ProductDescriptor, error) {
	resp, err := g.client.Get(ctx, "/products/ssl/", g.query(nil))
	if err != nil {
		return nil, err
	}
	if err := goGetSSLError(resp); err != nil {
		return nil, err
	}

	var body struct {
		Products []struct {
			ID          json.Number    `json:"id"`
			Name        string         `json:"product"`
			Brand       string         `json:"brand"`
			Type        string         `json:"product_type"`
			Wildcard    string         `json:"wildcard_enabled"`
			MultiDomain string         `json:"multi_domain_enabled"`
			MaxDomains  int            `json:"max_domains"`
			MaxYears    int            `json:"max_period"`
			Prices      map[string]any `json:"prices"`
		} `json:"products"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return nil, fmt.Errorf("gogetssl: decode product list: %w", err)
	}

	descriptors := make([]ProductDescriptor, 0, len(body.Products))
	for _, p := range body.Products {
		descriptor := ProductDescriptor{
			Code:       p.ID.String(),
			Name:       p.Name,
			Vendor:     p.Brand,
			Validation: goGetSSLValidation(p.Name),
			Class:      goGetSSLClass(p.Type, p.Wildcard == "1"),
			Wildcard:   p.Wildcard == "1",
			SANSupport: p.MultiDomain == "1",
			MinDomains: 1,
			MaxDomains: p.MaxDomains,
			MaxYears:   p.MaxYears,
			RawPrices:  p.Prices,
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}

func (g *GoGetSSL) FetchPrice(ctx context.Context, code string) (map[string]any, error) {
	resp, err := g.client.Get(ctx, "/products/price/"+url.PathEscape(code), g.query(nil))
	if err != nil {
		return nil, err
	}
	if err := goGetSSLError(resp); err != nil {
		return nil, err
	}

	var body struct {
		Prices map[string]any `json:"prices"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return nil, fmt.Errorf("gogetssl: decode price table: %w", err)
	}
	return body.Prices, nil
}

func (g *GoGetSSL) ValidateOrder(ctx context.Context, req OrderRequest) error {
	resp, err := g.client.PostForm(ctx, "/tools/csr/decode/?"+g.query(nil).Encode(), url.Values{"csr": {req.CSR}})
	if err != nil {
		return err
	}
	return goGetSSLError(resp)
}

func (g *GoGetSSL) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	form := url.Values{
		"product_id":      {req.ProductCode},
		"csr":             {req.CSR},
		"period":          {fmt.Sprintf("%d", req.Years*12)},
		"dcv_method":      {req.DCVMethod},
		"approver_email":  {req.DCVEmail},
		"server_count":    {"-1"},
		"webserver_type":  {"-1"},
		"dns_names":       {strings.Join(req.SANs, ",")},
		"admin_firstname": {req.Contact["first_name"]},
		"admin_lastname":  {req.Contact["last_name"]},
		"admin_email":     {req.Contact["email"]},
		"admin_phone":     {req.Contact["phone"]},
	}

	resp, err := g.client.PostForm(ctx, "/orders/add_ssl_order/?"+g.query(nil).Encode(), form)
	if err != nil {
		return OrderResult{}, err
	}
	if err := goGetSSLError(resp); err != nil {
		return OrderResult{}, err
	}

	var body struct {
		OrderID     json.Number `json:"order_id"`
		OrderStatus string      `json:"order_status"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return OrderResult{}, fmt.Errorf("gogetssl: decode order result: %w", err)
	}
	return OrderResult{
		RemoteID: body.OrderID.String(),
		Status:   goGetSSLStatus(body.OrderStatus),
	}, nil
}

func (g *GoGetSSL) OrderStatus(ctx context.Context, remoteID string) (StatusResult, error) {
	resp, err := g.client.Get(ctx, "/orders/status/"+url.PathEscape(remoteID), g.query(nil))
	if err != nil {
		return StatusResult{}, err
	}
	if err := goGetSSLError(resp); err != nil {
		return StatusResult{}, err
	}

	var body struct {
		Status     string `json:"status"`
		CrtCode    string `json:"crt_code"`
		CaCode     string `json:"ca_code"`
		ValidFrom  string `json:"valid_from"`
		ValidTill  string `json:"valid_till"`
		Domains    string `json:"domains"`
		SanDomains string `json:"san_domains"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return StatusResult{}, fmt.Errorf("gogetssl: decode order status: %w", err)
	}

	result := StatusResult{
		Status:        goGetSSLStatus(body.Status),
		Certificate:   body.CrtCode,
		CACertificate: body.CaCode,
		ValidFrom:     goGetSSLTime(body.ValidFrom),
		ValidTo:       goGetSSLTime(body.ValidTill),
	}
	for _, domain := range strings.Split(body.Domains+","+body.SanDomains, ",") {
		if domain = strings.TrimSpace(domain); domain != "" {
			result.Domains = append(result.Domains, domain)
		}
	}
	return result, nil
}

func (g *GoGetSSL) Download(ctx context.Context, remoteID string) (CertificateBundle, error) {
	status, err := g.OrderStatus(ctx, remoteID)
	if err != nil {
		return CertificateBundle{}, err
	}
	return CertificateBundle{
		Certificate:   status.Certificate,
		CACertificate: status.CACertificate,
	}, nil
}

func (g *GoGetSSL) Reissue(ctx context.Context, remoteID string, csr string) error {
	resp, err := g.client.PostForm(ctx, "/orders/ssl/reissue/"+url.PathEscape(remoteID)+"?"+g.query(nil).Encode(), url.Values{"csr": {csr}})
	if err != nil {
		return err
	}
	return goGetSSLError(resp)
}

func (g *GoGetSSL) Renew(ctx context.Context, remoteID string) (OrderResult, error) {
	resp, err := g.client.PostForm(ctx, "/orders/add_ssl_renew_order/?"+g.query(nil).Encode(), url.Values{"order_id": {remoteID}})
	if err != nil {
		return OrderResult{}, err
	}
	if err := goGetSSLError(resp); err != nil {
		return OrderResult{}, err
	}

	var body struct {
		OrderID json.Number `json:"order_id"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return OrderResult{}, fmt.Errorf("gogetssl: decode renew result: %w", err)
	}
	return OrderResult{RemoteID: body.OrderID.String(), Status: model.OrderStatusPending}, nil
}

func (g *GoGetSSL) Revoke(ctx context.Context, remoteID string, reason string) error {
	resp, err := g.client.PostForm(ctx, "/orders/cancel_ssl_order/?"+g.query(nil).Encode(), url.Values{
		"order_id": {remoteID},
		"reason":   {reason},
	})
	if err != nil {
		return err
	}
	return goGetSSLError(resp)
}

func (g *GoGetSSL) Cancel(ctx context.Context, remoteID string) error {
	return g.Revoke(ctx, remoteID, "cancelled by reseller")
}

func (g *GoGetSSL) DCVEmails(ctx context.Context, domain string) ([]string, error) {
	resp, err := g.client.Get(ctx, "/tools/domain/emails/", g.query(url.Values{"domain": {domain}}))
	if err != nil {
		return nil, err
	}
	if err := goGetSSLError(resp); err != nil {
		return nil, err
	}

	var body struct {
		ComodoEmails []string `json:"ComodoApprovalEmails"`
		GeneralGroup []string `json:"GeotrustApprovalEmails"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return nil, fmt.Errorf("gogetssl: decode approver emails: %w", err)
	}

	emails := append([]string{}, body.ComodoEmails...)
	emails = append(emails, body.GeneralGroup...)
	return emails, nil
}

func (g *GoGetSSL) ResendDCV(ctx context.Context, remoteID string) error {
	resp, err := g.client.Get(ctx, "/orders/ssl/resend_validation_email/"+url.PathEscape(remoteID), g.query(nil))
	if err != nil {
		return err
	}
	return goGetSSLError(resp)
}

func (g *GoGetSSL) ChangeDCVMethod(ctx context.Context, remoteID string, method string) error {
	resp, err := g.client.PostForm(ctx, "/orders/ssl/change_dcv_method/"+url.PathEscape(remoteID)+"?"+g.query(nil).Encode(), url.Values{"new_method": {method}})
	if err != nil {
		return err
	}
	return goGetSSLError(resp)
}

func (g *GoGetSSL) query(extra url.Values) url.Values {
	query := url.Values{"auth_key": {g.authKey}}
	for name, values := range extra {
		query[name] = values
	}
	return query
}

// goGetSSLError turns the API's {"error": true, "description": ...} body or a
// 4xx status into a structured provider error. The response reached us, so it
// is a caller error, never retried.
func goGetSSLError(resp Response) error {
	if resp.Parsed != nil {
		if isErr, ok := resp.Parsed["error"].(bool); ok && isErr {
			description, _ := resp.Parsed["description"].(string)
			return fmt.Errorf("gogetssl: %s%w", description, model.ErrProviderError)
		}
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("gogetssl: status %d: %s%w", resp.StatusCode, string(resp.RawBody), model.ErrProviderError)
	}
	return nil
}

func goGetSSLStatus(remote string) model.OrderStatus {
	switch strings.ToLower(remote) {
	case "active", "issued":
		return model.OrderStatusCompleted
	case "processing":
		return model.OrderStatusProcessing
	case "rejected":
		return model.OrderStatusRejected
	case "cancelled", "canceled":
		return model.OrderStatusCancelled
	case "revoked":
		return model.OrderStatusRevoked
	case "expired":
		return model.OrderStatusExpired
	default:
		return model.OrderStatusPending
	}
}

func goGetSSLValidation(name string) model.ValidationLevel {
	lowered := strings.ToLower(name)
	switch {
	case strings.Contains(lowered, " ev") || strings.Contains(lowered, "extended"):
		return model.ValidationEV
	case strings.Contains(lowered, " ov") || strings.Contains(lowered, "organization"):
		return model.ValidationOV
	default:
		return model.ValidationDV
	}
}

func goGetSSLClass(productType string, wildcard bool) model.ProductClass {
	switch strings.ToLower(productType) {
	case "multi_domain", "ucc":
		return model.ProductClassMultiDomain
	case "code_signing":
		return model.ProductClassCodeSigning
	case "email", "smime":
		return model.ProductClassEmail
	}
	if wildcard {
		return model.ProductClassWildcard
	}
	return model.ProductClassSSL
}

func goGetSSLTime(value string) int64 {
	if value == "" {
		return 0
	}
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		if parsed, err = time.Parse("2006-01-02", value); err != nil {
			return 0
		}
	}
	return parsed.Unix()
}
