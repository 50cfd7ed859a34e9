package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/goccy/go-json"
)

const (
	NicSRSSlug = "nicsrs"

	nicSRSLiveURL = "https://api.nicsrs.com/v1"
)

func init() {
	Register(NicSRSSlug, NewNicSRS)
}

// NicSRS is a limited-tier backend: it places orders and reports status, but
// reissue, revoke and download happen in the provider's own portal, reached
// via ManagementURL.
type NicSRS struct {
	unsupported
	client   *Client
	apiToken string
	panelURL string
}

var nicSRSOps = map[Operation]bool{
	OpTestConnection: true,
	OpFetchCatalog:   true,
	OpFetchPrice:     true,
	OpValidateOrder:  true,
	OpPlaceOrder:     true,
	OpOrderStatus:    true,
	OpManagementURL:  true,
}

func NewNicSRS(settings Settings) (Adapter, error) {
	apiToken := settings.Credentials["api_token"]
	if apiToken == "" {
		return nil, fmt.Errorf("nicsrs: api_token credential is required%w", model.ErrInvalidParameter)
	}

	panelURL := "https://panel.nicsrs.com/certificate"
	if configured, ok := settings.Config["panel_url"].(string); ok && configured != "" {
		panelURL = configured
	}

	baseURL := nicSRSLiveURL
	if configured, ok := settings.Config["api_url"].(string); ok && configured != "" {
		baseURL = configured
	}

	return &NicSRS{
		unsupported: unsupported{slug: NicSRSSlug},
		client:      NewClient(baseURL, WithRateLimit(3)),
		apiToken:    apiToken,
		panelURL:    panelURL,
	}, nil
}

func (n *NicSRS) Slug() string             { return NicSRSSlug }
func (n *NicSRS) Name() string             { return "NicSRS" }
func (n *NicSRS) Tier() model.ProviderTier { return model.ProviderTierLimited }

func (n *NicSRS) Supports(op Operation) bool {
	return nicSRSOps[op]
}

func (n *NicSRS) TestConnection(ctx context.Context) error {
	resp, err := n.client.Get(ctx, "/account/info", n.query(nil))
	if err != nil {
		return err
	}
	return nicSRSError(resp)
}

func (n *NicSRS) FetchCatalog(ctx context.Context) ([]ProductDescriptor, error) {
	resp, err := n.client.Get(ctx, "/product/list", n.query(nil))
	if err != nil {
		return nil, err
	}
	if err := nicSRSError(resp); err != nil {
		return nil, err
	}

	var body struct {
		Data []struct {
			ProductID  json.Number    `json:"pid"`
			Name       string         `json:"productName"`
			Brand      string         `json:"brand"`
			Validation string         `json:"validationType"`
			Wildcard   int            `json:"supportWildcard"`
			San        int            `json:"supportSan"`
			MaxDomain  int            `json:"maxDomain"`
			MaxYear    int            `json:"maxYear"`
			Prices     map[string]any `json:"priceList"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return nil, fmt.Errorf("nicsrs: decode product list: %w", err)
	}

	descriptors := make([]ProductDescriptor, 0, len(body.Data))
	for _, p := range body.Data {
		class := model.ProductClassSSL
		if p.Wildcard == 1 {
			class = model.ProductClassWildcard
		} else if p.San == 1 && p.MaxDomain > 1 {
			class = model.ProductClassMultiDomain
		}

		descriptors = append(descriptors, ProductDescriptor{
			Code:       p.ProductID.String(),
			Name:       p.Name,
			Vendor:     p.Brand,
			Validation: model.ValidationLevel(strings.ToLower(p.Validation)),
			Class:      class,
			Wildcard:   p.Wildcard == 1,
			SANSupport: p.San == 1,
			MinDomains: 1,
			MaxDomains: max(p.MaxDomain, 1),
			MaxYears:   p.MaxYear,
			RawPrices:  p.Prices,
		})
	}
	return descriptors, nil
}

func (n *NicSRS) FetchPrice(ctx context.Context, code string) (map[string]any, error) {
	resp, err := n.client.Get(ctx, "/product/price", n.query(url.Values{"pid": {code}}))
	if err != nil {
		return nil, err
	}
	if err := nicSRSError(resp); err != nil {
		return nil, err
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return nil, fmt.Errorf("nicsrs: decode price table: %w", err)
	}
	return body.Data, nil
}

func (n *NicSRS) ValidateOrder(ctx context.Context, req OrderRequest) error {
	if req.CSR == "" {
		return fmt.Errorf("nicsrs: csr is required%w", model.ErrInvalidParameter)
	}
	resp, err := n.client.PostForm(ctx, "/tool/csr-check?"+n.query(nil).Encode(), url.Values{"csr": {req.CSR}})
	if err != nil {
		return err
	}
	return nicSRSError(resp)
}

func (n *NicSRS) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	form := url.Values{
		"pid":           {req.ProductCode},
		"csr":           {req.CSR},
		"years":         {fmt.Sprintf("%d", req.Years)},
		"domain":        {req.Domain},
		"sans":          {strings.Join(req.SANs, ",")},
		"dcvMethod":     {req.DCVMethod},
		"approverEmail": {req.DCVEmail},
	}

	resp, err := n.client.PostForm(ctx, "/certificate/place?"+n.query(nil).Encode(), form)
	if err != nil {
		return OrderResult{}, err
	}
	if err := nicSRSError(resp); err != nil {
		return OrderResult{}, err
	}

	var body struct {
		Data struct {
			CertID json.Number `json:"certId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return OrderResult{}, fmt.Errorf("nicsrs: decode order result: %w", err)
	}
	return OrderResult{RemoteID: body.Data.CertID.String(), Status: model.OrderStatusPending}, nil
}

func (n *NicSRS) OrderStatus(ctx context.Context, remoteID string) (StatusResult, error) {
	resp, err := n.client.Get(ctx, "/certificate/detail", n.query(url.Values{"certId": {remoteID}}))
	if err != nil {
		return StatusResult{}, err
	}
	if err := nicSRSError(resp); err != nil {
		return StatusResult{}, err
	}

	var body struct {
		Data struct {
			Status    string   `json:"status"`
			BeginTime int64    `json:"beginTime"`
			EndTime   int64    `json:"endTime"`
			Domains   []string `json:"dcvList"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.RawBody, &body); err != nil {
		return StatusResult{}, fmt.Errorf("nicsrs: decode certificate detail: %w", err)
	}

	return StatusResult{
		Status:    nicSRSStatus(body.Data.Status),
		ValidFrom: body.Data.BeginTime,
		ValidTo:   body.Data.EndTime,
		Domains:   body.Data.Domains,
	}, nil
}

func (n *NicSRS) ManagementURL(ctx context.Context, remoteID string) (string, error) {
	return fmt.Sprintf("%s/%s", strings.TrimRight(n.panelURL, "/"), url.PathEscape(remoteID)), nil
}

func (n *NicSRS) query(extra url.Values) url.Values {
	query := url.Values{"token": {n.apiToken}}
	for name, values := range extra {
		query[name] = values
	}
	return query
}

func nicSRSError(resp Response) error {
	if resp.Parsed != nil {
		if code, ok := resp.Parsed["code"].(float64); ok && int(code) != 200 {
			message, _ := resp.Parsed["message"].(string)
			return fmt.Errorf("nicsrs: %s%w", message, model.ErrProviderError)
		}
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("nicsrs: status %d: %s%w", resp.StatusCode, string(resp.RawBody), model.ErrProviderError)
	}
	return nil
}

func nicSRSStatus(remote string) model.OrderStatus {
	switch strings.ToLower(remote) {
	case "complete", "issued", "active":
		return model.OrderStatusCompleted
	case "processing", "reviewing":
		return model.OrderStatusProcessing
	case "cancelled", "canceled":
		return model.OrderStatusCancelled
	case "revoked":
		return model.OrderStatusRevoked
	case "expired":
		return model.OrderStatusExpired
	case "rejected":
		return model.OrderStatusRejected
	default:
		return model.OrderStatusPending
	}
}
