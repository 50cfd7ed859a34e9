package model

type ProviderTier string
type ProviderMode string

const (
	// ProviderTierFull providers expose the whole certificate lifecycle.
	ProviderTierFull = ProviderTier("full")
	// ProviderTierLimited providers only place orders; lifecycle management
	// is delegated to the provider's own portal via a management link.
	ProviderTierLimited = ProviderTier("limited")

	ProviderModeLive    = ProviderMode("live")
	ProviderModeSandbox = ProviderMode("sandbox")
)

// AlertThreshold is the number of consecutive sync failures after which a
// provider is flagged with a standing alert condition. The provider is not
// disabled automatically.
const AlertThreshold = 3

type Provider struct {
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Tier        ProviderTier `json:"tier"`
	Enabled     bool         `json:"enabled"`
	Mode        ProviderMode `json:"mode"`
	SortOrder   int          `json:"sort_order"`
	Credentials string       `json:"credentials"` // encrypted envelope, never plaintext
	Config      map[string]any `json:"config,omitempty"`

	LastSyncAt int64 `json:"last_sync_at"`
	LastTestAt int64 `json:"last_test_at"`
	ErrorCount int   `json:"error_count"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Alerting reports whether the provider has crossed the consecutive failure
// threshold.
func (p Provider) Alerting() bool {
	return p.ErrorCount >= AlertThreshold
}
