package model

type OrderStatus string

const (
	OrderStatusAwaitingConfig = OrderStatus("Awaiting Configuration")
	OrderStatusPending        = OrderStatus("Pending")
	OrderStatusProcessing     = OrderStatus("Processing")
	OrderStatusCompleted      = OrderStatus("Completed")
	OrderStatusRejected       = OrderStatus("Rejected")
	OrderStatusCancelled      = OrderStatus("Cancelled")
	OrderStatusRevoked        = OrderStatus("Revoked")
	OrderStatusExpired        = OrderStatus("Expired")
	OrderStatusSuspended      = OrderStatus("Suspended")
)

// IsInFlight reports whether the order still awaits a terminal answer from
// the provider. Status sync only polls in-flight orders.
func (s OrderStatus) IsInFlight() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusRejected, OrderStatusCancelled, OrderStatusRevoked, OrderStatusExpired:
		return true
	}
	return false
}

// InFlightOrderStatuses lists the statuses worth polling a provider about.
func InFlightOrderStatuses() []OrderStatus {
	statuses := []OrderStatus{}
	for _, s := range allOrderStatuses {
		if s.IsInFlight() {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

var allOrderStatuses = []OrderStatus{
	OrderStatusAwaitingConfig,
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusRejected,
	OrderStatusCancelled,
	OrderStatusRevoked,
	OrderStatusExpired,
	OrderStatusSuspended,
}

type OrderSource string

const (
	OrderSourceCurrent = OrderSource("current")
	OrderSourceLegacyA = OrderSource("legacy_a")
	OrderSourceLegacyB = OrderSource("legacy_b")
)

// Order ties one certificate lifecycle to a hosted service. Exactly one row
// in the current table is authoritative per service id; legacy tables may
// hold an unclaimed historical record for the same service id, exposed
// read-only with Source annotated.
type Order struct {
	ID            string      `json:"id"`
	OwnerID       int64       `json:"owner_id"`
	ServiceID     int64       `json:"service_id"`
	ProviderSlug  string      `json:"provider_slug"`
	RemoteID      string      `json:"remote_id"`
	CanonicalID   string      `json:"canonical_id,omitempty"`
	ProductCode   string      `json:"product_code"`
	Domain        string      `json:"domain"`
	Status        OrderStatus `json:"status"`
	ConfigData    []byte      `json:"config_data,omitempty"`

	// Legacy linkage, populated only for records claimed during migration.
	LegacyTable  string `json:"legacy_table,omitempty"`
	LegacyModule string `json:"legacy_module,omitempty"`
	LegacyID     int64  `json:"legacy_id,omitempty"`

	Source OrderSource `json:"source,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
