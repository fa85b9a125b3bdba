package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

// DeliveryDetails carries the drop-off information collected for a delivery
// order.
type DeliveryDetails struct {
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	ContactName string  `json:"contact_name,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// TakeawayDetails carries the pickup information collected for a takeaway
// order.
type TakeawayDetails struct {
	PickupTime  *time.Time `json:"pickup_time,omitempty"`
	ContactName string     `json:"contact_name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
}

// OrderPayloadModifier is a chosen add-on as the order service expects it.
type OrderPayloadModifier struct {
	ModifierID string `json:"modifier_id"`
	Quantity   int    `json:"quantity"`
}

// OrderPayloadCustomization is a chosen option as the order service expects it.
type OrderPayloadCustomization struct {
	CustomizationID string `json:"customization_id"`
	OptionID        string `json:"option_id"`
}

// OrderPayloadItem is one cart line translated for order submission.
type OrderPayloadItem struct {
	MenuItemID     string                      `json:"menu_item_id"`
	VariantID      string                      `json:"variant_id,omitempty"`
	Quantity       int                         `json:"quantity"`
	Modifiers      []OrderPayloadModifier      `json:"modifiers"`
	Customizations []OrderPayloadCustomization `json:"customizations"`
}

// OrderPayload is the document submitted to the external order service: the
// branch-scoped cart lines plus the priced totals in cents, split bills, and
// session context.
type OrderPayload struct {
	BranchID            uuid.UUID          `json:"branch_id"`
	ServiceType         enum.ServiceType   `json:"service_type"`
	Items               []OrderPayloadItem `json:"items"`
	SubtotalCents       int64              `json:"subtotal_cents"`
	DiscountCents       int64              `json:"discount_cents"`
	ServiceChargeCents  int64              `json:"service_charge_cents"`
	DeliveryChargeCents int64              `json:"delivery_charge_cents"`
	TaxCents            int64              `json:"tax_cents"`
	TotalCents          int64              `json:"total_cents"`
	Currency            string             `json:"currency"`
	SplitBills          []SplitShare       `json:"split_bills,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	AllergenIDs         []string           `json:"allergen_ids,omitempty"`
	Delivery            *DeliveryDetails   `json:"delivery,omitempty"`
	Takeaway            *TakeawayDetails   `json:"takeaway,omitempty"`
}
