package request

import (
	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

// AddItemRequest adds a catalog entry to the cart. The item document must
// carry an explicit "kind" tag ("menuItem" or "deal"). VariantID optionally
// selects one of a menu item's variations; Modifiers maps modifier ids to
// quantities and Customizations maps group ids to the chosen option id, both
// resolved against the item's own definitions.
type AddItemRequest struct {
	Item           entity.CatalogEntry `json:"item" binding:"required"`
	VariantID      string              `json:"variant_id,omitempty"`
	Modifiers      map[string]int      `json:"modifiers,omitempty"`
	Customizations map[string]string   `json:"customizations,omitempty"`
}

// UpdateQuantityRequest sets a cart line's quantity. Zero or negative values
// remove the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartContextRequest updates the session context collected along the
// checkout flow. Nil fields are left unchanged.
type CartContextRequest struct {
	ServiceType         *enum.ServiceType       `json:"service_type,omitempty"`
	SplitType           *enum.SplitType         `json:"split_type,omitempty"`
	Delivery            *entity.DeliveryDetails `json:"delivery,omitempty"`
	Takeaway            *entity.TakeawayDetails `json:"takeaway,omitempty"`
	SpecialInstructions *string                 `json:"special_instructions,omitempty"`
	AllergenIDs         *[]string               `json:"allergen_ids,omitempty"`
}
