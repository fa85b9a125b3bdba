package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/forkpoint/ordering-api/pkg/money"
)

// DefaultVariantKey is the variant slot used in the identity key when no
// variant is selected.
const DefaultVariantKey = "default"

// KeySeparator joins the identity key segments.
const KeySeparator = "::"

// ModifierSelection records one chosen add-on on a cart line, with its price
// resolved at add time.
type ModifierSelection struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	UnitPrice money.Amount `json:"unit_price"`
	Quantity  int          `json:"quantity"`
}

// CustomizationSelection records the single chosen option of a customization
// group on a cart line.
type CustomizationSelection struct {
	GroupID     string       `json:"group_id"`
	GroupName   string       `json:"group_name"`
	OptionID    string       `json:"option_id"`
	OptionName  string       `json:"option_name"`
	OptionPrice money.Amount `json:"option_price"`
}

// CartItem is one line of the cart: a quantity of a specific customized
// catalog item or deal from a specific branch. Items are mutated in place
// only through quantity changes; every other attribute is fixed at add time.
type CartItem struct {
	CatalogID   string `json:"catalog_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	UnitPrice money.Amount `json:"unit_price"`
	Quantity  int          `json:"quantity"`

	VariantID    string        `json:"variant_id,omitempty"`
	VariantName  string        `json:"variant_name,omitempty"`
	VariantPrice *money.Amount `json:"variant_price,omitempty"`

	Modifiers      []ModifierSelection      `json:"modifiers,omitempty"`
	Customizations []CustomizationSelection `json:"customizations,omitempty"`

	Discount *Discount `json:"discount,omitempty"`
	// MaxAllowedDiscount caps this line's discount per unit. Zero means no cap.
	MaxAllowedDiscount money.Amount `json:"max_allowed_discount"`

	BranchID   uuid.UUID `json:"branch_id"`
	BranchName string    `json:"branch_name"`
}

// Key returns the identity key that decides whether two additions merge into
// one line: catalog id, selected variant (or "default"), and owning branch.
func (i *CartItem) Key() string {
	variant := i.VariantID
	if variant == "" {
		variant = DefaultVariantKey
	}
	return strings.Join([]string{i.CatalogID, variant, i.BranchID.String()}, KeySeparator)
}

// MatchesKey reports whether the item is addressed by the given key, which
// may be either the bare catalog id or the full identity key.
func (i *CartItem) MatchesKey(key string) bool {
	return i.CatalogID == key || i.Key() == key
}

// UnitTotal is the per-unit price of the line: base price plus selected
// modifiers and customization options.
func (i *CartItem) UnitTotal() decimal.Decimal {
	total := i.UnitPrice.Decimal
	for _, m := range i.Modifiers {
		total = total.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
	}
	for _, c := range i.Customizations {
		total = total.Add(c.OptionPrice.Decimal)
	}
	return total
}

// LineTotal is the quantity-weighted total of the line, before discounts,
// fees and tax.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitTotal().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// BranchSummary aggregates one branch's share of the cart, valued before
// discount, tax, service and delivery adjustments.
type BranchSummary struct {
	BranchID      uuid.UUID       `json:"branch_id"`
	BranchName    string          `json:"branch_name"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemCount     int             `json:"item_count"`
}
