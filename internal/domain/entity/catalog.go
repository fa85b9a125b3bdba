package entity

import (
	"encoding/json"
	"fmt"

	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/pkg/money"
)

// Variant is a mutually exclusive size/type choice for a menu item.
// Selecting a variant overrides the item's base price.
type Variant struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Price           money.Amount  `json:"price"`
	DiscountedPrice *money.Amount `json:"discountedPrice,omitempty"`
}

// Modifier is an optional add-on priced per unit, selected with an
// independent quantity.
type Modifier struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

// CustomizationOption is one choice inside a customization group.
type CustomizationOption struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

// Customization is a named choice group where exactly one option may be
// selected.
type Customization struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Options []CustomizationOption `json:"options"`
}

// MenuItem is a catalog item offered by a branch.
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	Price          money.Amount    `json:"price"`
	Variations     []Variant       `json:"variations,omitempty"`
	Modifiers      []Modifier      `json:"modifiers,omitempty"`
	Customizations []Customization `json:"customizations,omitempty"`
	Discount       *Discount       `json:"discount,omitempty"`
	// MaxAllowedAmount caps this item's discount per unit. Zero means no cap.
	MaxAllowedAmount money.Amount `json:"maxAllowedAmount"`
}

// DealComponent names one menu item bundled into a deal.
type DealComponent struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity,omitempty"`
}

// Deal is a fixed-price bundle of menu items.
type Deal struct {
	DealID       string          `json:"dealId"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Price        money.Amount    `json:"price"`
	Discount     *Discount       `json:"discount,omitempty"`
	MenuItems    []DealComponent `json:"menuItems,omitempty"`
	SubMenuItems []DealComponent `json:"subMenuItems,omitempty"`
}

// CatalogEntry is the tagged union of the two catalog payload shapes.
// Exactly one of MenuItem or Deal is set, according to Kind.
type CatalogEntry struct {
	Kind     enum.CatalogKind
	MenuItem *MenuItem
	Deal     *Deal
}

// NewMenuItemEntry wraps a menu item as a catalog entry.
func NewMenuItemEntry(item MenuItem) CatalogEntry {
	return CatalogEntry{Kind: enum.CatalogKindMenuItem, MenuItem: &item}
}

// NewDealEntry wraps a deal as a catalog entry.
func NewDealEntry(deal Deal) CatalogEntry {
	return CatalogEntry{Kind: enum.CatalogKindDeal, Deal: &deal}
}

// UnmarshalJSON decodes a catalog payload by its explicit "kind" tag.
// Payloads without a recognized tag are rejected.
func (e *CatalogEntry) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Kind enum.CatalogKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("catalog entry missing kind tag: %w", err)
	}

	switch envelope.Kind {
	case enum.CatalogKindMenuItem:
		var item MenuItem
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*e = CatalogEntry{Kind: envelope.Kind, MenuItem: &item}
	case enum.CatalogKindDeal:
		var deal Deal
		if err := json.Unmarshal(data, &deal); err != nil {
			return err
		}
		*e = CatalogEntry{Kind: envelope.Kind, Deal: &deal}
	default:
		return fmt.Errorf("catalog entry has unsupported kind %q", envelope.Kind)
	}
	return nil
}

// MarshalJSON renders the active arm with its kind tag.
func (e CatalogEntry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case enum.CatalogKindMenuItem:
		if e.MenuItem == nil {
			return nil, fmt.Errorf("menu item entry has no payload")
		}
		type tagged struct {
			Kind enum.CatalogKind `json:"kind"`
			MenuItem
		}
		return json.Marshal(tagged{Kind: e.Kind, MenuItem: *e.MenuItem})
	case enum.CatalogKindDeal:
		if e.Deal == nil {
			return nil, fmt.Errorf("deal entry has no payload")
		}
		type tagged struct {
			Kind enum.CatalogKind `json:"kind"`
			Deal
		}
		return json.Marshal(tagged{Kind: e.Kind, Deal: *e.Deal})
	}
	return nil, fmt.Errorf("catalog entry has unsupported kind %q", e.Kind)
}
