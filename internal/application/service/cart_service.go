package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/pkg/money"
)

// CartService is one customer session's cart: an insertion-ordered collection
// of line items, possibly spanning several branches, plus the session context
// collected along the checkout flow.
//
// The service has no internal locking. All writes for a session must be
// serialized by the caller; SessionManager does this for the HTTP surface.
type CartService struct {
	sessionID string
	states    repository.CartStateRepository

	items []entity.CartItem

	activeBranchID   *uuid.UUID
	activeBranchName string
	serviceType      enum.ServiceType
	splitType        enum.SplitType

	delivery     *entity.DeliveryDetails
	takeaway     *entity.TakeawayDetails
	instructions string
	allergenIDs  []string
}

// VariantSelection is a variant choice resolved against a menu item's
// variations.
type VariantSelection struct {
	ID    string
	Name  string
	Price *money.Amount
}

// ItemSelections carries the caller's choices into AddItem: an optional
// variant id, modifier quantities keyed by modifier id, and customization
// options keyed by group id. All ids are resolved against the catalog entry's
// own definitions; choices that name nothing the item offers are dropped. A
// nil selections value adds the item plain.
type ItemSelections struct {
	VariantID      string
	Modifiers      map[string]int
	Customizations map[string]string
}

// NewCartService creates an empty cart for the session. The state repository
// may be nil for carts that should not outlive the process.
func NewCartService(sessionID string, states repository.CartStateRepository) *CartService {
	return &CartService{
		sessionID:   sessionID,
		states:      states,
		serviceType: enum.ServiceTypeDelivery,
		splitType:   enum.SplitTypeEquality,
	}
}

// Restore replaces the cart's state with the persisted snapshot for its
// session, if one exists. Snapshots with a different schema version are
// discarded rather than partially applied.
func (s *CartService) Restore(ctx context.Context) error {
	if s.states == nil {
		return nil
	}
	snap, err := s.states.Load(ctx, s.sessionID)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}
	if snap.SchemaVersion != entity.SnapshotSchemaVersion {
		log.Printf("cart %s: discarding snapshot with schema version %d", s.sessionID, snap.SchemaVersion)
		return nil
	}
	s.items = snap.Items
	s.activeBranchID = snap.ActiveBranchID
	s.activeBranchName = snap.ActiveBranchName
	s.serviceType = snap.ServiceType
	s.splitType = snap.SplitType
	s.delivery = snap.Delivery
	s.takeaway = snap.Takeaway
	s.instructions = snap.SpecialInstructions
	s.allergenIDs = snap.AllergenIDs
	return nil
}

// SessionID returns the session this cart belongs to.
func (s *CartService) SessionID() string {
	return s.sessionID
}

// SetActiveBranch makes the branch the target of subsequent additions. The
// first add adopts the selected branch as the cart's home branch; later adds
// from other branches are still accepted.
func (s *CartService) SetActiveBranch(ctx context.Context, branch *entity.Branch) {
	if branch == nil {
		s.activeBranchID = nil
		s.activeBranchName = ""
	} else {
		id := branch.ID
		s.activeBranchID = &id
		s.activeBranchName = branch.Name
	}
	s.persist(ctx)
}

// ActiveBranchID returns the currently selected branch, nil when none is set.
func (s *CartService) ActiveBranchID() *uuid.UUID {
	return s.activeBranchID
}

// AddItem resolves the catalog entry into a cart line and either merges it
// into an existing line with the same identity key (quantity +1) or appends
// a new line with quantity 1. Without an active branch the call logs and
// leaves the cart unchanged.
func (s *CartService) AddItem(ctx context.Context, entry entity.CatalogEntry, sel *ItemSelections) {
	if s.activeBranchID == nil {
		log.Printf("cart %s: add ignored, no active branch selected", s.sessionID)
		return
	}

	var item entity.CartItem
	switch entry.Kind {
	case enum.CatalogKindMenuItem:
		if entry.MenuItem == nil {
			log.Printf("cart %s: add ignored, menu item entry has no payload", s.sessionID)
			return
		}
		line, ok := s.lineFromMenuItem(entry.MenuItem, sel)
		if !ok {
			log.Printf("cart %s: add ignored, unknown variant %q for item %s", s.sessionID, sel.VariantID, entry.MenuItem.ID)
			return
		}
		item = line
	case enum.CatalogKindDeal:
		if entry.Deal == nil {
			log.Printf("cart %s: add ignored, deal entry has no payload", s.sessionID)
			return
		}
		item = s.lineFromDeal(entry.Deal)
	default:
		log.Printf("cart %s: add ignored, unsupported catalog kind %q", s.sessionID, entry.Kind)
		return
	}

	key := item.Key()
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	item.Quantity = 1
	s.items = append(s.items, item)
	s.persist(ctx)
}

// lineFromMenuItem builds a cart line from a menu item, resolving the unit
// price with the precedence: selected variant price, the item's own price,
// the first variation's price, zero. Returns false when a variant id names
// nothing the item offers.
func (s *CartService) lineFromMenuItem(src *entity.MenuItem, sel *ItemSelections) (entity.CartItem, bool) {
	var variant *VariantSelection
	if sel != nil && sel.VariantID != "" {
		variant = SelectVariant(src, sel.VariantID)
		if variant == nil {
			return entity.CartItem{}, false
		}
	}

	item := entity.CartItem{
		CatalogID:          src.ID,
		Name:               src.Name,
		Description:        src.Description,
		ImageURL:           src.ImageURL,
		Discount:           src.Discount,
		MaxAllowedDiscount: src.MaxAllowedAmount,
		BranchID:           *s.activeBranchID,
		BranchName:         s.activeBranchName,
	}

	switch {
	case variant != nil && variant.Price != nil:
		item.UnitPrice = *variant.Price
	case !src.Price.IsZero():
		item.UnitPrice = src.Price
	case len(src.Variations) > 0:
		item.UnitPrice = src.Variations[0].Price
	default:
		item.UnitPrice = money.Zero()
	}

	if variant != nil {
		item.VariantID = variant.ID
		item.VariantName = variant.Name
		item.VariantPrice = variant.Price
	}
	if sel != nil {
		item.Modifiers = selectModifiers(src.Modifiers, sel.Modifiers)
		item.Customizations = selectCustomizations(src.Customizations, sel.Customizations)
	}
	return item, true
}

// selectModifiers resolves chosen modifier quantities against the item's
// modifier definitions, keeping catalog order. Ids the item does not offer
// and non-positive quantities are dropped.
func selectModifiers(defs []entity.Modifier, chosen map[string]int) []entity.ModifierSelection {
	if len(chosen) == 0 {
		return nil
	}
	var out []entity.ModifierSelection
	for _, def := range defs {
		qty := chosen[def.ID]
		if qty <= 0 {
			continue
		}
		out = append(out, entity.ModifierSelection{
			ID:        def.ID,
			Name:      def.Name,
			UnitPrice: def.Price,
			Quantity:  qty,
		})
	}
	return out
}

// selectCustomizations resolves chosen options against the item's
// customization groups, one option per group.
func selectCustomizations(defs []entity.Customization, chosen map[string]string) []entity.CustomizationSelection {
	if len(chosen) == 0 {
		return nil
	}
	var out []entity.CustomizationSelection
	for _, group := range defs {
		optionID, ok := chosen[group.ID]
		if !ok {
			continue
		}
		for _, opt := range group.Options {
			if opt.ID != optionID {
				continue
			}
			out = append(out, entity.CustomizationSelection{
				GroupID:     group.ID,
				GroupName:   group.Name,
				OptionID:    opt.ID,
				OptionName:  opt.Name,
				OptionPrice: opt.Price,
			})
			break
		}
	}
	return out
}

// lineFromDeal builds a cart line from a fixed-price deal. Deals never carry
// a variant, so they always merge on the deal id alone.
func (s *CartService) lineFromDeal(src *entity.Deal) entity.CartItem {
	return entity.CartItem{
		CatalogID:          src.DealID,
		Name:               src.Name,
		Description:        src.Description,
		ImageURL:           src.ImageURL,
		UnitPrice:          src.Price,
		Discount:           src.Discount,
		MaxAllowedDiscount: money.Zero(),
		BranchID:           *s.activeBranchID,
		BranchName:         s.activeBranchName,
	}
}

// SelectVariant resolves a variant choice against a menu item's variations,
// preferring the discounted price when one is present. Returns nil when the
// variant id is not offered.
func SelectVariant(item *entity.MenuItem, variantID string) *VariantSelection {
	for _, v := range item.Variations {
		if v.ID != variantID {
			continue
		}
		price := v.Price
		if v.DiscountedPrice != nil && !v.DiscountedPrice.IsZero() {
			price = *v.DiscountedPrice
		}
		return &VariantSelection{ID: v.ID, Name: v.Name, Price: &price}
	}
	return nil
}

// RemoveItem deletes every line addressed by the key, which may be the bare
// catalog id or the full identity key. Unknown keys are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, key string) {
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.MatchesKey(key) {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if removed {
		s.persist(ctx)
	}
}

// UpdateQuantity sets the matched line's quantity. A quantity of zero or
// less removes the line instead.
func (s *CartService) UpdateQuantity(ctx context.Context, key string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, key)
		return
	}
	for i := range s.items {
		if s.items[i].MatchesKey(key) {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the whole cart and resets branch-scoped selections.
func (s *CartService) Clear(ctx context.Context) {
	s.items = nil
	s.allergenIDs = nil
	s.instructions = ""
	s.persist(ctx)
}

// ClearBranch removes only the lines belonging to the branch, leaving other
// branches' lines and the session context untouched.
func (s *CartService) ClearBranch(ctx context.Context, branchID uuid.UUID) {
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.BranchID == branchID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if removed {
		s.persist(ctx)
	}
}

// Items returns a copy of all cart lines in insertion order.
func (s *CartService) Items() []entity.CartItem {
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemsForBranch returns the branch's lines in insertion order.
func (s *CartService) ItemsForBranch(branchID uuid.UUID) []entity.CartItem {
	var out []entity.CartItem
	for _, item := range s.items {
		if item.BranchID == branchID {
			out = append(out, item)
		}
	}
	return out
}

// BranchSummaries groups the cart by branch, valuing each group before
// discount, tax, service and delivery adjustments. Branches appear in the
// order their first line was added.
func (s *CartService) BranchSummaries() []entity.BranchSummary {
	var order []uuid.UUID
	byBranch := make(map[uuid.UUID]*entity.BranchSummary)

	for _, item := range s.items {
		sum, ok := byBranch[item.BranchID]
		if !ok {
			sum = &entity.BranchSummary{
				BranchID:    item.BranchID,
				BranchName:  item.BranchName,
				TotalAmount: decimal.Zero,
			}
			byBranch[item.BranchID] = sum
			order = append(order, item.BranchID)
		}
		sum.TotalQuantity += item.Quantity
		sum.TotalAmount = sum.TotalAmount.Add(item.LineTotal())
		sum.ItemCount++
	}

	out := make([]entity.BranchSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byBranch[id])
	}
	return out
}

// UniqueBranchCount returns the number of distinct branches in the cart.
func (s *CartService) UniqueBranchCount() int {
	seen := make(map[uuid.UUID]struct{})
	for _, item := range s.items {
		seen[item.BranchID] = struct{}{}
	}
	return len(seen)
}

// SetServiceType records how the order will be fulfilled. Unknown values are
// ignored.
func (s *CartService) SetServiceType(ctx context.Context, t enum.ServiceType) {
	if !t.Valid() {
		log.Printf("cart %s: ignoring invalid service type %d", s.sessionID, t)
		return
	}
	s.serviceType = t
	s.persist(ctx)
}

// ServiceType returns the session's fulfillment mode.
func (s *CartService) ServiceType() enum.ServiceType {
	return s.serviceType
}

// SetSplitType records how the bill should be divided.
func (s *CartService) SetSplitType(ctx context.Context, t enum.SplitType) {
	s.splitType = t
	s.persist(ctx)
}

// SplitType returns the session's split-bill mode.
func (s *CartService) SplitType() enum.SplitType {
	return s.splitType
}

// SetDeliveryDetails records the drop-off details for a delivery order.
func (s *CartService) SetDeliveryDetails(ctx context.Context, d *entity.DeliveryDetails) {
	s.delivery = d
	s.persist(ctx)
}

// SetTakeawayDetails records the pickup details for a takeaway order.
func (s *CartService) SetTakeawayDetails(ctx context.Context, t *entity.TakeawayDetails) {
	s.takeaway = t
	s.persist(ctx)
}

// SetInstructions records free-text special instructions for the kitchen.
func (s *CartService) SetInstructions(ctx context.Context, text string) {
	s.instructions = text
	s.persist(ctx)
}

// SetAllergens replaces the selected allergen ids.
func (s *CartService) SetAllergens(ctx context.Context, ids []string) {
	s.allergenIDs = ids
	s.persist(ctx)
}

// Snapshot captures the durable subset of the cart state under the current
// schema version.
func (s *CartService) Snapshot() *entity.CartSnapshot {
	return &entity.CartSnapshot{
		SchemaVersion:       entity.SnapshotSchemaVersion,
		SessionID:           s.sessionID,
		Items:               s.Items(),
		ActiveBranchID:      s.activeBranchID,
		ActiveBranchName:    s.activeBranchName,
		ServiceType:         s.serviceType,
		SplitType:           s.splitType,
		Delivery:            s.delivery,
		Takeaway:            s.takeaway,
		SpecialInstructions: s.instructions,
		AllergenIDs:         s.allergenIDs,
	}
}

// persist writes the snapshot through the state repository. Persistence is
// best effort: a storage failure is logged and never blocks the mutation.
func (s *CartService) persist(ctx context.Context) {
	if s.states == nil {
		return
	}
	if err := s.states.Save(ctx, s.Snapshot()); err != nil {
		log.Printf("cart %s: snapshot save failed: %v", s.sessionID, err)
	}
}

// DeliveryDetails returns the recorded drop-off details, nil when unset.
func (s *CartService) DeliveryDetails() *entity.DeliveryDetails {
	return s.delivery
}

// TakeawayDetails returns the recorded pickup details, nil when unset.
func (s *CartService) TakeawayDetails() *entity.TakeawayDetails {
	return s.takeaway
}

// Instructions returns the free-text special instructions.
func (s *CartService) Instructions() string {
	return s.instructions
}

// Allergens returns the selected allergen ids.
func (s *CartService) Allergens() []string {
	return s.allergenIDs
}

// MarshalJSON renders the cart as its snapshot document.
func (s *CartService) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}
