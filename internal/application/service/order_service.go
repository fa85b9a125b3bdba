package service

import (
	"context"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/pkg/apperror"
	"github.com/forkpoint/ordering-api/pkg/money"
)

// OrderService translates a priced, branch-scoped cart into the order-service
// submission payload and hands it to the external gateway.
type OrderService struct {
	gateway repository.OrderGateway
	pricing *PricingService
	split   *SplitBillService
}

// NewOrderService creates a new order service
func NewOrderService(gateway repository.OrderGateway, pricing *PricingService, split *SplitBillService) *OrderService {
	return &OrderService{
		gateway: gateway,
		pricing: pricing,
		split:   split,
	}
}

// BuildPayload assembles the submission document for one branch's share of
// the cart: the branch-scoped lines, totals in cents, split bills for the
// session's split mode, and the collected fulfillment details.
func (s *OrderService) BuildPayload(cart *CartService, branch *entity.Branch) (*entity.OrderPayload, error) {
	if branch == nil {
		return nil, apperror.ErrBranchConfigRequired
	}

	items := cart.ItemsForBranch(branch.ID)
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("Cart has no items for this branch")
	}

	breakdown, err := s.pricing.Quote(items, branch, cart.ServiceType())
	if err != nil {
		return nil, err
	}

	payload := &entity.OrderPayload{
		BranchID:            branch.ID,
		ServiceType:         cart.ServiceType(),
		Items:               translateItems(items),
		SubtotalCents:       money.FromDecimal(breakdown.Subtotal).Cents(),
		DiscountCents:       money.FromDecimal(breakdown.AppliedDiscount).Cents(),
		ServiceChargeCents:  money.FromDecimal(breakdown.ServiceCharge).Cents(),
		DeliveryChargeCents: money.FromDecimal(breakdown.DeliveryCharge).Cents(),
		TaxCents:            money.FromDecimal(breakdown.Tax).Cents(),
		TotalCents:          money.FromDecimal(breakdown.GrandTotal).Cents(),
		Currency:            branch.Currency,
		SplitBills:          s.split.Generate(items, cart.SplitType()),
		SpecialInstructions: cart.Instructions(),
		AllergenIDs:         cart.Allergens(),
	}

	switch cart.ServiceType() {
	case enum.ServiceTypeDelivery:
		payload.Delivery = cart.DeliveryDetails()
	case enum.ServiceTypeTakeaway:
		payload.Takeaway = cart.TakeawayDetails()
	}

	return payload, nil
}

// Submit sends the payload through the order gateway and clears the branch's
// lines from the cart on success.
func (s *OrderService) Submit(ctx context.Context, cart *CartService, branch *entity.Branch) (string, error) {
	payload, err := s.BuildPayload(cart, branch)
	if err != nil {
		return "", err
	}

	ref, err := s.gateway.Submit(ctx, payload)
	if err != nil {
		return "", err
	}

	cart.ClearBranch(ctx, branch.ID)
	return ref, nil
}

func translateItems(items []entity.CartItem) []entity.OrderPayloadItem {
	out := make([]entity.OrderPayloadItem, 0, len(items))
	for i := range items {
		item := &items[i]
		payloadItem := entity.OrderPayloadItem{
			MenuItemID:     item.CatalogID,
			VariantID:      item.VariantID,
			Quantity:       item.Quantity,
			Modifiers:      make([]entity.OrderPayloadModifier, 0, len(item.Modifiers)),
			Customizations: make([]entity.OrderPayloadCustomization, 0, len(item.Customizations)),
		}
		for _, m := range item.Modifiers {
			payloadItem.Modifiers = append(payloadItem.Modifiers, entity.OrderPayloadModifier{
				ModifierID: m.ID,
				Quantity:   m.Quantity,
			})
		}
		for _, c := range item.Customizations {
			payloadItem.Customizations = append(payloadItem.Customizations, entity.OrderPayloadCustomization{
				CustomizationID: c.GroupID,
				OptionID:        c.OptionID,
			})
		}
		out = append(out, payloadItem)
	}
	return out
}
