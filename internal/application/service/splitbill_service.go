package service

import (
	"github.com/shopspring/decimal"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/pkg/money"
)

// SplitBillService turns a branch-scoped cart into payer-attributable shares.
// Shares are computed from the pre-discount, pre-tax subtotal: in either mode
// the share amounts sum to exactly the subtotal in cents.
type SplitBillService struct{}

// NewSplitBillService creates a new split bill service
func NewSplitBillService() *SplitBillService {
	return &SplitBillService{}
}

// Generate produces the shares for the given mode. Equality mode yields a
// single share covering the whole subtotal; items mode yields one share per
// cart line, labeled with the line's display name.
func (s *SplitBillService) Generate(items []entity.CartItem, mode enum.SplitType) []entity.SplitShare {
	if mode == enum.SplitTypeItems {
		// Each share is the rounded running total minus what earlier shares
		// already cover, so per-line rounding never drifts from the subtotal.
		shares := make([]entity.SplitShare, 0, len(items))
		running := decimal.Zero
		var allocated int64
		for i := range items {
			item := &items[i]
			running = running.Add(item.LineTotal())
			cents := money.FromDecimal(running).Cents() - allocated
			allocated += cents
			shares = append(shares, entity.SplitShare{
				SplitType:   enum.SplitTypeItems,
				AmountCents: cents,
				PayerHandle: item.Name,
				Label:       item.Name,
			})
		}
		return shares
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return []entity.SplitShare{{
		SplitType:   enum.SplitTypeEquality,
		AmountCents: money.FromDecimal(total).Cents(),
		PayerHandle: entity.EqualitySplitPayer,
		Label:       entity.EqualitySplitLabel,
	}}
}
