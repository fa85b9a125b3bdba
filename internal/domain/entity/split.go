package entity

import (
	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

// EqualitySplitLabel is the label carried by the single equality-mode share.
const EqualitySplitLabel = "Total Bill"

// EqualitySplitPayer is the placeholder payer handle used when the bill is
// not attributed to a specific person.
const EqualitySplitPayer = "everyone"

// SplitShare is one payer-attributable share of the bill. Amounts are in the
// smallest currency unit. Split bills are computed from the pre-discount,
// pre-tax subtotal.
type SplitShare struct {
	SplitType   enum.SplitType `json:"split_type"`
	AmountCents int64          `json:"amount_cents"`
	PayerHandle string         `json:"payer_handle"`
	Label       string         `json:"label"`
}
