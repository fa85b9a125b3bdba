package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forkpoint/ordering-api/internal/application/service"
	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/response"
)

// PricingHandler prices the cart and generates split bills
type PricingHandler struct {
	sessions   *service.SessionManager
	branchRepo repository.BranchRepository
	pricing    *service.PricingService
	split      *service.SplitBillService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(
	sessions *service.SessionManager,
	branchRepo repository.BranchRepository,
	pricing *service.PricingService,
	split *service.SplitBillService,
) *PricingHandler {
	return &PricingHandler{
		sessions:   sessions,
		branchRepo: branchRepo,
		pricing:    pricing,
		split:      split,
	}
}

// Quote prices one branch's share of the cart under that branch's fee
// configuration and the session's service type
func (h *PricingHandler) Quote(c *gin.Context) {
	branchID, ok := parseBranchID(c.Query("branch_id"))
	if !ok {
		response.BadRequest(c, "branch_id query parameter is required")
		return
	}

	branch, err := h.branchRepo.GetByID(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if branch == nil {
		response.NotFound(c, "Branch not found")
		return
	}

	var breakdown *entity.PriceBreakdown
	err = h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		items := cart.ItemsForBranch(branch.ID)
		var quoteErr error
		breakdown, quoteErr = h.pricing.Quote(items, branch, cart.ServiceType())
		return quoteErr
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote computed", breakdown)
}

// SplitBill generates payment shares for one branch's share of the cart,
// using the session's split mode
func (h *PricingHandler) SplitBill(c *gin.Context) {
	branchID, ok := parseBranchID(c.Query("branch_id"))
	if !ok {
		response.BadRequest(c, "branch_id query parameter is required")
		return
	}

	var shares []entity.SplitShare
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		shares = h.split.Generate(cart.ItemsForBranch(branchID), cart.SplitType())
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Split bill generated", shares)
}
