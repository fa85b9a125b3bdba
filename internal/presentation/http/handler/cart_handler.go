package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forkpoint/ordering-api/internal/application/service"
	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/request"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart mutation and query requests
type CartHandler struct {
	sessions   *service.SessionManager
	branchRepo repository.BranchRepository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *service.SessionManager, branchRepo repository.BranchRepository) *CartHandler {
	return &CartHandler{sessions: sessions, branchRepo: branchRepo}
}

// Get returns the session's cart snapshot
func (h *CartHandler) Get(c *gin.Context) {
	var snapshot *entity.CartSnapshot
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		snapshot = cart.Snapshot()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", snapshot)
}

// SelectBranch sets the cart's active branch
func (h *CartHandler) SelectBranch(c *gin.Context) {
	branchID, ok := parseBranchID(c.Param("branchId"))
	if !ok {
		response.BadRequest(c, "Invalid branch id")
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

	err = h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		cart.SetActiveBranch(c.Request.Context(), branch)
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active branch updated", branch)
}

// AddItem adds a catalog entry to the cart. Additions with the same catalog
// id, variant and branch merge into one line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid item payload: "+err.Error())
		return
	}

	if req.VariantID != "" {
		if req.Item.Kind != enum.CatalogKindMenuItem || req.Item.MenuItem == nil {
			response.BadRequest(c, "Variant selection requires a menu item")
			return
		}
		if service.SelectVariant(req.Item.MenuItem, req.VariantID) == nil {
			response.BadRequest(c, "Unknown variant for this item")
			return
		}
	}

	sel := &service.ItemSelections{
		VariantID:      req.VariantID,
		Modifiers:      req.Modifiers,
		Customizations: req.Customizations,
	}

	var snapshot *entity.CartSnapshot
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		cart.AddItem(c.Request.Context(), req.Item, sel)
		snapshot = cart.Snapshot()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", snapshot)
}

// RemoveItem removes the lines addressed by the key, which may be a bare
// catalog id or a full identity key. Unknown keys succeed without change.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	key := c.Param("key")
	var snapshot *entity.CartSnapshot
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		cart.RemoveItem(c.Request.Context(), key)
		snapshot = cart.Snapshot()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", snapshot)
}

// UpdateQuantity sets a cart line's quantity; zero or less removes the line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	key := c.Param("key")
	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid quantity payload")
		return
	}

	var snapshot *entity.CartSnapshot
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		cart.UpdateQuantity(c.Request.Context(), key, req.Quantity)
		snapshot = cart.Snapshot()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", snapshot)
}

// Clear empties the whole cart
func (h *CartHandler) Clear(c *gin.Context) {
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		cart.Clear(c.Request.Context())
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", nil)
}

// ClearBranch removes only the given branch's lines
func (h *CartHandler) ClearBranch(c *gin.Context) {
	branchID, ok := parseBranchID(c.Param("branchId"))
	if !ok {
		response.BadRequest(c, "Invalid branch id")
		return
	}

	var snapshot *entity.CartSnapshot
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		cart.ClearBranch(c.Request.Context(), branchID)
		snapshot = cart.Snapshot()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Branch cleared from cart", snapshot)
}

// Summary groups the cart by branch with pre-adjustment values
func (h *CartHandler) Summary(c *gin.Context) {
	var summaries []entity.BranchSummary
	var branchCount int
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		summaries = cart.BranchSummaries()
		branchCount = cart.UniqueBranchCount()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart summary", gin.H{
		"branches":     summaries,
		"branch_count": branchCount,
	})
}

// UpdateContext updates the session context (service type, split mode,
// fulfillment details, instructions, allergens)
func (h *CartHandler) UpdateContext(c *gin.Context) {
	var req request.CartContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid context payload")
		return
	}

	var snapshot *entity.CartSnapshot
	err := h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		ctx := c.Request.Context()
		if req.ServiceType != nil {
			cart.SetServiceType(ctx, *req.ServiceType)
		}
		if req.SplitType != nil {
			cart.SetSplitType(ctx, *req.SplitType)
		}
		if req.Delivery != nil {
			cart.SetDeliveryDetails(ctx, req.Delivery)
		}
		if req.Takeaway != nil {
			cart.SetTakeawayDetails(ctx, req.Takeaway)
		}
		if req.SpecialInstructions != nil {
			cart.SetInstructions(ctx, *req.SpecialInstructions)
		}
		if req.AllergenIDs != nil {
			cart.SetAllergens(ctx, *req.AllergenIDs)
		}
		snapshot = cart.Snapshot()
		return nil
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart context updated", snapshot)
}
