package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forkpoint/ordering-api/internal/application/service"
	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/request"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/response"
)

// OrderHandler submits priced carts to the external order service
type OrderHandler struct {
	sessions   *service.SessionManager
	branchRepo repository.BranchRepository
	orders     *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(sessions *service.SessionManager, branchRepo repository.BranchRepository, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{sessions: sessions, branchRepo: branchRepo, orders: orders}
}

// Preview returns the order payload that would be submitted, without
// submitting it
func (h *OrderHandler) Preview(c *gin.Context) {
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

	var payload *entity.OrderPayload
	err = h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		var buildErr error
		payload, buildErr = h.orders.BuildPayload(cart, branch)
		return buildErr
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order preview", payload)
}

// Submit places the order for one branch's share of the cart and clears that
// branch's lines on success
func (h *OrderHandler) Submit(c *gin.Context) {
	var req request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid order payload: "+err.Error())
		return
	}

	branch, err := h.branchRepo.GetByID(c.Request.Context(), req.BranchID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if branch == nil {
		response.NotFound(c, "Branch not found")
		return
	}

	var ref string
	err = h.sessions.WithCart(c.Request.Context(), sessionID(c), func(cart *service.CartService) error {
		var submitErr error
		ref, submitErr = h.orders.Submit(c.Request.Context(), cart, branch)
		return submitErr
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order submitted", gin.H{"order_ref": ref})
}
