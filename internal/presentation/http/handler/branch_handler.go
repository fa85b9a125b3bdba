package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/internal/domain/repository"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/request"
	"github.com/forkpoint/ordering-api/internal/presentation/http/dto/response"
	"github.com/forkpoint/ordering-api/pkg/pagination"
)

// BranchHandler handles branch fee-configuration requests
type BranchHandler struct {
	branchRepo repository.BranchRepository
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchRepo repository.BranchRepository) *BranchHandler {
	return &BranchHandler{branchRepo: branchRepo}
}

// List handles listing branches
func (h *BranchHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	branches, total, err := h.branchRepo.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	response.SuccessWithPagination(c, 200, "Branches retrieved", pagination.NewPaginatedResult(branches, pag))
}

// Get retrieves one branch's fee configuration
func (h *BranchHandler) Get(c *gin.Context) {
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
	response.OK(c, "Branch retrieved", branch)
}

// Create registers a new branch fee configuration
func (h *BranchHandler) Create(c *gin.Context) {
	var req request.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid branch payload: "+err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	branch := &entity.Branch{
		Name:                 req.Name,
		Currency:             currency,
		DeliveryCharge:       decimal.NewFromFloat(req.DeliveryCharge),
		ServiceChargePercent: decimal.NewFromFloat(req.ServiceChargePercent),
		TaxPercent:           decimal.NewFromFloat(req.TaxPercent),
		TaxAppliedType:       enum.TaxAppliedType(req.TaxAppliedType),
		MaxDiscountAmount:    decimal.NewFromFloat(req.MaxDiscountAmount),
	}
	if err := h.branchRepo.Create(c.Request.Context(), branch); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Branch created", branch)
}
