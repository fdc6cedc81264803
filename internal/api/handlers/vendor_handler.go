package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/vendor"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
	"github.com/vendorlynx/vendorlynx-go/pkg/utils"
)

type VendorHandler struct {
	svc *application.VendorService
}

func NewVendorHandler(svc *application.VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

// ListStores godoc
// @Summary Browse vendor stores
// @Tags vendors
// @Produce json
// @Param category query string false "Category filter"
// @Param city query string false "City filter"
// @Success 200 {array} vendor.Store
// @Router /vendors [get]
func (h *VendorHandler) ListStores(c *gin.Context) {
	var filter vendor.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	stores, err := h.svc.ListStores(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *VendorHandler) GetStore(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid store id"})
		return
	}
	store, err := h.svc.GetStore(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *VendorHandler) CreateStore(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input vendor.CreateStoreDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	store, err := h.svc.CreateStore(claims, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

func (h *VendorHandler) UpdateStore(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid store id"})
		return
	}
	var input vendor.UpdateStoreDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	store, err := h.svc.UpdateStore(claims, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}
