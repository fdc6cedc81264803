package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/workorder"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
	"github.com/vendorlynx/vendorlynx-go/pkg/storage"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"github.com/vendorlynx/vendorlynx-go/pkg/utils"
)

type WorkOrderHandler struct {
	svc *application.WorkOrderService
}

func NewWorkOrderHandler(svc *application.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

// CreateWorkOrder godoc
// @Summary Create a work order for a project
// @Tags work-orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project_id path uint true "Project ID"
// @Param workOrder body workorder.CreateWorkOrderDTO true "Work order"
// @Success 201 {object} workorder.View
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /work-orders/property-manager/{project_id} [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	projectID, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	var input workorder.CreateWorkOrderDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	view, err := h.svc.CreateWorkOrder(claims, projectID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetWorkOrder godoc
// @Summary Fetch a single work order
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param work_order_id path uint true "Work order ID"
// @Success 200 {object} workorder.View
// @Failure 404 {object} response.ErrorResponse
// @Router /work-orders/vendor/order/{work_order_id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "work_order_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid work order id"})
		return
	}
	view, err := h.svc.GetWorkOrder(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *WorkOrderHandler) ListByVendor(c *gin.Context) {
	vendorID, err := utils.ParseIDParam(c, "vendor_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid vendor id"})
		return
	}
	views, err := h.svc.ListByVendor(vendorID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *WorkOrderHandler) ListByVendorAndProject(c *gin.Context) {
	vendorID, err := utils.ParseIDParam(c, "vendor_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid vendor id"})
		return
	}
	projectID, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	views, err := h.svc.ListByVendorAndProject(vendorID, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Accept godoc
// @Summary Accept a work order as the assigned vendor
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param project_id path uint true "Project ID"
// @Param work_order_id path uint true "Work order ID"
// @Success 200 {object} workorder.View
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Illegal transition"
// @Router /work-orders/vendor/accept/{project_id}/{work_order_id} [put]
func (h *WorkOrderHandler) Accept(c *gin.Context) {
	h.runTransition(c, h.svc.AcceptWorkOrder)
}

func (h *WorkOrderHandler) RescheduleByVendor(c *gin.Context) {
	h.runReschedule(c, h.svc.RescheduleByVendor)
}

func (h *WorkOrderHandler) RescheduleByPropertyManager(c *gin.Context) {
	h.runReschedule(c, h.svc.RescheduleByPropertyManager)
}

// Close godoc
// @Summary Close an in-progress work order
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param project_id path uint true "Project ID"
// @Param work_order_id path uint true "Work order ID"
// @Success 200 {object} workorder.View
// @Failure 409 {object} response.ErrorResponse "Illegal transition"
// @Router /work-orders/property-manager/close/{project_id}/{work_order_id} [put]
func (h *WorkOrderHandler) Close(c *gin.Context) {
	h.runTransition(c, h.svc.CloseWorkOrder)
}

func (h *WorkOrderHandler) runTransition(c *gin.Context, fn func(*types.Claims, uint, uint) (*workorder.View, error)) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	projectID, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	workOrderID, err := utils.ParseIDParam(c, "work_order_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid work order id"})
		return
	}
	view, err := fn(claims, projectID, workOrderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *WorkOrderHandler) runReschedule(c *gin.Context, fn func(*types.Claims, uint, uint, workorder.RescheduleDTO) (*workorder.View, error)) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	projectID, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	workOrderID, err := utils.ParseIDParam(c, "work_order_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid work order id"})
		return
	}
	var input workorder.RescheduleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	view, err := fn(claims, projectID, workOrderID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateLog godoc
// @Summary Append a progress log with optional images
// @Tags work-orders
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param work_order_id path uint true "Work order ID"
// @Param title formData string true "Title"
// @Param comment formData string false "Comment"
// @Param images formData file false "Image attachments"
// @Success 201 {object} workorder.Log
// @Failure 400 {object} response.ErrorResponse "Work order not in progress"
// @Router /work-orders/logs/{work_order_id} [post]
func (h *WorkOrderHandler) CreateLog(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	workOrderID, err := utils.ParseIDParam(c, "work_order_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid work order id"})
		return
	}
	var input workorder.CreateLogDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	// Reject before touching object storage so a denied request
	// cannot orphan uploaded attachments.
	if err := h.svc.CanCreateLog(claims, workOrderID); err != nil {
		writeServiceError(c, err)
		return
	}

	var imageKeys []string
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fh := range form.File["images"] {
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unreadable attachment"})
				return
			}
			key, err := storage.UploadLogImage(c.Request.Context(), workOrderID, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
			f.Close()
			if err != nil {
				writeServiceError(c, err)
				return
			}
			imageKeys = append(imageKeys, key)
		}
	}

	l, err := h.svc.CreateLog(claims, workOrderID, input, imageKeys)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *WorkOrderHandler) ListLogs(c *gin.Context) {
	workOrderID, err := utils.ParseIDParam(c, "work_order_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid work order id"})
		return
	}
	logs, err := h.svc.ListLogs(workOrderID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
