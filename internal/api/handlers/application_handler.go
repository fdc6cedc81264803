package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	domainapp "github.com/vendorlynx/vendorlynx-go/internal/domain/application"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
	"github.com/vendorlynx/vendorlynx-go/pkg/utils"
)

type ApplicationHandler struct {
	svc *application.ApplicationService
}

func NewApplicationHandler(svc *application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Apply godoc
// @Summary Apply to a project as a vendor
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param project_id path uint true "Project ID"
// @Success 201 {object} domainapp.ProjectApplication
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /applications/vendor/{project_id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
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
	app, err := h.svc.Apply(claims, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Decide godoc
// @Summary Accept or reject a pending application
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param application_id path uint true "Application ID"
// @Param decision body domainapp.DecideApplicationDTO true "Decision"
// @Success 200 {object} domainapp.ProjectApplication
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /applications/property-manager/{application_id} [put]
func (h *ApplicationHandler) Decide(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	applicationID, err := utils.ParseIDParam(c, "application_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	var input domainapp.DecideApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	app, err := h.svc.Decide(claims, applicationID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) ListByProject(c *gin.Context) {
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
	views, err := h.svc.ListByProject(claims, projectID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	views, err := h.svc.ListByVendor(claims)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
