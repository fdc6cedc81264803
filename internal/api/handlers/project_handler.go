package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/project"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
	"github.com/vendorlynx/vendorlynx-go/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListOpenProjects godoc
// @Summary List projects open to vendor applications
// @Tags projects
// @Produce json
// @Success 200 {array} project.Project
// @Router /projects [get]
func (h *ProjectHandler) ListOpenProjects(c *gin.Context) {
	projects, err := h.svc.ListOpen()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	projects, err := h.svc.ListByPropertyManager(claims.AccountID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	p, err := h.svc.GetProject(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param project body project.CreateProjectDTO true "Project"
// @Success 201 {object} project.Project
// @Failure 401 {object} response.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	p, err := h.svc.CreateProject(claims, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	p, err := h.svc.UpdateProject(claims, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
