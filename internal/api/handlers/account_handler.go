package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/account"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
	"github.com/vendorlynx/vendorlynx-go/pkg/utils"
)

type AccountHandler struct {
	svc *application.AccountService
}

func NewAccountHandler(svc *application.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Register godoc
// @Summary Register a vendor or property manager account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body account.RegisterDTO true "Account"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var input account.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.Register(input); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "account created"})
}

// Login godoc
// @Summary Log in and receive a JWT
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentials body account.LoginDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var input account.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	acc, token, err := h.svc.Login(input.Username, input.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:     token,
		AccountID: acc.ID,
		Username:  acc.Username,
		Role:      string(acc.Role),
	})
}

func (h *AccountHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// AuthStatus reports the authenticated caller's identity.
func (h *AccountHandler) AuthStatus(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"account_id": claims.AccountID,
		"username":   claims.Username,
		"role":       claims.Role,
	})
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input account.UpdateAccountDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	acc, err := h.svc.UpdateAccount(claims.AccountID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}
