package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/workorder"
	"github.com/vendorlynx/vendorlynx-go/internal/ws"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
)

type Handlers struct {
	Account      *AccountHandler
	Vendor       *VendorHandler
	Project      *ProjectHandler
	Application  *ApplicationHandler
	WorkOrder    *WorkOrderHandler
	Notification *NotificationHandler
	WS           *WSHandler
}

func New(svc *application.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		Account:      NewAccountHandler(svc.Account),
		Vendor:       NewVendorHandler(svc.Vendor),
		Project:      NewProjectHandler(svc.Project),
		Application:  NewApplicationHandler(svc.Application),
		WorkOrder:    NewWorkOrderHandler(svc.WorkOrder),
		Notification: NewNotificationHandler(svc.Notification),
		WS:           NewWSHandler(hub),
	}
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// Unrecognized errors are treated as store failures: logged server-side
// and surfaced as a generic 500 so datastore details never reach the
// client.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrWorkOrderNotFound),
		errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrNotificationNotFound),
		errors.Is(err, application.ErrApplicationNotFound),
		errors.Is(err, application.ErrAccountNotFound),
		errors.Is(err, application.ErrStoreNotFound),
		errors.Is(err, application.ErrVendorNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotEntitled),
		errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Not authorized."})
	case errors.Is(err, workorder.ErrInvalidTransition),
		errors.Is(err, application.ErrConflict),
		errors.Is(err, application.ErrDuplicateApplication),
		errors.Is(err, application.ErrApplicationDecided),
		errors.Is(err, application.ErrUsernameTaken),
		errors.Is(err, application.ErrStoreExists):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, workorder.ErrInvalidSchedule),
		errors.Is(err, application.ErrInvalidDispatch),
		errors.Is(err, application.ErrProjectClosed),
		errors.Is(err, application.ErrLogNotAllowed),
		errors.Is(err, application.ErrMissingOldPassword),
		errors.Is(err, application.ErrIncorrectPassword):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}
