package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/vendorlynx/vendorlynx-go/docs"
	"github.com/vendorlynx/vendorlynx-go/internal/api/handlers"
	"github.com/vendorlynx/vendorlynx-go/internal/api/middleware"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/internal/ws"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, database *gorm.DB) {
	// init
	repos := repository.New(database)
	hub := ws.NewHub()
	services := application.New(repos, hub)
	h := handlers.New(services, hub)

	vendorOnly := middleware.RequireRole(types.RoleVendor)
	managerOnly := middleware.RequireRole(types.RolePropertyManager)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), h.Account.AuthStatus)

	// public surface
	r.POST("/register", h.Account.Register)
	r.POST("/login", h.Account.Login)
	r.POST("/logout", h.Account.Logout)
	r.GET("/vendors", h.Vendor.ListStores)
	r.GET("/vendors/:id", h.Vendor.GetStore)
	r.GET("/projects", h.Project.ListOpenProjects)
	r.GET("/projects/:id", h.Project.GetProject)

	// websocket auth rides in the token query parameter
	r.GET("/ws/notifications", h.WS.Notifications)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.PUT("/account", h.Account.UpdateAccount)

		vendors := auth.Group("/vendors")
		{
			vendors.POST("", vendorOnly, h.Vendor.CreateStore)
			vendors.PUT("/:id", vendorOnly, h.Vendor.UpdateStore)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("/mine", managerOnly, h.Project.ListMine)
			projects.POST("", managerOnly, h.Project.CreateProject)
			projects.PUT("/:id", managerOnly, h.Project.UpdateProject)
		}

		applications := auth.Group("/applications")
		{
			applications.POST("/vendor/:project_id", vendorOnly, h.Application.Apply)
			applications.GET("/vendor", vendorOnly, h.Application.ListMine)
			applications.PUT("/property-manager/:application_id", managerOnly, h.Application.Decide)
			applications.GET("/property-manager/:project_id", managerOnly, h.Application.ListByProject)
		}

		workOrders := auth.Group("/work-orders")
		{
			workOrders.POST("/property-manager/:project_id", managerOnly, h.WorkOrder.CreateWorkOrder)
			workOrders.PUT("/property-manager/close/:project_id/:work_order_id", managerOnly, h.WorkOrder.Close)
			workOrders.PUT("/property-manager/reschedule/:project_id/:work_order_id", managerOnly, h.WorkOrder.RescheduleByPropertyManager)

			workOrders.GET("/vendor/order/:work_order_id", h.WorkOrder.GetWorkOrder)
			workOrders.GET("/vendor/:vendor_id", h.WorkOrder.ListByVendor)
			workOrders.GET("/vendor/:vendor_id/project/:project_id", h.WorkOrder.ListByVendorAndProject)
			workOrders.PUT("/vendor/accept/:project_id/:work_order_id", vendorOnly, h.WorkOrder.Accept)
			workOrders.PUT("/vendor/reschedule/:project_id/:work_order_id", vendorOnly, h.WorkOrder.RescheduleByVendor)

			workOrders.POST("/logs/:work_order_id", vendorOnly, h.WorkOrder.CreateLog)
			workOrders.GET("/logs/:work_order_id", h.WorkOrder.ListLogs)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.PUT("/read/:notification_id", h.Notification.MarkRead)
			notifications.DELETE("/:notification_id", h.Notification.Delete)
		}
	}
}
