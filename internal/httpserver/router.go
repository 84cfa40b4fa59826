package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	identitysvc "fsj-lavagens/internal/service/identity"
	ordersvc "fsj-lavagens/internal/service/order"
	suppliersvc "fsj-lavagens/internal/service/supplier"
	vehiclesvc "fsj-lavagens/internal/service/vehicle"
)

// Deps carries the services the router exposes.
type Deps struct {
	VehicleSvc  *vehiclesvc.Service
	SupplierSvc *suppliersvc.Service
	IdentitySvc *identitysvc.Service
	OrderSvc    *ordersvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.POST("/login", loginHandler(deps.IdentitySvc))

	api := router.Group("/api/v1", authMiddleware(deps.IdentitySvc))

	api.GET("/vehicles", listVehiclesHandler(deps.VehicleSvc))
	api.GET("/vehicles/export", exportVehiclesHandler(deps.VehicleSvc))
	api.POST("/vehicles", createVehicleHandler(deps.VehicleSvc))
	api.POST("/vehicles/import", importVehiclesHandler(deps.VehicleSvc))
	api.PUT("/vehicles/:id", updateVehicleHandler(deps.VehicleSvc))
	api.DELETE("/vehicles/:id", requireAdmin(), deleteVehicleHandler(deps.VehicleSvc))

	api.GET("/suppliers", listSuppliersHandler(deps.SupplierSvc))
	api.GET("/suppliers/export", exportSuppliersHandler(deps.SupplierSvc))
	api.POST("/suppliers", createSupplierHandler(deps.SupplierSvc))
	api.PUT("/suppliers/:id", updateSupplierHandler(deps.SupplierSvc))
	api.DELETE("/suppliers/:id", requireAdmin(), deleteSupplierHandler(deps.SupplierSvc))

	api.GET("/suppliers/:id/prices", listPricesHandler(deps.SupplierSvc))
	api.GET("/suppliers/:id/prices/export", exportPricesHandler(deps.SupplierSvc))
	api.POST("/suppliers/:id/prices", addPriceHandler(deps.SupplierSvc))
	api.PUT("/prices/:id", updatePriceHandler(deps.SupplierSvc))
	api.DELETE("/prices/:id", requireAdmin(), deletePriceHandler(deps.SupplierSvc))

	api.POST("/orders", createOrderHandler(deps.OrderSvc))
	api.GET("/orders", listOrdersHandler(deps.OrderSvc))
	api.GET("/orders/export", exportOrdersHandler(deps.OrderSvc))
	api.GET("/orders/summary", orderSummaryHandler(deps.OrderSvc))
	api.GET("/orders/services", orderServicesHandler(deps.OrderSvc))
	api.GET("/orders/:number", getOrderHandler(deps.OrderSvc))
	api.PATCH("/orders/:id/status", setOrderStatusHandler(deps.OrderSvc))
	api.PATCH("/orders/:id/photo", setOrderPhotoHandler(deps.OrderSvc))
	api.PATCH("/orders/:id/notes", setOrderNotesHandler(deps.OrderSvc))
	api.PATCH("/orders/:id/times", setOrderTimesHandler(deps.OrderSvc))

	admin := api.Group("/users", requireAdmin())
	admin.GET("", listUsersHandler(deps.IdentitySvc))
	admin.GET("/export", exportUsersHandler(deps.IdentitySvc))
	admin.POST("", createUserHandler(deps.IdentitySvc))
	admin.PUT("/:id", updateUserHandler(deps.IdentitySvc))
	admin.DELETE("/:id", deleteUserHandler(deps.IdentitySvc))
	admin.PATCH("/:id/password", setUserPasswordHandler(deps.IdentitySvc))
	admin.PATCH("/:id/role", setUserRoleHandler(deps.IdentitySvc))

	return router
}
