package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/vidros-portal/internal/httpx"
	"github.com/MikeMC777/vidros-portal/internal/loja"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/redisx"
	"github.com/MikeMC777/vidros-portal/internal/session"
	"github.com/MikeMC777/vidros-portal/internal/user"
)

// deps is everything the routes need.
type deps struct {
	Orders     orderBackend
	Auth       authBackend
	Stores     loja.Repository
	Users      *user.Service
	Stats      statsSource
	StatsCache redisx.StatsCache
	Sessions   *session.Manager
	Events     activityEmitter
	Origins    []string
	Now        func() time.Time
}

func newRouter(d deps) *gin.Engine {
	if d.Now == nil {
		d.Now = time.Now
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(d.Origins))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/auth/login", loginHandler(d.Auth, d.Sessions))

	authed := api.Group("", httpx.Auth(d.Sessions))
	authed.POST("/auth/logout", logoutHandler(d.Sessions))
	authed.GET("/me", meHandler())

	anyone := httpx.RequireRole(pedido.RoleStore, pedido.RoleDepartment, pedido.RoleAdmin)
	internal := httpx.RequireRole(pedido.RoleDepartment, pedido.RoleAdmin)

	ped := authed.Group("/pedidos", anyone)
	ped.GET("", listOrdersHandler(d.Orders))
	ped.GET("/summary", orderSummaryHandler(d.Orders))
	ped.GET("/glass-types", glassTypesHandler())
	ped.GET("/:id", getOrderHandler(d.Orders))
	ped.POST("", httpx.RequireRole(pedido.RoleStore), createOrderHandler(d.Orders, d.Events, d.Now))
	ped.PUT("/:id", internal, saveOrderHandler(d.Orders, d.Events))
	ped.POST("/:id/cancel", cancelOrderHandler(d.Orders, d.Events))
	ped.GET("/:id/updates", listUpdatesHandler(d.Orders))
	ped.POST("/:id/updates", addUpdateHandler(d.Orders, d.Events))
	ped.POST("/:id/fotos", httpx.RequireRole(pedido.RoleStore, pedido.RoleDepartment), addPhotoHandler(d.Orders, d.Events))

	adm := authed.Group("/admin", httpx.RequireRole(pedido.RoleAdmin))
	adm.GET("/lojas", listStoresHandler(d.Stores))
	adm.POST("/lojas", createStoreHandler(d.Stores))
	adm.POST("/lojas/import", importStoresHandler(d.Stores))
	adm.PUT("/lojas/:id", updateStoreHandler(d.Stores))
	adm.DELETE("/lojas/:id", deleteStoreHandler(d.Stores))
	adm.GET("/users", listUsersHandler(d.Users))
	adm.POST("/users", createUserHandler(d.Users))
	adm.PUT("/users/:id", updateUserHandler(d.Users))
	adm.DELETE("/users/:id", deleteUserHandler(d.Users))
	adm.POST("/users/:id/reset-password", resetPasswordHandler(d.Users))
	adm.GET("/stats", statsHandler(d.Stats, d.StatsCache))

	return r
}
