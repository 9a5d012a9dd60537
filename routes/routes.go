package routes

import (
	"log/slog"
	"net/http"

	"github.com/Keshavsaini22/slooze-assignment/configs"
	"github.com/Keshavsaini22/slooze-assignment/controllers"
	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/middlewares"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/Keshavsaini22/slooze-assignment/services"
	"github.com/Keshavsaini22/slooze-assignment/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps รวม service ทั้งหมดที่ route ต้องใช้
type Deps struct {
	JWTSecret   string
	CORSOrigins []string

	Auth        *services.AuthService
	Restaurants *services.RestaurantService
	Menus       *services.MenuService
	Carts       *services.CartService
	Orders      *services.OrderService
	Payments    *services.PaymentService
	Hub         *ws.OrderHub
}

// NewDeps ประกอบ repository -> service; hub เป็นตัวรับ order event
func NewDeps(db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub, log *slog.Logger) *Deps {
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	catalog := services.NewCatalog(menuRepo, restRepo)
	carts := services.NewCartService(db, cartRepo, catalog, services.CartConflictPolicy(cfg.CartConflictPolicy), log)

	var events services.OrderEvents
	if hub != nil {
		events = hub
	}

	return &Deps{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Auth:        services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL),
		Restaurants: services.NewRestaurantService(restRepo, menuRepo),
		Menus:       services.NewMenuService(menuRepo, log),
		Carts:       carts,
		Orders:      services.NewOrderService(db, orderRepo, paymentRepo, carts, catalog, events, log),
		Payments:    services.NewPaymentService(db, paymentRepo, orderRepo, events, log),
		Hub:         hub,
	}
}

// NewRouter สร้าง gin engine พร้อม middleware และ route ทั้งหมด
func NewRouter(d *Deps, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.CORSMiddleware(d.CORSOrigins))
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.GET("/health", func(c *gin.Context) {
		h := gin.H{"ok": true}
		if d.Hub != nil {
			h["subscribers"] = d.Hub.Subscribers()
		}
		c.JSON(http.StatusOK, h)
	})

	authCtrl := controllers.NewAuthController(d.Auth)
	restCtrl := controllers.NewRestaurantController(d.Restaurants)
	menuCtrl := controllers.NewMenuController(d.Menus)
	cartCtrl := controllers.NewCartController(d.Carts)
	orderCtrl := controllers.NewOrderController(d.Orders)
	payCtrl := controllers.NewPaymentController(d.Payments)

	auth := middlewares.AuthMiddleware(d.JWTSecret)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/auth/me", auth, authCtrl.Me)

	// Restaurants (ทุก role; กรองตามประเทศใน service)
	rest := r.Group("/restaurants", auth)
	{
		rest.GET("", restCtrl.List)
		rest.GET("/:id", restCtrl.Detail)
		rest.GET("/:id/menu", restCtrl.Menu)
	}

	menu := r.Group("/menu-items", auth)
	{
		menu.GET("/:id", menuCtrl.Get)
		menu.PATCH("/:id/price", menuCtrl.UpdatePrice)
	}

	// Cart (ของตัวเองเท่านั้น)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:menuItemId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:menuItemId", cartCtrl.RemoveItem)
	}

	// Orders; สิทธิ์ตาม capability ตรวจใน service
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.POST("/from-cart", orderCtrl.CreateFromCart)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/place", orderCtrl.Place)
		orders.PUT("/:id/cancel", orderCtrl.Cancel)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
	}

	// Payments
	pay := r.Group("/payments", auth)
	{
		pay.POST("/checkout", payCtrl.Checkout)
		pay.GET("/:orderId", payCtrl.Get)
		pay.PUT("/:orderId", middlewares.AuthMiddleware(d.JWTSecret, entity.RoleAdmin), payCtrl.UpdateMethod)
	}

	// Order events (WebSocket)
	if d.Hub != nil {
		r.GET("/ws/orders", middlewares.WSAuthMiddleware(d.JWTSecret), d.Hub.HandleWebSocket)
	}
}
