package routes

import (
	"net/http"

	"github.com/AHMEDNABIB/react-reasturant-server/configs"
	"github.com/AHMEDNABIB/react-reasturant-server/controllers"
	"github.com/AHMEDNABIB/react-reasturant-server/middlewares"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"
	"github.com/AHMEDNABIB/react-reasturant-server/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Cfg      *configs.Config
	Users    repository.UserRepository
	Menu     repository.MenuRepository
	Reviews  repository.ReviewRepository
	Carts    repository.CartRepository
	Payments repository.PaymentRepository
	Checkout *services.PaymentService
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	auth := middlewares.RequireToken(d.Cfg.JWTSecret)
	admin := middlewares.RequireAdmin(d.Users)

	// Controllers
	authCtrl := controllers.NewAuthController(d.Cfg.JWTSecret, d.Cfg.JWTTTL)
	userCtrl := controllers.NewUserController(d.Users)
	menuCtrl := controllers.NewMenuController(d.Menu)
	reviewCtrl := controllers.NewReviewController(d.Reviews)
	cartCtrl := controllers.NewCartController(d.Carts)
	payCtrl := controllers.NewPaymentController(d.Checkout)
	adminCtrl := controllers.NewAdminController(d.Users, d.Menu, d.Payments)

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "restaurant server is running")
	})

	r.POST("/jwt", authCtrl.IssueToken)

	// Users
	r.GET("/users", auth, admin, userCtrl.List)
	r.GET("/users/admin/:email", auth, userCtrl.IsAdmin)
	r.POST("/users", userCtrl.Upsert)
	r.PATCH("/users/admin/:id", auth, admin, userCtrl.Promote)
	r.DELETE("/users/:id", auth, admin, userCtrl.Delete)

	// Menu
	r.GET("/menu", menuCtrl.List)
	r.POST("/menu", auth, admin, menuCtrl.Add)
	r.DELETE("/menu/:id", auth, admin, menuCtrl.Delete)

	// Reviews
	r.GET("/reviews", reviewCtrl.List)

	// Carts
	r.GET("/carts", auth, cartCtrl.List)
	r.POST("/carts", auth, cartCtrl.Add)
	r.DELETE("/carts/:id", auth, cartCtrl.Remove)

	// Payments
	r.POST("/create-payment-intent", auth, payCtrl.CreateIntent)
	r.POST("/payments", auth, payCtrl.Record)

	// Stats
	r.GET("/admin-stats", auth, admin, adminCtrl.Stats)
}
