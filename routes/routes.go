package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	customerSvc := services.NewCustomerService(db, customerRepo, userRepo)
	restaurantSvc := services.NewRestaurantService(db, restaurantRepo, userRepo)
	dishSvc := services.NewDishService(db, dishRepo, restaurantRepo)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, addressRepo, restaurantRepo)
	addressSvc := services.NewAddressService(addressRepo)
	favoriteSvc := services.NewFavoriteService(favoriteRepo, restaurantRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc, cfg.UploadDir)
	restaurantCtrl := controllers.NewRestaurantController(restaurantSvc, cfg.UploadDir)
	dishCtrl := controllers.NewDishController(dishSvc, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	addressCtrl := controllers.NewAddressController(addressSvc)
	favoriteCtrl := controllers.NewFavoriteController(favoriteSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	customerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer)
	restaurantOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleRestaurant)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
		a.DELETE("/me", auth, authCtrl.DeleteMe)
	}

	// Composite registration (public)
	r.POST("/customers", customerCtrl.Register)
	r.POST("/restaurants", restaurantCtrl.Register)

	// Public browsing
	r.GET("/restaurants", restaurantCtrl.List)
	r.GET("/restaurants/:id", restaurantCtrl.Detail)
	r.GET("/restaurants/:id/dishes", dishCtrl.ListByRestaurant)

	// Customer profile
	cu := r.Group("/customers", customerOnly)
	{
		cu.GET("/me", customerCtrl.Me)
		cu.PATCH("/me", customerCtrl.Update)
	}

	// Cart
	cart := r.Group("/cart", customerOnly)
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.PATCH("/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	orders := r.Group("/orders", customerOnly)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Addresses
	addresses := r.Group("/addresses", customerOnly)
	{
		addresses.GET("", addressCtrl.List)
		addresses.POST("", addressCtrl.Create)
		addresses.GET("/:id", addressCtrl.Detail)
		addresses.PATCH("/:id", addressCtrl.Update)
		addresses.DELETE("/:id", addressCtrl.Delete)
	}

	// Favorites
	favorites := r.Group("/favorites", customerOnly)
	{
		favorites.GET("", favoriteCtrl.List)
		favorites.POST("", favoriteCtrl.Add)
		favorites.DELETE("/:restaurantId", favoriteCtrl.Remove)
	}

	// Partner (restaurant owner)
	partner := r.Group("/partner", restaurantOnly)
	{
		partner.GET("/profile", restaurantCtrl.Me)
		partner.PATCH("/profile", restaurantCtrl.Update)

		partner.POST("/dishes", dishCtrl.Create)
		partner.PATCH("/dishes/:id", dishCtrl.Update)
		partner.DELETE("/dishes/:id", dishCtrl.Delete)
		partner.POST("/dishes/import", dishCtrl.Import)

		partner.GET("/orders", orderCtrl.ListForOwner)
		partner.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		partner.PATCH("/orders/:id/delivery-status", orderCtrl.UpdateDeliveryStatus)
		partner.GET("/orders/export", orderCtrl.Export)
	}
}
