package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ali-ahsan35/vacation-rental-A7/controllers"
	"github.com/Ali-ahsan35/vacation-rental-A7/middleware"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", controllers.CreateUser)
		auth.POST("/login", controllers.Login)
	}

	locations := api.Group("/locations")
	{
		locations.GET("/", controllers.GetLocations)
		locations.GET("/autocomplete/", controllers.AutocompleteLocations)
		locations.GET("/:id/", controllers.GetLocation)
	}

	properties := api.Group("/properties")
	{
		properties.GET("/", controllers.GetProperties)
		properties.GET("/:id/", controllers.GetProperty)
	}

	// Protected routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/locations", controllers.CreateLocation)
		admin.PUT("/locations/:id", controllers.UpdateLocation)
		admin.DELETE("/locations/:id", controllers.DeleteLocation)

		admin.POST("/properties", controllers.CreateProperty)
		admin.PUT("/properties/:id", controllers.UpdateProperty)
		admin.DELETE("/properties/:id", controllers.DeleteProperty)

		admin.POST("/properties/:id/images", controllers.UploadPropertyImage)
		admin.PUT("/images/:id/primary", controllers.SetPrimaryImage)
		admin.DELETE("/images/:id", controllers.DeleteImage)

		admin.POST("/reports", controllers.GenerateReport)

		admin.GET("/profile", controllers.GetProfile)
		admin.POST("/changePassword", controllers.ChangePassword)
		admin.POST("/logout", controllers.Logout)
		admin.GET("/session", controllers.VerifyAuth)
	}
}
