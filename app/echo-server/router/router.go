package router

import (
	"giveLocal/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	auth := api.Group("/auth")

	auth.POST("/signup", handler.Signup)
	auth.POST("/login", handler.Login)

	auth.POST("/logout", handler.Logout, authRequired)
	auth.GET("/verify", handler.Verify, authRequired)
	auth.PUT("/location", handler.UpdateLocation, authRequired)
}

func SetupItemRoutes(api *echo.Group, handler *rest.ItemHandler, authRequired echo.MiddlewareFunc) {
	items := api.Group("/items", authRequired)

	items.POST("", handler.CreateItem)
	items.GET("", handler.GetItems)
	items.GET("/:id", handler.GetItemByID)
}

func SetupMatchRoutes(api *echo.Group, handler *rest.MatchHandler, authRequired echo.MiddlewareFunc) {
	match := api.Group("/match", authRequired)

	match.POST("", handler.FindMatches)
	match.POST("/accept", handler.AcceptMatch)
	match.POST("/pass", handler.PassMatch)
}
