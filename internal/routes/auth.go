// Файл: internal/routes/auth.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh_token", authCtrl.RefreshToken)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
		authGroup.PUT("/change_password", authCtrl.ChangePassword, authMW.Auth)
	}
}
