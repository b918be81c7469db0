// Файл: internal/routes/user.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	manageUsers := authMW.RequirePermission(authz.ManageUsers)

	secureGroup.GET("/users", userCtrl.GetUsers, manageUsers)
	secureGroup.GET("/user/:id", userCtrl.FindUser, manageUsers)
	secureGroup.POST("/user", userCtrl.CreateUser, manageUsers)
	secureGroup.PUT("/user/:id", userCtrl.UpdateUser, manageUsers)
	secureGroup.DELETE("/user/:id", userCtrl.DeleteUser, manageUsers)
	secureGroup.POST("/user/:id/reset_password", userCtrl.ResetPassword, manageUsers)
}
