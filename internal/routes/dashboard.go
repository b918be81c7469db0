// Файл: internal/routes/dashboard.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/dashboard", dashboardCtrl.GetDashboard, authMW.RequirePermission(authz.ViewActivity))
}
