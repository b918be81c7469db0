// Файл: internal/routes/settings.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runSettingRouter(secureGroup *echo.Group, settingCtrl *controllers.SettingController, authMW *middleware.AuthMiddleware) {
	// Чтение настроек доступно любому аутентифицированному пользователю.
	secureGroup.GET("/settings", settingCtrl.GetSettings)
	secureGroup.PUT("/settings", settingCtrl.UpdateSettings, authMW.RequirePermission(authz.ManageSettings))
}
