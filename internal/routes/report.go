// Файл: internal/routes/report.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/report/contributions", reportCtrl.GetContributionReport, authMW.RequirePermission(authz.ViewActivity))
}
