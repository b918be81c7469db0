// Файл: internal/routes/contribution.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runContributionRouter(secureGroup *echo.Group, contributionCtrl *controllers.ContributionController, authMW *middleware.AuthMiddleware) {
	view := authMW.RequirePermission(authz.ViewActivity)
	manage := authMW.RequirePermission(authz.ManageContributions)

	secureGroup.GET("/contributions", contributionCtrl.GetContributions, view)
	secureGroup.GET("/contribution/:id", contributionCtrl.FindContribution, view)
	secureGroup.POST("/contribution", contributionCtrl.CreateContribution, manage)
	secureGroup.PUT("/contribution/:id", contributionCtrl.UpdateContribution, manage)
	secureGroup.DELETE("/contribution/:id", contributionCtrl.DeleteContribution, manage)
}
