// Файл: internal/routes/committee.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runCommitteeRouter(secureGroup *echo.Group, committeeCtrl *controllers.CommitteeController, authMW *middleware.AuthMiddleware) {
	view := authMW.RequirePermission(authz.ViewActivity)
	manage := authMW.RequirePermission(authz.ManageCommittees)

	secureGroup.GET("/committees", committeeCtrl.GetCommittees, view)
	secureGroup.GET("/committee/:id", committeeCtrl.FindCommittee, view)
	secureGroup.POST("/committee", committeeCtrl.CreateCommittee, manage)
	secureGroup.PUT("/committee/:id", committeeCtrl.UpdateCommittee, manage)
	secureGroup.DELETE("/committee/:id", committeeCtrl.DeleteCommittee, manage)
}
