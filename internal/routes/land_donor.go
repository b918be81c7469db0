// Файл: internal/routes/land_donor.go
package routes

import (
	"github.com/labstack/echo/v4"

	"donation-system/internal/authz"
	"donation-system/internal/controllers"
	"donation-system/pkg/middleware"
)

func runLandDonorRouter(secureGroup *echo.Group, landDonorCtrl *controllers.LandDonorController, authMW *middleware.AuthMiddleware) {
	view := authMW.RequirePermission(authz.ViewActivity)
	manage := authMW.RequirePermission(authz.ManageLandDonors)

	secureGroup.GET("/land_donors", landDonorCtrl.GetLandDonors, view)
	secureGroup.GET("/land_donor/:id", landDonorCtrl.FindLandDonor, view)
	secureGroup.POST("/land_donor", landDonorCtrl.CreateLandDonor, manage)
	secureGroup.PUT("/land_donor/:id", landDonorCtrl.UpdateLandDonor, manage)
	secureGroup.DELETE("/land_donor/:id", landDonorCtrl.DeleteLandDonor, manage)
}
