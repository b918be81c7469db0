package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"donation-system/internal/entities"
	"donation-system/internal/repositories"
	"donation-system/internal/services"
	"donation-system/pkg/api"
	"donation-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (ctrl *ReportController) GetContributionReport(c echo.Context) error {
	filter, format := ctrl.parseFilters(c)

	contributions, total, err := ctrl.reportService.GetContributionReport(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	if format == "xlsx" {
		return ctrl.respondWithXLSX(c, contributions)
	}

	page := 1
	if filter.Limit > 0 {
		page = filter.Offset/filter.Limit + 1
	}
	return api.SuccessList(c, "Отчет успешно сформирован", contributions, total, page, filter.Limit)
}

func (ctrl *ReportController) parseFilters(c echo.Context) (repositories.ReportFilter, string) {
	stdFilter := utils.ParseFilterFromQuery(c.Request().URL.Query())
	filter := repositories.ReportFilter{
		Limit:  stdFilter.Limit,
		Offset: stdFilter.Offset,
	}
	format := strings.ToLower(c.QueryParam("format"))

	if format == "xlsx" {
		// Выгружаем все строки периода, без пагинации.
		filter.Limit = 0
		filter.Offset = 0
	}

	if df := c.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := c.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			filter.DateTo = &t
		}
	}
	if p := c.QueryParam("purpose"); p != "" {
		filter.Purpose = p
	}

	return filter, format
}

var reportHeaders = []string{
	"№", "Квитанция", "Даритель", "Телефон", "Адрес", "Сумма", "Назначение", "Дата", "Примечание",
}

func (ctrl *ReportController) respondWithXLSX(c echo.Context, contributions []entities.Contribution) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, contribution := range contributions {
		row := rowIdx + 2
		values := []interface{}{
			rowIdx + 1,
			contribution.ReceiptNo,
			contribution.DonorName,
			deref(contribution.Phone),
			deref(contribution.Address),
			contribution.Amount,
			contribution.Purpose,
			contribution.ContributedAt.Format("02.01.2006"),
			deref(contribution.Note),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	fileName := fmt.Sprintf("contributions_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return f.Write(c.Response().Writer)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
