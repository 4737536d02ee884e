package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
	"github.com/Trunday/kalfa-api/internal/services"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetJobReport returns the jobs-per-employee report as JSON, or as an xlsx
// download when ?format=xlsx is passed.
func (c *ReportController) GetJobReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	format := strings.ToLower(ctx.QueryParam("format"))

	data, err := c.reportService.GetJobReport(reqCtx)
	if err != nil {
		c.logger.Error("job report failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, http.StatusOK, data)
}

var jobReportHeaders = []string{
	"№", "Tarih", "Proje", "Çalışan", "Miktar", "Birim", "Birim Fiyat", "Toplam", "Durum",
}

func jobReportRow(item entities.JobReportItem) []interface{} {
	var total string
	if item.TotalPrice.Valid {
		total = fmt.Sprintf("%.2f", item.TotalPrice.Float64)
	}
	return []interface{}{
		item.JobID,
		item.Date.Format("02.01.2006"),
		item.ProjectName.String,
		item.EmployeeName.String,
		item.Quantity,
		item.Unit,
		item.UnitPrice,
		total,
		item.Status.String,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.JobReportItem) error {
	f := excelize.NewFile()
	sheet := "İş Raporu"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &jobReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := jobReportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "D", 22)
	f.SetColWidth(sheet, "E", "I", 14)

	fileName := fmt.Sprintf("is_raporu_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
