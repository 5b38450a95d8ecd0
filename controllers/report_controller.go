package controllers

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/medwatch-dev/medwatch/extraction"
	"github.com/medwatch-dev/medwatch/monitoring"
	"github.com/medwatch-dev/medwatch/shared"
)

type ReportController struct {
	reportRepository shared.ReportRepository
}

func NewReportController(reportRepository shared.ReportRepository) *ReportController {
	return &ReportController{
		reportRepository: reportRepository,
	}
}

type processReportRequest struct {
	Report string `json:"report" validate:"required"`
}

// Create extracts the structured fields from a submitted report text and
// persists the result. Extraction itself never fails; the only user errors
// are a missing or empty report body.
func (c *ReportController) Create(ctx shared.Context) error {
	var req processReportRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to parse request body").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil || strings.TrimSpace(req.Report) == "" {
		return echo.NewHTTPError(400, "missing or empty 'report' field")
	}

	start := time.Now()
	report := extraction.Extract(req.Report)
	monitoring.ExtractionDuration.Observe(time.Since(start).Seconds())

	if err := c.reportRepository.Create(nil, &report); err != nil {
		return echo.NewHTTPError(500, "could not save report").WithInternal(err)
	}
	monitoring.ReportsProcessedAmount.Inc()

	return ctx.JSON(200, report)
}

// List returns the full report history ordered by id ascending.
func (c *ReportController) List(ctx shared.Context) error {
	reports, err := c.reportRepository.ListAll()
	if err != nil {
		return echo.NewHTTPError(500, "could not list reports").WithInternal(err)
	}

	return ctx.JSON(200, reports)
}
