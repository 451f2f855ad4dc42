package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/ledger"
	"fintrack/internal/services"
)

// ReportHandler handles reporting and export requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DashboardResponse represents the dashboard payload: the raw snapshot plus
// chart-ready series.
type DashboardResponse struct {
	Snapshot      *ledger.Snapshot   `json:"snapshot"`
	CategoryChart ledger.ChartSeries `json:"category_chart"`
	BalanceChart  ledger.ChartSeries `json:"balance_chart"`
	SummaryChart  SummaryChart       `json:"summary_chart"`
}

// SummaryChart represents the income-vs-expense bar chart series
type SummaryChart struct {
	Months  []string  `json:"months"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
}

// GetDashboard returns the full report snapshot with chart series
// @Summary     Get dashboard
// @Description Get balance, category totals, monthly summary, and running balance, shaped for charts
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.reportService.Snapshot(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months, income, expense := ledger.SummaryChart(snapshot.Monthly)
	c.JSON(http.StatusOK, DashboardResponse{
		Snapshot:      snapshot,
		CategoryChart: ledger.CategoryChart(snapshot.CategoryTotals),
		BalanceChart:  ledger.BalanceChart(snapshot.Series),
		SummaryChart:  SummaryChart{Months: months, Income: income, Expense: expense},
	})
}

// GetMonthlyReport returns the monthly report rows
// @Summary     Get monthly report
// @Description Get per-month income, expense, and net rows, newest month first
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} ledger.MonthRow "Report rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.MonthlyReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": rows})
}

// ExportMonthlyReport streams the monthly report as a workbook
// @Summary     Export monthly report
// @Description Download the monthly report as an xlsx attachment
// @Tags        reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Success     200 {file} binary "Workbook"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Export failed"
// @Router      /reports/monthly/export [get]
func (h *ReportHandler) ExportMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.MonthlyReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMonthlyReport(&buf, rows); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrExportFailed, err))
		return
	}

	filename := export.ReportFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GetLedger returns display-ready transaction rows
// @Summary     Get ledger rows
// @Description Get the transaction table rows, optionally filtered by a case-insensitive description search
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       search query string false "Description substring filter"
// @Success     200 {array} ledger.LedgerRow "Ledger rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/ledger [get]
func (h *ReportHandler) GetLedger(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.Ledger(userID, c.Query("search"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ledger": rows})
}
