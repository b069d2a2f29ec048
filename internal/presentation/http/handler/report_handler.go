package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayops/resortbill-api/internal/application/service"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/presentation/http/dto/response"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportRangeFromQuery(c *gin.Context) (service.ReportRange, error) {
	start, err := requiredDateQuery(c, "start_date")
	if err != nil {
		return service.ReportRange{}, err
	}
	end, err := requiredDateQuery(c, "end_date")
	if err != nil {
		return service.ReportRange{}, err
	}
	return service.NewReportRange(start, end)
}

func invoiceTypeFromQuery(c *gin.Context) *enum.InvoiceType {
	if t := c.Query("type"); t != "" {
		invoiceType := enum.InvoiceType(t)
		return &invoiceType
	}
	return nil
}

func writeExcel(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, excelContentType, buf.Bytes())
}

// Sales returns the daily sales report, optionally as an Excel download
func (h *ReportHandler) Sales(c *gin.Context) {
	r, err := reportRangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.Sales(c.Request.Context(), r, invoiceTypeFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "excel" {
		buf, err := service.ExportSalesExcel(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExcel(c, fmt.Sprintf("sales-report-%s.xlsx", r.Start.Format("2006-01-02")), buf)
		return
	}

	response.OK(c, "Sales report generated successfully", report)
}

// GST returns the GST summary report, optionally as an Excel download
func (h *ReportHandler) GST(c *gin.Context) {
	r, err := reportRangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.GST(c.Request.Context(), r)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "excel" {
		buf, err := service.ExportGSTExcel(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExcel(c, fmt.Sprintf("gst-report-%s.xlsx", r.Start.Format("2006-01-02")), buf)
		return
	}

	response.OK(c, "GST report generated successfully", report)
}

// KitchenItems returns per-menu-item order quantities over a range
func (h *ReportHandler) KitchenItems(c *gin.Context) {
	r, err := reportRangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.KitchenItems(c.Request.Context(), r)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen items report generated successfully", report)
}

// Register returns the full invoice register, optionally as an Excel download
func (h *ReportHandler) Register(c *gin.Context) {
	r, err := reportRangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	register, err := h.reportService.Register(c.Request.Context(), r, invoiceTypeFromQuery(c), c.Query("guest_name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "excel" {
		buf, err := service.ExportRegisterExcel(register)
		if err != nil {
			response.Error(c, err)
			return
		}
		writeExcel(c, fmt.Sprintf("invoice-register-%s.xlsx", r.Start.Format("2006-01-02")), buf)
		return
	}

	response.OK(c, "Invoice register generated successfully", register)
}
