package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

type GenerateReportRequest struct {
	ReportType string `json:"reportType" binding:"required"` // inventory | available | unavailable
	Location   string `json:"location"`                      // optional location name/city filter
	From       string `json:"from"`                          // optional created_at lower bound, YYYY-MM-DD
	To         string `json:"to"`                            // optional created_at upper bound, YYYY-MM-DD
}

type ReportRow struct {
	Title    string
	Location string
	Type     string
	Bedrooms int
	Price    float64
}

// GenerateReport renders the current property inventory as a PDF, optionally
// narrowed to a location or to only (un)available listings.
func GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, title, err := fetchReportData(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf := generatePDF(rows, title, req.Location)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.pdf", req.ReportType))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func fetchReportData(req GenerateReportRequest) ([]ReportRow, string, error) {
	query := database.DB.Model(&models.Property{}).Preload("Location")

	if req.Location != "" {
		pattern := "%" + strings.ToLower(req.Location) + "%"
		query = query.
			Joins("JOIN locations ON locations.id = properties.location_id").
			Where("LOWER(locations.name) LIKE ? OR LOWER(locations.city) LIKE ?", pattern, pattern)
	}

	if req.From != "" {
		from, err := time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, "", fmt.Errorf("invalid from date, want YYYY-MM-DD")
		}
		query = query.Where("properties.created_at >= ?", from)
	}
	if req.To != "" {
		to, err := time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, "", fmt.Errorf("invalid to date, want YYYY-MM-DD")
		}
		query = query.Where("properties.created_at < ?", to.AddDate(0, 0, 1))
	}

	var title string
	switch req.ReportType {
	case "inventory":
		title = "Property Inventory Report"
	case "available":
		query = query.Where("is_available = ?", true)
		title = "Available Properties Report"
	case "unavailable":
		query = query.Where("is_available = ?", false)
		title = "Unavailable Properties Report"
	default:
		return nil, "", fmt.Errorf("invalid report type")
	}

	var properties []models.Property
	if err := query.Order("properties.id ASC").Find(&properties).Error; err != nil {
		return nil, "", err
	}

	rows := make([]ReportRow, 0, len(properties))
	for _, property := range properties {
		row := ReportRow{
			Title:    property.Title,
			Type:     property.PropertyType,
			Bedrooms: property.Bedrooms,
			Price:    property.PricePerNight,
		}
		if property.Location != nil {
			row.Location = fmt.Sprintf("%s, %s", property.Location.Name, property.Location.State)
		}
		rows = append(rows, row)
	}

	return rows, title, nil
}

func generatePDF(rows []ReportRow, title, location string) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	// Report Title
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	if location != "" {
		pdf.CellFormat(0, 10, fmt.Sprintf("Location filter: %s", location), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 10, fmt.Sprintf("Total properties: %d", len(rows)), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Table Header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 10, "Title", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 10, "Location", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 10, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 10, "Beds", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "Price/Night", "1", 1, "C", false, 0, "")

	// Table Rows
	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.CellFormat(60, 10, row.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 10, row.Location, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 10, row.Type, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 10, fmt.Sprintf("%d", row.Bedrooms), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("$%.2f", row.Price), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
