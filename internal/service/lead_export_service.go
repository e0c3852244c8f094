package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// LeadExportSheet is the name of the worksheet holding exported leads
const LeadExportSheet = "Leads"

// leadExportHeaders mirror the lead tracking table
var leadExportHeaders = []string{
	"ID",
	"Customer",
	"Category",
	"Sales Person",
	"Offer Date",
	"Status",
	"Initial Offer #",
	"Revision",
	"Priority",
	"Follow-up Date",
	"Next Follow-up",
	"Serial Number",
}

// LeadExportService renders lead listings as XLSX workbooks
type LeadExportService struct {
	leads  *LeadService
	logger *zap.Logger
}

func NewLeadExportService(leads *LeadService, logger *zap.Logger) *LeadExportService {
	return &LeadExportService{
		leads:  leads,
		logger: logger,
	}
}

// WriteXLSX writes one row per lead, newest first, optionally filtered by
// status, and returns the number of lead rows written.
func (s *LeadExportService) WriteXLSX(ctx context.Context, status *domain.LeadStatus, w io.Writer) (int, error) {
	leads, err := s.leads.List(ctx, status)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", LeadExportSheet); err != nil {
		return 0, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(LeadExportSheet, cell, header); err != nil {
			return 0, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, lead := range leads {
		row := []interface{}{
			lead.ID,
			lead.CustomerName,
			string(lead.ProjectCategory),
			lead.AssignedSalesPerson,
			lead.OfferCreated.String(),
			string(lead.Status),
			lead.InitialOfferNumber,
			lead.OfferRevisionNumber,
			string(lead.Priority),
			lead.FollowUpDate.String(),
			lead.NextFollowUpDate.String(),
			serialOrEmpty(lead),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(LeadExportSheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(LeadExportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return 0, fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("leads exported", zap.Int("rows", len(leads)))
	return len(leads), nil
}

func serialOrEmpty(lead domain.LeadSummaryDTO) string {
	if lead.SerialNumber == nil {
		return ""
	}
	return *lead.SerialNumber
}
