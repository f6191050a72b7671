package services

import (
	"time"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"ID", "Date", "Time", "Status", "Department",
	"Doctor", "Patient", "Email", "Phone", "Created At",
}

// BuildAppointmentsWorkbook renders the ledger into an xlsx workbook for
// the admin export route.
func BuildAppointmentsWorkbook(appointments []AppointmentView) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Appointments"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, app := range appointments {
		doctorName := ""
		if app.Doctor != nil {
			doctorName = app.Doctor.Name
		}
		values := []interface{}{
			app.ID,
			app.Date,
			app.Time,
			app.Status,
			app.Department,
			doctorName,
			app.Patient.Name,
			app.Patient.Email,
			app.Patient.Phone,
			app.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
