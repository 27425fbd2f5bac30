// Package spreadsheet reads and writes client rosters as Excel workbooks.
package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/model"
)

// Columns is the fixed field order of an export. Import mappings target the same keys.
var Columns = []string{
	"name",
	"phone",
	"email",
	"city",
	"project",
	"budget",
	"salesPerson",
	"contactMethod",
	"facebook",
	"campaign",
	"status",
	"rating",
	"nextActionDate",
	"nextActionType",
	"createdAt",
}

// DateLayout is used for date cells on export and accepted on import.
const DateLayout = "2006-01-02 15:04"

func cellValue(c model.Client, field string, lang locale.Lang) interface{} {
	switch field {
	case "name":
		return c.Name
	case "phone":
		return c.Phone
	case "email":
		return c.Email
	case "city":
		return c.City
	case "project":
		return c.Project
	case "budget":
		return c.Budget
	case "salesPerson":
		return c.SalesPerson
	case "contactMethod":
		return c.ContactMethod
	case "facebook":
		return c.Facebook
	case "campaign":
		return c.Campaign
	case "status":
		return locale.StatusLabel(lang, c.Status)
	case "rating":
		return strconv.Itoa(c.Rating)
	case "nextActionDate":
		if c.NextActionDate == nil {
			return ""
		}
		return c.NextActionDate.Format(DateLayout)
	case "nextActionType":
		return c.NextActionType
	case "createdAt":
		return c.CreatedAt.Format(DateLayout)
	}

	return ""
}

// Export writes clients to a single-sheet workbook with headers and statuses in lang.
// Arabic sheets are laid out right to left.
func Export(clients []model.Client, lang locale.Lang) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := locale.SheetTitle(lang)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, field := range Columns {
		header[i] = locale.Header(lang, field)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, c := range clients {
		row := make([]interface{}, len(Columns))
		for j, field := range Columns {
			row[j] = cellValue(c, field, lang)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	if lang.RTL() {
		rtl := true
		if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, fmt.Errorf("set sheet view: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf, nil
}

// ExportFilename names an export taken at now, e.g. clients_20240501T100000Z.xlsx.
func ExportFilename(now time.Time) string {
	return "clients_" + now.UTC().Format("20060102T150405Z") + ".xlsx"
}
