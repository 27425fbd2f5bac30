package spreadsheet

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/model"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestExport_ArabicIsRightToLeft(t *testing.T) {
	due := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	clients := []model.Client{{
		ID:             uuid.New(),
		Name:           "عمر",
		Phone:          "0100",
		Status:         model.StatusSold,
		NextActionDate: &due,
		NextActionType: "call",
	}}

	buf, err := Export(clients, locale.Arabic)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetList()[0]
	assert.Equal(t, "العملاء", sheet)

	view, err := f.GetSheetView(sheet, 0)
	require.NoError(t, err)
	require.NotNil(t, view.RightToLeft)
	assert.True(t, *view.RightToLeft)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "الاسم", rows[0][0])
	assert.Equal(t, "عمر", rows[1][0])
	assert.Contains(t, rows[1], "تم البيع")
	assert.Contains(t, rows[1], "2024-05-01 10:30")
}

func TestExport_EnglishRoundTripsThroughImport(t *testing.T) {
	clients := []model.Client{
		{Name: "Omar", Phone: "0100", Status: model.StatusInterested, Rating: 4},
		{Name: "Laila", Phone: "0111", Status: model.StatusNew, City: "Cairo"},
	}

	buf, err := Export(clients, locale.English)
	require.NoError(t, err)

	sheet, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, "Name", sheet.Headers[0])

	got, err := MapRows(sheet, Suggest(sheet.Headers))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Omar", got[0].Name)
	assert.Equal(t, model.StatusInterested, got[0].Status)
	assert.Equal(t, 4, got[0].Rating)
	assert.Equal(t, "Cairo", got[1].City)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 7, 0, time.FixedZone("EET", 2*3600))
	assert.Equal(t, "clients_20240501T080007Z.xlsx", ExportFilename(now))
}

func TestMapping_Validate(t *testing.T) {
	assert.ErrorIs(t, Mapping{"Phone": "phone"}.Validate(), ErrNameUnmapped)
	assert.ErrorIs(t, Mapping{"Name": "name"}.Validate(), ErrPhoneUnmapped)
	assert.ErrorIs(t, Mapping{"Name": "name", "Tel": "phone", "X": "notes"}.Validate(), ErrUnknownField)
	assert.ErrorIs(t, Mapping{"Name": "name", "Tel": "phone", "Mobile": "phone"}.Validate(), ErrDuplicateField)
	assert.NoError(t, Mapping{"Name": "name", "Tel": "phone", "Notes": ""}.Validate())
}

func TestMapRows_RejectsInvalidStatus(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Full name", "Mobile", "Stage", "Notes"},
		[]interface{}{"Omar", "0100", "interested", "vip"},
		[]interface{}{"Laila", "0111", "archived", ""},
	)

	sheet, err := Parse(buf)
	require.NoError(t, err)

	m := Mapping{"Full name": "name", "Mobile": "phone", "Stage": "status"}
	got, err := MapRows(sheet, m)
	assert.Nil(t, got)

	var rowsErr *RowsError
	require.True(t, errors.As(err, &rowsErr))
	require.Len(t, rowsErr.Rows, 1)
	assert.Equal(t, 3, rowsErr.Rows[0].Row)
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestMapRows_MissingPhoneAndBlankRows(t *testing.T) {
	sheet := Sheet{
		Headers: []string{"Name", "Phone", "Next Action Date"},
		Rows: [][]string{
			{"Omar", "0100", "2024-05-01"},
			{"", "", ""},
			{"Laila"},
		},
	}

	_, err := MapRows(sheet, Suggest(sheet.Headers))

	var rowsErr *RowsError
	require.True(t, errors.As(err, &rowsErr))
	require.Len(t, rowsErr.Rows, 1)
	assert.Equal(t, 4, rowsErr.Rows[0].Row)
	assert.ErrorIs(t, err, model.ErrMissingPhone)
}

func TestMapRows_DropsUnmappedColumns(t *testing.T) {
	sheet := Sheet{
		Headers: []string{"الاسم", "الهاتف", "ملاحظات"},
		Rows:    [][]string{{"عمر", "0100", "ignored"}},
	}

	m := Suggest(sheet.Headers)
	assert.Equal(t, Mapping{"الاسم": "name", "الهاتف": "phone"}, m)

	got, err := MapRows(sheet, m)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.Client{Name: "عمر", Phone: "0100", Status: model.StatusNew}, got[0])
}

func TestMapRows_UnknownColumn(t *testing.T) {
	sheet := Sheet{Headers: []string{"Name", "Phone"}}

	_, err := MapRows(sheet, Mapping{"Name": "name", "Mobile": "phone"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(workbook(t))
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestSheet_Preview(t *testing.T) {
	s := Sheet{Headers: []string{"a"}, Rows: [][]string{{"1"}, {"2"}, {"3"}}}
	assert.Len(t, s.Preview(2).Rows, 2)
	assert.Len(t, s.Preview(10).Rows, 3)
}
