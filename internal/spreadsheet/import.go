package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/model"
)

var (
	ErrEmptySheet     = errors.New("the workbook has no header row")
	ErrNameUnmapped   = errors.New("a column must be mapped to name")
	ErrPhoneUnmapped  = errors.New("a column must be mapped to phone")
	ErrUnknownField   = errors.New("unknown target field")
	ErrDuplicateField = errors.New("field mapped more than once")
	ErrUnknownColumn  = errors.New("mapped column not in sheet")
)

// Sheet is the first worksheet of an uploaded workbook.
type Sheet struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Parse reads the first worksheet; its first row is the header.
func Parse(r io.Reader) (Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Sheet{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Sheet{}, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Sheet{}, fmt.Errorf("read rows: %w", err)
	}

	if len(rows) == 0 {
		return Sheet{}, ErrEmptySheet
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	return Sheet{Headers: headers, Rows: rows[1:]}, nil
}

// Preview returns at most n data rows.
func (s Sheet) Preview(n int) Sheet {
	if n < len(s.Rows) {
		return Sheet{Headers: s.Headers, Rows: s.Rows[:n]}
	}

	return s
}

// Mapping assigns sheet columns (by header) to client fields. Columns mapped
// to "" or left out are dropped.
type Mapping map[string]string

func isField(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}

	return false
}

// Suggest guesses a mapping from headers written in either language.
func Suggest(headers []string) Mapping {
	m := make(Mapping)
	taken := make(map[string]bool)

	for _, h := range headers {
		field, ok := locale.FieldFromHeader(h)
		if !ok || taken[field] {
			continue
		}

		m[h] = field
		taken[field] = true
	}

	return m
}

// Validate checks that name and phone are mapped and every target is a known field, used once.
func (m Mapping) Validate() error {
	seen := make(map[string]bool)

	for col, field := range m {
		if field == "" {
			continue
		}

		if !isField(field) {
			return fmt.Errorf("%w: %q (column %q)", ErrUnknownField, field, col)
		}

		if seen[field] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, field)
		}

		seen[field] = true
	}

	if !seen["name"] {
		return ErrNameUnmapped
	}

	if !seen["phone"] {
		return ErrPhoneUnmapped
	}

	return nil
}

// RowError is a rejected data row. Row is the 1-based sheet row, header included.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// RowsError lists every rejected row of an import.
type RowsError struct {
	Rows []RowError
}

func (e *RowsError) Error() string {
	parts := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		parts[i] = r.Error()
	}

	return "invalid rows: " + strings.Join(parts, "; ")
}

func (e *RowsError) Unwrap() []error {
	errs := make([]error, len(e.Rows))
	for i, r := range e.Rows {
		errs[i] = r.Err
	}

	return errs
}

// MapRows builds clients from the sheet using m. Blank rows are skipped.
// If any row is invalid nothing is returned: an import is all or nothing.
func MapRows(s Sheet, m Mapping) ([]model.Client, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(m))
	for col, field := range m {
		if field == "" {
			continue
		}

		i := indexOf(s.Headers, col)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}

		index[field] = i
	}

	var (
		clients []model.Client
		bad     []RowError
	)

	for r, row := range s.Rows {
		if blank(row) {
			continue
		}

		c, err := mapRow(row, index)
		if err == nil {
			err = c.Validate()
		}

		if err != nil {
			bad = append(bad, RowError{Row: r + 2, Err: err})
			continue
		}

		clients = append(clients, c)
	}

	if len(bad) > 0 {
		return nil, &RowsError{Rows: bad}
	}

	return clients, nil
}

func indexOf(headers []string, col string) int {
	col = strings.TrimSpace(col)
	for i, h := range headers {
		if h == col {
			return i
		}
	}

	return -1
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

func mapRow(row []string, index map[string]int) (model.Client, error) {
	get := func(field string) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	c := model.Client{
		Name:           get("name"),
		Phone:          get("phone"),
		Email:          get("email"),
		City:           get("city"),
		Project:        get("project"),
		Budget:         get("budget"),
		SalesPerson:    get("salesPerson"),
		ContactMethod:  get("contactMethod"),
		Facebook:       get("facebook"),
		Campaign:       get("campaign"),
		NextActionType: get("nextActionType"),
		Status:         model.StatusNew,
	}

	if v := get("status"); v != "" {
		s, err := locale.StatusFromLabel(v)
		if err != nil {
			return model.Client{}, err
		}
		c.Status = s
	}

	if v := get("rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.Client{}, fmt.Errorf("invalid rating %q", v)
		}
		c.Rating = n
	}

	if v := get("nextActionDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return model.Client{}, err
		}
		c.NextActionDate = &t
	}

	return c, nil
}

var dateLayouts = []string{time.RFC3339, DateLayout, "2006-01-02"}

func parseDate(v string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", v)
}
