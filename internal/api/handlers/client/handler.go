package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/api/dto"
	"github.com/aliskhannn/estate-crm/internal/api/middleware"
	"github.com/aliskhannn/estate-crm/internal/api/respond"
	"github.com/aliskhannn/estate-crm/internal/config"
	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/model"
	"github.com/aliskhannn/estate-crm/internal/roster"
	"github.com/aliskhannn/estate-crm/internal/spreadsheet"
)

// clientService is the roster API the handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/client/mock.go -package=mocks
type clientService interface {
	List(ctx context.Context, userID uuid.UUID, view roster.View) (roster.Page[model.Client], error)
	Filtered(ctx context.Context, userID uuid.UUID, view roster.View) ([]model.Client, error)
	Create(ctx context.Context, userID uuid.UUID, c model.Client) (model.Client, error)
	Update(ctx context.Context, c model.Client) (model.Client, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	AddFavorite(ctx context.Context, userID, clientID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, clientID uuid.UUID) error
	Import(ctx context.Context, userID uuid.UUID, clients []model.Client) ([]model.Client, error)
}

// PreviewRows is how many data rows an import preview shows.
const PreviewRows = 10

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves the client roster endpoints.
type Handler struct {
	service   clientService
	validator *validator.Validate
	cfg       *config.Config
	now       func() time.Time
}

func NewHandler(s clientService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg, now: time.Now}
}

func (h *Handler) lang(c *ginext.Context) locale.Lang {
	return middleware.Lang(c, locale.Parse(h.cfg.Roster.DefaultLanguage, locale.Arabic))
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	if errors.Is(err, context.Canceled) {
		return
	}

	zlog.Logger.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	respond.AppError(c.Writer, h.lang(c), err)
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

// view builds the list state from query parameters. Filters are applied
// before the page, so a new filter always lands on page 1 unless asked otherwise.
func (h *Handler) view(c *ginext.Context) (roster.View, error) {
	v := roster.NewView(h.cfg.Roster.DefaultPageSize)
	v.SetQuery(c.Query("q"))

	if u := c.Query("user"); u != "" && u != "all" {
		id, err := uuid.Parse(u)
		if err != nil {
			return v, fmt.Errorf("invalid user filter")
		}
		v.SetUser(uuid.NullUUID{UUID: id, Valid: true})
	}

	if f := c.Query("favorites"); f != "" {
		on, err := strconv.ParseBool(f)
		if err != nil {
			return v, fmt.Errorf("invalid favorites filter")
		}
		v.SetFavoritesOnly(on)
	}

	if ps := c.Query("page_size"); ps != "" {
		size, err := strconv.Atoi(ps)
		if err != nil {
			return v, fmt.Errorf("invalid page_size")
		}

		if err := v.SetPageSize(size); err != nil {
			return v, fmt.Errorf("page_size must be one of %v", roster.PageSizes)
		}
	}

	if p := c.Query("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil {
			return v, fmt.Errorf("invalid page")
		}

		if err := v.SetPage(page); err != nil {
			return v, err
		}
	}

	return v, nil
}

// List returns one page of the filtered roster.
func (h *Handler) List(c *ginext.Context) {
	view, err := h.view(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), middleware.UserID(c), view)
	if err != nil {
		h.fail(c, err, "failed to list clients")
		return
	}

	respond.OK(c.Writer, page)
}

// Create adds a client owned by the caller.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.ClientRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.FailCode(c.Writer, http.StatusUnprocessableEntity, respond.CodeValidation, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req.Client())
	if err != nil {
		h.fail(c, err, "failed to create client")
		return
	}

	respond.Created(c.Writer, created)
}

// Update replaces a client record.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ClientRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.FailCode(c.Writer, http.StatusUnprocessableEntity, respond.CodeValidation, err.Error())
		return
	}

	client := req.Client()
	client.ID = id

	updated, err := h.service.Update(c.Request.Context(), client)
	if err != nil {
		h.fail(c, err, "failed to update client")
		return
	}

	respond.OK(c.Writer, updated)
}

// BulkDelete removes the selected clients.
func (h *Handler) BulkDelete(c *ginext.Context) {
	var req dto.BulkDeleteRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.FailCode(c.Writer, http.StatusUnprocessableEntity, respond.CodeValidation, err.Error())
		return
	}

	n, err := h.service.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		h.fail(c, err, "failed to delete clients")
		return
	}

	respond.OK(c.Writer, map[string]interface{}{"deleted": n, "ids": req.IDs})
}

// AddFavorite stars a client for the caller.
func (h *Handler) AddFavorite(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.AddFavorite(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.fail(c, err, "failed to add favorite")
		return
	}

	respond.OK(c.Writer, "favorite added")
}

// RemoveFavorite un-stars a client for the caller.
func (h *Handler) RemoveFavorite(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.fail(c, err, "failed to remove favorite")
		return
	}

	respond.OK(c.Writer, "favorite removed")
}

// Export downloads the filtered roster as an Excel workbook in the request language.
func (h *Handler) Export(c *ginext.Context) {
	view, err := h.view(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	clients, err := h.service.Filtered(c.Request.Context(), middleware.UserID(c), view)
	if err != nil {
		h.fail(c, err, "failed to load clients for export")
		return
	}

	buf, err := spreadsheet.Export(clients, h.lang(c))
	if err != nil {
		h.fail(c, err, "failed to build export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", spreadsheet.ExportFilename(h.now())))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

// readSheet parses the uploaded "file" field, enforcing the size and row limits.
func (h *Handler) readSheet(c *ginext.Context) (spreadsheet.Sheet, bool) {
	maxBytes := h.cfg.Roster.ImportMaxFileMiB << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("missing upload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("file is required"))
		return spreadsheet.Sheet{}, false
	}

	if fh.Size > maxBytes {
		respond.Fail(c.Writer, http.StatusRequestEntityTooLarge, fmt.Errorf("file larger than %d MiB", h.cfg.Roster.ImportMaxFileMiB))
		return spreadsheet.Sheet{}, false
	}

	f, err := fh.Open()
	if err != nil {
		h.fail(c, err, "failed to open upload")
		return spreadsheet.Sheet{}, false
	}
	defer f.Close()

	sheet, err := spreadsheet.Parse(f)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse workbook")
		respond.FailCode(c.Writer, http.StatusUnprocessableEntity, respond.CodeValidation, err.Error())
		return spreadsheet.Sheet{}, false
	}

	if h.cfg.Roster.ImportMaxRows > 0 && len(sheet.Rows) > h.cfg.Roster.ImportMaxRows {
		respond.FailCode(c.Writer, http.StatusUnprocessableEntity, respond.CodeValidation,
			fmt.Sprintf("too many rows: %d, the limit is %d", len(sheet.Rows), h.cfg.Roster.ImportMaxRows))
		return spreadsheet.Sheet{}, false
	}

	return sheet, true
}

// ImportPreview returns the headers, the first rows and a suggested column mapping.
func (h *Handler) ImportPreview(c *ginext.Context) {
	sheet, ok := h.readSheet(c)
	if !ok {
		return
	}

	preview := sheet.Preview(PreviewRows)

	respond.OK(c.Writer, dto.ImportPreview{
		Headers:   sheet.Headers,
		Rows:      preview.Rows,
		TotalRows: len(sheet.Rows),
		Suggested: spreadsheet.Suggest(sheet.Headers),
	})
}

// Import creates clients from the uploaded workbook using the "mapping" form field.
// Any invalid row rejects the whole file.
func (h *Handler) Import(c *ginext.Context) {
	sheet, ok := h.readSheet(c)
	if !ok {
		return
	}

	var mapping spreadsheet.Mapping
	if err := json.Unmarshal([]byte(c.PostForm("mapping")), &mapping); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid mapping"))
		return
	}

	clients, err := spreadsheet.MapRows(sheet, mapping)
	if err != nil {
		var rowsErr *spreadsheet.RowsError
		if errors.As(err, &rowsErr) {
			out := make([]dto.ImportRowError, len(rowsErr.Rows))
			for i, r := range rowsErr.Rows {
				out[i] = dto.ImportRowError{Row: r.Row, Error: r.Err.Error()}
			}

			respond.JSON(c.Writer, http.StatusUnprocessableEntity, map[string]interface{}{
				"error": "invalid rows",
				"code":  respond.CodeValidation,
				"rows":  out,
			})
			return
		}

		respond.FailCode(c.Writer, http.StatusUnprocessableEntity, respond.CodeValidation, err.Error())
		return
	}

	created, err := h.service.Import(c.Request.Context(), middleware.UserID(c), clients)
	if err != nil {
		h.fail(c, err, "failed to import clients")
		return
	}

	zlog.Logger.Info().Int("count", len(created)).Msg("clients imported")
	respond.Created(c.Writer, map[string]int{"imported": len(created)})
}
