package api

import (
	"encoding/json"
	"net/http"

	"github.com/amterp/swatch/internal/colorinput"
	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/picker"
	"github.com/amterp/swatch/internal/service"
)

// Handler serves the palette API.
type Handler struct {
	current *Context
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(ctx *Context) *Handler {
	return &Handler{current: ctx}
}

func (h *Handler) ctx() *Context {
	return h.current
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)
	mux.HandleFunc("GET /api/v1/swatch.svg", h.GetSwatch)

	mux.HandleFunc("GET /api/v1/palettes", h.ListPalettes)
	mux.HandleFunc("GET /api/v1/palettes/{type}", h.GetPalette)
	mux.HandleFunc("GET /api/v1/keybindings", h.GetKeyBindings)
	mux.HandleFunc("POST /api/v1/validate", h.Validate)
}

// --- Palette Handlers ---

// PaletteResponse is a palette plus the per-swatch data hosts render.
type PaletteResponse struct {
	*service.PaletteView
	Swatches []picker.SwatchInfo `json:"swatches"`
}

func toPaletteResponse(view *service.PaletteView) PaletteResponse {
	grid := picker.NewGrid(nil, picker.GridOptions{Colors: view.Colors})
	return PaletteResponse{PaletteView: view, Swatches: grid.Swatches()}
}

// ListPalettes returns every palette.
func (h *Handler) ListPalettes(w http.ResponseWriter, r *http.Request) {
	views, err := h.ctx().PaletteService.List()
	if err != nil {
		Error(w, err)
		return
	}

	resp := make([]PaletteResponse, len(views))
	for i, v := range views {
		resp[i] = toPaletteResponse(v)
	}
	JSON(w, http.StatusOK, resp)
}

// GetPalette returns one palette with swatch metadata.
func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	view, err := h.ctx().PaletteService.Get(model.PaletteType(r.PathValue("type")))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, toPaletteResponse(view))
}

// --- Key Binding Handlers ---

// KeyBindingsResponse describes the quick-select layout.
type KeyBindingsResponse struct {
	RowWidth int      `json:"row_width"`
	Keys     []string `json:"keys"`
}

// GetKeyBindings returns the quick-select layout.
func (h *Handler) GetKeyBindings(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, KeyBindingsResponse{
		RowWidth: keybind.RowWidth,
		Keys:     keybind.Keys(),
	})
}

// --- Validation Handlers ---

// ValidateRequest is the JSON body for POST /validate.
type ValidateRequest struct {
	Value string `json:"value"`
}

// ValidateResponse reports whether a value is a color and its canonical form.
type ValidateResponse struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
	Color string `json:"color,omitempty"`
}

// maxValidateBody bounds a validate request; a color value is a few bytes.
const maxValidateBody = 4 << 10

// Validate checks a value against the color field grammar.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxValidateBody)

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	color, ok := colorinput.Normalize(req.Value)
	JSON(w, http.StatusOK, ValidateResponse{Value: req.Value, Valid: ok, Color: color})
}
