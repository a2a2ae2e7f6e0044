package api

import (
	"fmt"
	"net/http"

	"github.com/amterp/swatch/internal/colorinput"
)

const checkerboard = `<defs><pattern id="c" width="8" height="8" patternUnits="userSpaceOnUse">` +
	`<rect width="8" height="8" fill="#ffffff"/><rect width="4" height="4" fill="#ced4da"/>` +
	`<rect x="4" y="4" width="4" height="4" fill="#ced4da"/></pattern></defs>`

// SwatchSVG renders a rounded color chip. Transparent renders as a
// checkerboard. color must be canonical.
func SwatchSVG(color string) string {
	fill := color
	defs := ""
	if color == colorinput.Transparent {
		fill = "url(#c)"
		defs = checkerboard
	}
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32">%s<rect width="32" height="32" rx="6" fill="%s" stroke="#868e96" stroke-width="1"/></svg>`,
		defs, fill,
	)
}

// GetSwatch serves a chip for the color query parameter.
func (h *Handler) GetSwatch(w http.ResponseWriter, r *http.Request) {
	color, ok := colorinput.Normalize(r.URL.Query().Get("color"))
	if !ok {
		BadRequest(w, "color must be #rgb, #rrggbb, #rrggbbaa or transparent")
		return
	}
	writeSVG(w, SwatchSVG(color))
}

// GetFavicon serves a chip in the first color of the default palette.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	color := "#7950f2"
	if view, err := h.ctx().PaletteService.Get(h.ctx().Config.GetDefaultType()); err == nil && len(view.Colors) > 0 {
		color = view.Colors[0]
	}
	writeSVG(w, SwatchSVG(color))
}

func writeSVG(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(svg))
}
