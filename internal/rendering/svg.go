package rendering

import (
	"regexp"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

var (
	pathTagPattern    = regexp.MustCompile(`<path\b[^>]*>`)
	idAttrPattern     = regexp.MustCompile(`id="(PH-[A-Z0-9]+)"`)
	fillAttrPattern   = regexp.MustCompile(`fill="[^"]*"`)
	strokeAttrPattern = regexp.MustCompile(`stroke="[^"]*"`)
)

// RecolorSVG rewrites the fill and stroke of every province path from the
// current map state. Color is always a function of the current status; the
// markup is regenerated on every render pass, never patched incrementally.
func RecolorSVG(raw string, state visit.MapState) string {
	return pathTagPattern.ReplaceAllStringFunc(raw, func(tag string) string {
		m := idAttrPattern.FindStringSubmatch(tag)
		if m == nil {
			return tag
		}
		status := visit.Normalize(state[m[1]])
		tag = fillAttrPattern.ReplaceAllString(tag, `fill="`+status.FillColor()+`"`)
		tag = strokeAttrPattern.ReplaceAllString(tag, `stroke="`+status.StrokeColor()+`"`)
		return tag
	})
}
