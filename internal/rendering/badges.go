package rendering

import (
	"github.com/fogleman/gg"
)

const (
	badgeHPad         = 22.0
	badgeVPad         = 12.0
	badgeGap          = 12.0
	badgeLeftOffset   = 36.0
	badgeBottomOffset = 32.0
	badgeFontSize     = 20.0
)

type badge struct {
	text string
}

// badgePlacement is a resolved badge position and size on the canvas.
type badgePlacement struct {
	badge
	x, y, w, h float64
}

// layoutBadges folds over the display-order badge list in reverse, carrying
// the next available bottom edge upward. The last badge in display order
// lands at the fixed bottom offset and each earlier badge stacks above it;
// badge height is measured per string, so one badge's size shifts the next
// badge's vertical offset.
func layoutBadges(dc *gg.Context, badges []badge, canvasHeight float64) []badgePlacement {
	placements := make([]badgePlacement, 0, len(badges))

	bottom := canvasHeight - badgeBottomOffset
	for i := len(badges) - 1; i >= 0; i-- {
		b := badges[i]
		tw, th := dc.MeasureString(b.text)
		w := tw + 2*badgeHPad
		h := th + 2*badgeVPad
		placements = append(placements, badgePlacement{
			badge: b,
			x:     badgeLeftOffset,
			y:     bottom - h,
			w:     w,
			h:     h,
		})
		bottom -= h + badgeGap
	}
	return placements
}

// drawBadge renders one pill badge: soft shadow, opaque near-white fill,
// dark text.
func drawBadge(dc *gg.Context, p badgePlacement) {
	radius := p.h / 2

	dc.SetRGBA(0, 0, 0, 0.18)
	dc.DrawRoundedRectangle(p.x+2, p.y+4, p.w, p.h, radius)
	dc.Fill()

	dc.SetRGBA(0.98, 0.98, 0.97, 1)
	dc.DrawRoundedRectangle(p.x, p.y, p.w, p.h, radius)
	dc.Fill()

	dc.SetHexColor("#1f2937")
	dc.DrawStringAnchored(p.text, p.x+p.w/2, p.y+p.h/2, 0.5, 0.35)
}
