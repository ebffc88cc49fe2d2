package rendering

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/gamification"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

// Cards are drawn at a fixed oversampling factor against an opaque fill so
// they stay legible when scaled down into the composite.
const (
	cardOversample = 4.0

	cardWidth  = 320.0
	cardHeight = 150.0
	cardRadius = 16.0
	cardInset  = 22.0
)

// CardRenderer rasterizes one auxiliary card to a bitmap.
type CardRenderer interface {
	Render(fonts *FontSet) (image.Image, error)
}

// AchievementCard shows the traveler's current level and title.
type AchievementCard struct {
	Info gamification.LevelInfo
}

// ProgressCard shows visited counts and overall percentage.
type ProgressCard struct {
	Stats visit.MapStats
}

// newCardContext prepares an oversampled drawing context with the shared
// card chrome (opaque white fill, rounded border).
func newCardContext() *gg.Context {
	w := int(cardWidth * cardOversample)
	h := int(cardHeight * cardOversample)
	dc := gg.NewContext(w, h)
	dc.Scale(cardOversample, cardOversample)

	dc.SetHexColor("#ffffff")
	dc.DrawRoundedRectangle(0, 0, cardWidth, cardHeight, cardRadius)
	dc.Fill()

	dc.SetHexColor("#e2e8f0")
	dc.SetLineWidth(1.5)
	dc.DrawRoundedRectangle(0.75, 0.75, cardWidth-1.5, cardHeight-1.5, cardRadius)
	dc.Stroke()
	return dc
}

// Render draws the achievement card: level number badge, level title, and
// distance to the next level.
func (c AchievementCard) Render(fonts *FontSet) (image.Image, error) {
	dc := newCardContext()

	title, err := fonts.Bold(24)
	if err != nil {
		return nil, err
	}
	label, err := fonts.Regular(14)
	if err != nil {
		return nil, err
	}
	small, err := fonts.Regular(12)
	if err != nil {
		return nil, err
	}

	// Level number roundel on the left.
	cx, cy := cardInset+28.0, cardHeight/2
	dc.SetHexColor("#0ea5e9")
	dc.DrawCircle(cx, cy, 28)
	dc.Fill()
	dc.SetFontFace(title)
	dc.SetHexColor("#ffffff")
	dc.DrawStringAnchored(fmt.Sprintf("%d", c.Info.CurrentLevel), cx, cy, 0.5, 0.5)

	textX := cx + 44

	dc.SetFontFace(label)
	dc.SetHexColor("#64748b")
	dc.DrawString("ACHIEVEMENT", textX, 44)

	dc.SetFontFace(title)
	dc.SetHexColor("#0f172a")
	currentTitle := ""
	if c.Info.Current != nil {
		currentTitle = c.Info.Current.Title
	}
	dc.DrawString(currentTitle, textX, 78)

	dc.SetFontFace(small)
	dc.SetHexColor("#64748b")
	if c.Info.Next != nil {
		dc.DrawString(fmt.Sprintf("%d more to %s", c.Info.ToNext, c.Info.Next.Title), textX, 104)
	} else {
		dc.DrawString("Every province explored!", textX, 104)
	}

	return dc.Image(), nil
}

// Render draws the progress card: overall percentage, a progress bar, and
// the per-status counts.
func (c ProgressCard) Render(fonts *FontSet) (image.Image, error) {
	dc := newCardContext()

	big, err := fonts.Bold(34)
	if err != nil {
		return nil, err
	}
	label, err := fonts.Regular(14)
	if err != nil {
		return nil, err
	}
	small, err := fonts.Regular(12)
	if err != nil {
		return nil, err
	}

	dc.SetFontFace(label)
	dc.SetHexColor("#64748b")
	dc.DrawString("PROGRESS", cardInset, 40)

	dc.SetFontFace(big)
	dc.SetHexColor("#0f172a")
	dc.DrawString(fmt.Sprintf("%d%%", c.Stats.VisitedPercentage()), cardInset, 78)

	dc.SetFontFace(label)
	dc.SetHexColor("#334155")
	dc.DrawString(
		fmt.Sprintf("%d of %d provinces", c.Stats.VisitedCount(), c.Stats.Total),
		cardInset+84, 78,
	)

	// Progress bar track and fill.
	barY, barH := 94.0, 10.0
	barW := cardWidth - 2*cardInset
	dc.SetHexColor("#e2e8f0")
	dc.DrawRoundedRectangle(cardInset, barY, barW, barH, barH/2)
	dc.Fill()
	if pct := c.Stats.VisitedPercentage(); pct > 0 {
		fillW := barW * float64(pct) / 100
		if fillW < barH {
			fillW = barH
		}
		dc.SetHexColor(visit.StatusBeenThere.FillColor())
		dc.DrawRoundedRectangle(cardInset, barY, fillW, barH, barH/2)
		dc.Fill()
	}

	dc.SetFontFace(small)
	dc.SetHexColor("#64748b")
	dc.DrawString(
		fmt.Sprintf("%d been · %d stayed · %d passed by", c.Stats.BeenThere, c.Stats.StayedThere, c.Stats.PassedBy),
		cardInset, 128,
	)

	return dc.Image(), nil
}
