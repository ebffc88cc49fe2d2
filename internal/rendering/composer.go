package rendering

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
)

const (
	// Output raster width; height follows the map's viewBox aspect ratio.
	targetWidth = 1440

	// Card placement constraints.
	cardMaxWidthFraction = 0.36
	cardMaxWidthPixels   = 520
	cardMaxUpscale       = 1.25
	cardPadding          = 32

	defaultCallToAction = "Track your Philippine adventures on lakbay.ph"

	webpQuality = 95
)

// ComposeRequest carries everything the composite needs. The two cards are
// optional; a nil renderer is treated as finished with no image rather than
// an error. CreatedAt accepts a time.Time, a value with a Time() accessor, a
// numeric epoch, or a parseable date string; anything else falls back to the
// generation time.
type ComposeRequest struct {
	SVG             string
	AchievementCard CardRenderer
	ProgressCard    CardRenderer
	CreatedAt       any
	CallToAction    string
}

// Composite is the finished share image. Encoding to PNG happens once at
// composition time; the webp variant is encoded on demand.
type Composite struct {
	Width  int
	Height int

	img image.Image
	png []byte
}

// PNG returns the lossless master encoding.
func (c *Composite) PNG() []byte { return c.png }

// WebP encodes the share variant at the fixed quality factor.
func (c *Composite) WebP() ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, c.img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp variant: %w", err)
	}
	return buf.Bytes(), nil
}

// Image returns the composed raster.
func (c *Composite) Image() image.Image { return c.img }

// Composer builds composite share images.
type Composer struct {
	fonts  *FontSet
	logger *logging.ChanneledLogger
}

// NewComposer creates a composer with loaded fonts.
func NewComposer(logger *logging.ChanneledLogger) (*Composer, error) {
	fonts, err := NewFontSet()
	if err != nil {
		return nil, err
	}
	return &Composer{fonts: fonts, logger: logger}, nil
}

type bitmapResult struct {
	img image.Image
	err error
}

// Compose runs the full pipeline: size the canvas from the map's viewBox,
// rasterize the map and both requested cards concurrently, join, then
// composite gradient, map, cards and footer badges, and encode to PNG.
// Failure is all-or-nothing; no partial image is ever returned.
func (c *Composer) Compose(ctx context.Context, req ComposeRequest) (*Composite, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(req.SVG))
	if err != nil {
		return nil, fmt.Errorf("failed to parse vector map: %w", err)
	}

	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, fmt.Errorf("vector map has a degenerate viewBox (%gx%g)", vb.W, vb.H)
	}

	// The canvas is sized from the declared bounding box before any bitmap
	// resolves, independent of the rasterized image's natural size.
	outW := targetWidth
	outH := int(math.Round(float64(targetWidth) * vb.H / vb.W))

	mapCh := make(chan bitmapResult, 1)
	achievementCh := make(chan bitmapResult, 1)
	progressCh := make(chan bitmapResult, 1)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		mapCh <- rasterizeMap(icon, outW, outH)
	}()
	go func() {
		defer wg.Done()
		achievementCh <- renderCard(req.AchievementCard, c.fonts)
	}()
	go func() {
		defer wg.Done()
		progressCh <- renderCard(req.ProgressCard, c.fonts)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mapRes := <-mapCh
	if mapRes.err != nil {
		return nil, fmt.Errorf("failed to rasterize vector map: %w", mapRes.err)
	}

	dc := gg.NewContext(outW, outH)
	drawBackground(dc, outW, outH)
	dc.DrawImage(mapRes.img, 0, 0)

	// Each card placement is independent; a missing or failed card is
	// omitted, never fatal.
	achievement := <-achievementCh
	if achievement.err != nil {
		c.logger.Render().Warn("Achievement card omitted from composite", "error", achievement.err.Error())
	} else if achievement.img != nil {
		c.placeCard(dc, achievement.img, outW, false)
	}
	progress := <-progressCh
	if progress.err != nil {
		c.logger.Render().Warn("Progress card omitted from composite", "error", progress.err.Error())
	} else if progress.img != nil {
		c.placeCard(dc, progress.img, outW, true)
	}

	if err := c.drawFooterBadges(dc, req, outH); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode composite: %w", err)
	}

	return &Composite{Width: outW, Height: outH, img: dc.Image(), png: buf.Bytes()}, nil
}

// rasterizeMap draws the vector map stretched to the full canvas size.
func rasterizeMap(icon *oksvg.SvgIcon, w, h int) (res bitmapResult) {
	// oksvg panics on some malformed path data; surface it as an error so
	// the pipeline can reject the whole operation.
	defer func() {
		if r := recover(); r != nil {
			res = bitmapResult{err: fmt.Errorf("vector rasterization panicked: %v", r)}
		}
	}()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(raster, 1.0)
	return bitmapResult{img: img}
}

func renderCard(card CardRenderer, fonts *FontSet) bitmapResult {
	if card == nil {
		return bitmapResult{}
	}
	img, err := card.Render(fonts)
	return bitmapResult{img: img, err: err}
}

// drawBackground fills the canvas with the fixed three-stop light-blue
// gradient running top-left to bottom-right.
func drawBackground(dc *gg.Context, w, h int) {
	grad := gg.NewLinearGradient(0, 0, float64(w), float64(h))
	grad.AddColorStop(0, hexRGBA("#e0f2fe"))
	grad.AddColorStop(0.5, hexRGBA("#bae6fd"))
	grad.AddColorStop(1, hexRGBA("#7dd3fc"))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}

// placeCard scales a card bitmap within the width caps and draws it with a
// soft shadow, flush to the top-left or top-right corner.
func (c *Composer) placeCard(dc *gg.Context, card image.Image, canvasW int, right bool) {
	nativeW := card.Bounds().Dx()

	maxW := math.Min(cardMaxWidthFraction*float64(canvasW), cardMaxWidthPixels)
	maxW = math.Min(maxW, cardMaxUpscale*float64(nativeW))

	scaled := imaging.Resize(card, int(maxW), 0, imaging.Lanczos)
	w, h := scaled.Bounds().Dx(), scaled.Bounds().Dy()

	x := cardPadding
	if right {
		x = canvasW - cardPadding - w
	}
	y := cardPadding

	dc.DrawImage(cardShadow(w, h), x-shadowMargin, y-shadowMargin+6)
	dc.DrawImage(scaled, x, y)
}

const shadowMargin = 24

// cardShadow renders a blurred silhouette for the soft drop shadow.
func cardShadow(w, h int) image.Image {
	sdc := gg.NewContext(w+2*shadowMargin, h+2*shadowMargin)
	sdc.SetRGBA(0, 0, 0, 0.35)
	sdc.DrawRoundedRectangle(shadowMargin, shadowMargin, float64(w), float64(h), 18)
	sdc.Fill()
	return imaging.Blur(sdc.Image(), 7)
}

// drawFooterBadges draws the stacked pill badges anchored to the bottom
// left: the created-on badge and the call-to-action beneath it in display
// order, laid out bottom-up from the reversed list.
func (c *Composer) drawFooterBadges(dc *gg.Context, req ComposeRequest, canvasH int) error {
	face, err := c.fonts.Regular(badgeFontSize)
	if err != nil {
		return fmt.Errorf("failed to load badge font: %w", err)
	}
	dc.SetFontFace(face)

	cta := req.CallToAction
	if cta == "" {
		cta = defaultCallToAction
	}
	created := resolveCreatedDate(req.CreatedAt)
	badges := []badge{
		{text: "Created on " + created.Format("January 2, 2006")},
		{text: cta},
	}

	for _, p := range layoutBadges(dc, badges, float64(canvasH)) {
		drawBadge(dc, p)
	}
	return nil
}

// resolveCreatedDate converts whatever timestamp shape a snapshot carries
// into a calendar date. A bad or absent timestamp falls back to now, never
// failing the pipeline.
func resolveCreatedDate(v any) time.Time {
	switch t := v.(type) {
	case nil:
	case time.Time:
		if !t.IsZero() {
			return t
		}
	case *time.Time:
		if t != nil && !t.IsZero() {
			return *t
		}
	case interface{ Time() time.Time }:
		return t.Time()
	case int64:
		return epochToTime(float64(t))
	case int:
		return epochToTime(float64(t))
	case float64:
		return epochToTime(t)
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Now()
}

// epochToTime treats values past the year ~33658 in seconds as milliseconds.
func epochToTime(v float64) time.Time {
	if v <= 0 {
		return time.Now()
	}
	if v > 1e12 {
		return time.UnixMilli(int64(v))
	}
	return time.Unix(int64(v), 0)
}

// hexRGBA parses a #rrggbb color for gradient stops.
func hexRGBA(hex string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
