package sharecard

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	CardWidth       = 1200
	CardHeight      = 628
	CardJpegQuality = 85
)

var (
	verdictRed   = color.NRGBA{R: 220, G: 38, B: 38, A: 255}
	verdictGreen = color.NRGBA{R: 22, G: 163, B: 74, A: 255}
	textDark     = color.NRGBA{R: 17, G: 17, B: 17, A: 255}
	textMuted    = color.NRGBA{R: 85, G: 85, B: 85, A: 255}
)

// Card is everything the renderer needs to compose one share image.
type Card struct {
	DisplayName string
	Found       bool
	Matches     int
	SiteName    string
}

// Renderer composes 1200x628 verdict cards and saves them through the cache.
type Renderer struct {
	cache *Cache
}

func NewRenderer(cache *Cache) *Renderer {
	return &Renderer{cache: cache}
}

// CacheKey derives the cache filename for a card. the verdict and match
// count are part of the key so data-pipeline updates produce fresh cards.
func CacheKey(slug string, found bool, matches int) string {
	verdict := "no"
	if found {
		verdict = "yes"
	}
	return fmt.Sprintf("%s-%s-%d.jpg", slug, verdict, matches)
}

// Render composes the card for key and saves it to the cache, returning the
// absolute path of the JPEG. an existing cached card is returned as is.
func (r *Renderer) Render(key string, card Card) (string, error) {
	path, err := r.cache.Path(key)
	if err != nil {
		return "", err
	}
	if r.cache.Has(key) {
		return path, nil
	}

	img := r.compose(card)
	if err := imaging.Save(img, path, imaging.JPEGQuality(CardJpegQuality)); err != nil {
		return "", fmt.Errorf("failed to save share card %s: %w", key, err)
	}
	log.Printf("sharecard: rendered %s", key)
	return path, nil
}

// compose builds the verdict card: a big YES/NO, the question line, the
// result count and the site name. text is drawn with the bitmap face at 1x
// and scaled with nearest-neighbour, which gives the deliberately chunky
// look the share cards use.
func (r *Renderer) compose(card Card) image.Image {
	canvas := imaging.New(CardWidth, CardHeight, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	verdict, verdictColor := "NO", verdictGreen
	if card.Found {
		verdict, verdictColor = "YES", verdictRed
	}

	// top banner strip in the verdict color
	banner := imaging.New(CardWidth, 24, verdictColor)
	canvas = imaging.Paste(canvas, banner, image.Pt(0, 0))

	verdictImg := renderText(verdict, verdictColor, 16)
	canvas = pasteCentered(canvas, verdictImg, 170)

	question := fmt.Sprintf("%s %s IN THE FILES", card.DisplayName, isOrIsNot(card.Found))
	canvas = pasteCentered(canvas, renderText(question, textDark, 3), 420)

	results := fmt.Sprintf("%d result%s in official records", card.Matches, plural(card.Matches))
	canvas = pasteCentered(canvas, renderText(results, textMuted, 2), 490)

	if card.SiteName != "" {
		canvas = pasteCentered(canvas, renderText(card.SiteName, textMuted, 2), 560)
	}

	return canvas
}

func isOrIsNot(found bool) string {
	if found {
		return "IS"
	}
	return "IS NOT"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// renderText rasterizes s with the 7x13 bitmap face and scales it by factor.
func renderText(s string, c color.Color, factor int) image.Image {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	if width <= 0 {
		width = 1
	}
	height := face.Metrics().Height.Ceil()

	small := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(s)

	if factor <= 1 {
		return small
	}
	return imaging.Resize(small, width*factor, height*factor, imaging.NearestNeighbor)
}

func pasteCentered(canvas *image.NRGBA, img image.Image, centerY int) *image.NRGBA {
	bounds := img.Bounds()
	x := (CardWidth - bounds.Dx()) / 2
	y := centerY - bounds.Dy()/2
	return imaging.Paste(canvas, img, image.Pt(x, y))
}
