package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cardpress/pkg/card"
)

// A4 page geometry in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	pageMarginMM = 10.0
	cardGapMM    = 5.0
)

// tile is one card face placed on the sheet.
type tile struct {
	face face
	back bool
	x, y float64 // top-left in user units, relative to the page
	page int
}

// PrintSheet tiles every card of a game onto A4 pages and returns one SVG
// with the pages stacked vertically. Party cards get a second tile for their
// back face so a duplex or fold-over print produces complete cards.
func PrintSheet(g card.Game, cards []card.Card) []byte {
	tiles, pages := layoutTiles(cards)

	pageW := PageWidthMM * PxPerMM
	pageH := PageHeightMM * PxPerMM
	totalH := float64(pages) * pageH

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		pageW, totalH, pageW, totalH)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(g.Title))

	for p := 0; p < pages; p++ {
		fmt.Fprintf(&buf, `  <rect x="0" y="%.1f" width="%.1f" height="%.1f" fill="white" stroke="#d1d5db" stroke-width="1"/>`+"\n",
			float64(p)*pageH, pageW, pageH)
	}

	for _, t := range tiles {
		ox := t.x
		oy := float64(t.page)*pageH + t.y
		fmt.Fprintf(&buf, `  <g transform="translate(%.1f %.1f)">`+"\n", ox, oy)
		if t.back {
			drawBack(&buf, g, t.face)
		} else {
			drawFace(&buf, t.face, false)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// layoutTiles packs card faces left to right in rows, starting a new page
// when a row no longer fits. Returns the placed tiles and the page count.
func layoutTiles(cards []card.Card) ([]tile, int) {
	margin := pageMarginMM * PxPerMM
	gap := cardGapMM * PxPerMM
	pageW := PageWidthMM * PxPerMM
	pageH := PageHeightMM * PxPerMM

	var faces []tile
	for _, c := range cards {
		f := resolveFace(c)
		faces = append(faces, tile{face: f})
		if c.Attributes != nil && c.Attributes.Kind == card.KindParty {
			faces = append(faces, tile{face: f, back: true})
		}
	}

	var placed []tile
	x, y := margin, margin
	rowH := 0.0
	page := 0

	for _, t := range faces {
		if x+t.face.W > pageW-margin && x > margin {
			x = margin
			y += rowH + gap
			rowH = 0
		}
		if y+t.face.H > pageH-margin && y > margin {
			page++
			x, y = margin, margin
			rowH = 0
		}
		t.x, t.y, t.page = x, y, page
		placed = append(placed, t)
		x += t.face.W + gap
		rowH = max(rowH, t.face.H)
	}

	pages := page + 1
	if len(placed) == 0 {
		pages = 1
	}
	return placed, pages
}

// drawBack renders a card back: the uploaded back image when one exists,
// otherwise the game title centered on the card's resolved background.
func drawBack(buf *bytes.Buffer, g card.Game, f face) {
	writeRect(buf, svgRect{
		rect: rect{0, 0, f.W, f.H},
		Fill: f.Style.Background,
	})
	writeRect(buf, svgRect{
		rect:        rect{borderWidth / 2, borderWidth / 2, f.W - borderWidth, f.H - borderWidth},
		Stroke:      f.Style.Border,
		StrokeWidth: borderWidth,
	})

	if f.Card.BackImageURL != "" {
		writeImage(buf, rect{0, 0, f.W, f.H}, f.Card.BackImageURL)
		return
	}

	writeText(buf, svgText{
		X: f.W / 2, Y: f.H / 2,
		Text: g.Title, Fill: f.Style.TitleText,
		Size: f.Sizes.Title, Font: f.Font, Anchor: "middle",
	})
	writeText(buf, svgText{
		X: f.W / 2, Y: f.H/2 + 24,
		Text: f.Card.Name, Fill: f.Style.Accent,
		Size: f.Sizes.Label, Font: f.Font, Anchor: "middle",
	})
}
