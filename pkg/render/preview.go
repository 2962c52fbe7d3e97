package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/style"
)

const regionInteractionCSS = `
    .region { cursor: pointer; transition: opacity 0.15s ease; }
    .region:hover { opacity: 0.8; }`

const regionInteractionJS = `
    document.querySelectorAll('.region').forEach(el => {
      el.addEventListener('click', () => {
        document.dispatchEvent(new CustomEvent('regionclick', { detail: el.dataset.region }));
      });
    });`

// Preview renders one card as an interactive SVG. Every stylable element
// carries class "region" and a data-region attribute naming the style region
// it draws its color from, so an editor can map clicks back to style fields.
func Preview(c card.Card) []byte {
	f := resolveFace(c)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.W, f.H, f.W, f.H)

	drawFace(&buf, f, true)

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", regionInteractionCSS)
	fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", regionInteractionJS)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// drawFace draws one resolved card front. With interactive set, stylable
// elements are tagged with their region for click-to-edit.
func drawFace(buf *bytes.Buffer, f face, interactive bool) {
	region := func(r style.Region) string {
		if interactive {
			return string(r)
		}
		return ""
	}

	writeRect(buf, svgRect{
		rect:   rect{0, 0, f.W, f.H},
		Fill:   f.Style.Background,
		Region: region(style.RegionBackground),
	})
	writeRect(buf, svgRect{
		rect:        rect{borderWidth / 2, borderWidth / 2, f.W - borderWidth, f.H - borderWidth},
		Stroke:      f.Style.Border,
		StrokeWidth: borderWidth,
		Region:      region(style.RegionBorder),
	})

	header := f.headerRect()
	writeRect(buf, svgRect{
		rect:   header,
		Fill:   f.Style.TitleBg,
		Rx:     rx(f.Radius),
		Region: region(style.RegionTitleBg),
	})
	writeText(buf, svgText{
		X: header.X + header.W/2, Y: header.Y + header.H/2 + 6,
		Text: f.Card.Name, Fill: f.Style.TitleText,
		Size: f.Sizes.Title, Font: f.Font, Anchor: "middle",
		Region: region(style.RegionTitleText),
	})

	img := f.imageRect()
	writeRect(buf, svgRect{
		rect:   img,
		Fill:   f.Style.ImageFrame,
		Region: region(style.RegionImageFrame),
	})
	if href := f.frontImage(); href != "" {
		writeImage(buf, img, href)
	}

	if f.isBattle() && f.Card.Attributes.Battle != nil {
		b := f.Card.Attributes.Battle
		stats := f.statsRect()
		writeRect(buf, svgRect{rect: stats, Fill: f.Style.TitleBg, Rx: rx(f.Radius)})
		writeText(buf, svgText{
			X: stats.X + 12, Y: stats.Y + stats.H/2 + 5,
			Text: fmt.Sprintf("ATK / %d", b.Attack), Fill: f.Style.Accent,
			Size: f.Sizes.Label, Font: f.Font,
			Region: region(style.RegionAccent),
		})
		writeText(buf, svgText{
			X: stats.X + stats.W - 12, Y: stats.Y + stats.H/2 + 5,
			Text: fmt.Sprintf("HP / %d", b.HP), Fill: f.Style.Accent,
			Size: f.Sizes.Label, Font: f.Font, Anchor: "end",
			Region: region(style.RegionAccent),
		})
	}

	drawBody(buf, f, interactive)

	if f.Footer.Visible {
		footer := f.footerRect()
		writeRect(buf, svgRect{rect: footer, Fill: f.Footer.Background, Rx: rx(f.Radius)})
		writeText(buf, svgText{
			X: footer.X + footer.W/2, Y: footer.Y + footer.H/2 + 4,
			Text: f.footerText(), Fill: f.Footer.Text,
			Size: f.Sizes.Label, Font: f.Font, Anchor: "middle",
		})
	}
}

// drawBody renders the wrapped body copy inside a panel tinted like the
// title bar. Lines that would overflow the panel are dropped.
func drawBody(buf *bytes.Buffer, f face, interactive bool) {
	body := f.bodyRect()
	if body.H <= 0 {
		return
	}
	writeRect(buf, svgRect{rect: body, Fill: f.Style.TitleBg, Rx: rx(f.Radius)})

	lineHeight := bodyLineHeight(f.Sizes)
	y := body.Y + lineHeight + 4
	for i, line := range f.bodyLines() {
		if y > body.Y+body.H-4 {
			break
		}
		t := svgText{
			X: body.X + 8, Y: y,
			Text: line, Fill: f.Style.BodyText,
			Size: f.Sizes.Body, Font: f.Font,
		}
		if i == 0 && interactive {
			t.Region = string(style.RegionBodyText)
		}
		writeText(buf, t)
		y += lineHeight
	}
}

func bodyLineHeight(sizes style.TextSizeSet) float64 {
	var px float64
	fmt.Sscanf(sizes.Body, "%f", &px)
	if px <= 0 {
		px = 14
	}
	return px * 1.5
}
