package render

import (
	"strings"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/style"
)

// PxPerMM converts card dimensions to SVG user units.
const PxPerMM = 4.0

// Card frame geometry in user units, shared by both renderers.
const (
	borderWidth  = 4.0
	framePadding = 12.0
	headerHeight = 36.0
	statsHeight  = 28.0
	footerHeight = 24.0
	regionGap    = 10.0
	imageAspect  = 9.0 / 16.0
)

// face is everything a renderer needs to draw one card: the fully resolved
// colors and geometry with no defaults left to fill in. Both renderers build
// it through resolveFace, which is what keeps them from drifting apart.
type face struct {
	Card   card.Card
	Style  style.CardStyle
	Sizes  style.TextSizeSet
	Font   string
	Radius string
	Footer style.FooterStyle

	W, H float64
}

func resolveFace(c card.Card) face {
	design := c.Attributes.Design()

	w, h := c.Width, c.Height
	if w <= 0 {
		w = card.DefaultWidthMM
	}
	if h <= 0 {
		h = card.DefaultHeightMM
	}

	radius := ""
	if design.Header != nil {
		radius = design.Header.BorderRadius
	}

	resolved := style.Resolve(design)
	return face{
		Card:   c,
		Style:  resolved,
		Sizes:  style.TextSizes(design.TextSize),
		Font:   style.ResolveFont(design.FontFamily),
		Radius: style.BorderRadius(radius),
		Footer: style.ResolveFooter(design, resolved),
		W:      w * PxPerMM,
		H:      h * PxPerMM,
	}
}

// rect is an axis-aligned region within the card frame.
type rect struct {
	X, Y, W, H float64
}

func (f face) headerRect() rect {
	return rect{framePadding, framePadding, f.W - 2*framePadding, headerHeight}
}

func (f face) imageRect() rect {
	h := f.headerRect()
	w := f.W - 2*framePadding
	return rect{framePadding, h.Y + h.H + regionGap, w, w * imageAspect}
}

func (f face) statsRect() rect {
	img := f.imageRect()
	return rect{framePadding, img.Y + img.H + regionGap, f.W - 2*framePadding, statsHeight}
}

// bodyRect fills the space between the region above it and the footer (or
// the bottom edge when the footer is hidden).
func (f face) bodyRect() rect {
	var top float64
	switch {
	case f.isBattle():
		s := f.statsRect()
		top = s.Y + s.H + regionGap
	case f.Card.FrontImageURL != "" || f.Card.ImageURL != "":
		img := f.imageRect()
		top = img.Y + img.H + regionGap
	default:
		h := f.headerRect()
		top = h.Y + h.H + regionGap
	}
	bottom := f.H - framePadding
	if f.Footer.Visible {
		bottom -= footerHeight + regionGap
	}
	return rect{framePadding, top, f.W - 2*framePadding, bottom - top}
}

func (f face) footerRect() rect {
	return rect{framePadding, f.H - framePadding - footerHeight, f.W - 2*framePadding, footerHeight}
}

func (f face) isBattle() bool {
	return f.Card.Attributes != nil && f.Card.Attributes.Kind == card.KindBattle
}

func (f face) isParty() bool {
	return f.Card.Attributes != nil && f.Card.Attributes.Kind == card.KindParty
}

// frontImage returns the artwork URL for the front face, if any.
func (f face) frontImage() string {
	if f.Card.FrontImageURL != "" {
		return f.Card.FrontImageURL
	}
	return f.Card.ImageURL
}

// bodyLines collects the text shown in the body panel, one entry per block.
func (f face) bodyLines() []string {
	a := f.Card.Attributes
	var lines []string
	add := func(label, text string) {
		if strings.TrimSpace(text) != "" {
			if label != "" {
				lines = append(lines, label)
			}
			lines = append(lines, wrapText(text, bodyWrapWidth(f.W))...)
		}
	}

	switch {
	case a != nil && a.Kind == card.KindBattle && a.Battle != nil:
		add("", a.Battle.Effect)
	case a != nil && a.Kind == card.KindParty && a.Party != nil:
		add("ACTION", a.Party.Action)
		add("EFFECT", a.Party.Effect)
		add("WIN", a.Party.WinCondition)
	default:
		add("", f.Card.Description)
	}
	return lines
}

// footerText is the caption shown in the footer strip.
func (f face) footerText() string {
	if f.isParty() && f.Card.Attributes.Party != nil {
		p := f.Card.Attributes.Party
		var parts []string
		if p.PlayerCount != "" {
			parts = append(parts, p.PlayerCount)
		}
		if p.Difficulty != "" {
			parts = append(parts, p.Difficulty)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " / ")
		}
	}
	return f.Card.Name
}

// bodyWrapWidth estimates how many characters fit on one body line.
func bodyWrapWidth(cardWidth float64) int {
	// Roughly 7 units per glyph at the medium body size.
	n := int((cardWidth - 2*framePadding - 16) / 7)
	return max(n, 10)
}

// wrapText breaks s into lines of at most width characters, splitting on
// spaces where possible.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
