package style

// Region identifies one of the stylable card areas.
type Region string

// The seven stylable regions of a card face.
const (
	RegionBackground Region = "background"
	RegionBorder     Region = "border"
	RegionTitleBg    Region = "titleBg"
	RegionTitleText  Region = "titleText"
	RegionBodyText   Region = "bodyText"
	RegionAccent     Region = "accent"
	RegionImageFrame Region = "imageFrame"
)

// Regions lists all stylable regions in render order.
var Regions = []Region{
	RegionBackground,
	RegionBorder,
	RegionTitleBg,
	RegionTitleText,
	RegionBodyText,
	RegionAccent,
	RegionImageFrame,
}

// CardStyle is the flat, fully resolved color record for one card face.
// Every field holds a concrete CSS color once it comes out of [Resolve];
// as an override map inside [DesignSettings] empty fields mean "unset".
type CardStyle struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	TitleBg    string `json:"titleBg"`
	TitleText  string `json:"titleText"`
	BodyText   string `json:"bodyText"`
	Accent     string `json:"accent"`
	ImageFrame string `json:"imageFrame"`
}

// Get returns the color for a region. Unknown regions return "".
func (s CardStyle) Get(r Region) string {
	switch r {
	case RegionBackground:
		return s.Background
	case RegionBorder:
		return s.Border
	case RegionTitleBg:
		return s.TitleBg
	case RegionTitleText:
		return s.TitleText
	case RegionBodyText:
		return s.BodyText
	case RegionAccent:
		return s.Accent
	case RegionImageFrame:
		return s.ImageFrame
	}
	return ""
}

// HeaderSettings overrides the title bar of a card face.
// All fields are optional; BorderRadius holds a size token for [BorderRadius].
type HeaderSettings struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BorderRadius    string `json:"borderRadius,omitempty"`
}

// FooterSettings overrides the footer strip of a card face.
// Visible is a tri-state: nil and true both render the footer, only an
// explicit false hides it.
type FooterSettings struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Visible         *bool  `json:"visible,omitempty"`
}

// DesignSettings is the user-authored design blob persisted with a card.
// It is always sparse: any field may be absent, and [Resolve] must never
// assume otherwise. BackgroundColor and TextColor are legacy single-field
// colors kept for cards saved before the CardStyle override map existed.
type DesignSettings struct {
	TextSize        string          `json:"textSize,omitempty"`
	BackgroundColor string          `json:"backgroundColor,omitempty"`
	FontFamily      string          `json:"fontFamily,omitempty"`
	TextColor       string          `json:"textColor,omitempty"`
	Header          *HeaderSettings `json:"header,omitempty"`
	Footer          *FooterSettings `json:"footer,omitempty"`
	CardStyle       *CardStyle      `json:"cardStyle,omitempty"`
}

// FooterVisible reports whether the footer should be rendered.
// Only an explicit false hides it.
func (d DesignSettings) FooterVisible() bool {
	return d.Footer == nil || d.Footer.Visible == nil || *d.Footer.Visible
}

// TextSizeSet holds the concrete font sizes for one text-size preset.
type TextSizeSet struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Label string `json:"label"`
}

// FooterStyle is the resolved appearance of the footer strip.
// Background and Text are only meaningful when Visible is true.
type FooterStyle struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Visible    bool   `json:"visible"`
}
