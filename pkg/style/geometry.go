package style

// textSizeMap maps text-size presets to concrete font sizes.
var textSizeMap = map[string]TextSizeSet{
	"xs":     {Title: "14px", Body: "10px", Label: "8px"},
	"small":  {Title: "16px", Body: "12px", Label: "9px"},
	"medium": {Title: "20px", Body: "14px", Label: "10px"},
	"large":  {Title: "24px", Body: "16px", Label: "11px"},
}

// TextSizes maps a text-size token to concrete title/body/label font sizes.
// Unknown or empty tokens resolve to "medium".
func TextSizes(key string) TextSizeSet {
	if set, ok := textSizeMap[key]; ok {
		return set
	}
	return textSizeMap["medium"]
}

// borderRadiusMap maps radius tokens to CSS lengths.
var borderRadiusMap = map[string]string{
	"none":   "0",
	"small":  "4px",
	"medium": "8px",
	"large":  "16px",
}

// BorderRadius maps a radius token to a CSS length.
// Unknown or empty tokens resolve to "0".
func BorderRadius(key string) string {
	if r, ok := borderRadiusMap[key]; ok {
		return r
	}
	return "0"
}

// FontOption is one entry of the font picker.
type FontOption struct {
	Key    string // logical key persisted in DesignSettings
	Label  string // editor display name
	Family string // concrete CSS font-family stack
}

// FontOptions lists the supported logical fonts in picker order.
// The first entry ("gothic") is the fallback for unknown keys.
var FontOptions = []FontOption{
	{Key: "gothic", Label: "Gothic", Family: "'Rajdhani', sans-serif"},
	{Key: "mincho", Label: "Mincho", Family: "'Libre Baskerville', 'Playfair Display', serif"},
	{Key: "rounded", Label: "Rounded", Family: "'DM Sans', sans-serif"},
	{Key: "handwriting", Label: "Handwriting", Family: "'Architects Daughter', cursive"},
	{Key: "cinzel", Label: "Classic", Family: "'Cinzel', serif"},
	{Key: "orbitron", Label: "Cyber", Family: "'Orbitron', sans-serif"},
}

// ResolveFont maps a logical font key to its concrete font-family stack.
// Unknown or empty keys resolve to the gothic stack.
func ResolveFont(key string) string {
	for _, f := range FontOptions {
		if f.Key == key {
			return f.Family
		}
	}
	return FontOptions[0].Family
}
