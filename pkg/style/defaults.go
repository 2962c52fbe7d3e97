package style

// Defaults returns the canonical card style used when nothing is authored.
// Resolve(DesignSettings{}) equals this value exactly.
func Defaults() CardStyle {
	return CardStyle{
		Background: "#1e3a5f",
		Border:     "#4a6fa5",
		TitleBg:    "rgba(0,0,0,0.3)",
		TitleText:  "#ffffff",
		BodyText:   "#ffffff",
		Accent:     "#f59e0b",
		ImageFrame: "rgba(255,255,255,0.1)",
	}
}

// DefaultDesign returns a fully populated design as the editor seeds it for
// a new card. Header and footer are present but carry no color overrides.
func DefaultDesign() DesignSettings {
	return DesignSettings{
		TextSize:        "medium",
		BackgroundColor: "#1e3a5f",
		FontFamily:      "gothic",
		TextColor:       "#ffffff",
		Header:          &HeaderSettings{BorderRadius: "none"},
		Footer:          &FooterSettings{},
	}
}

// RegionLabels maps each region to its editor display label.
var RegionLabels = map[Region]string{
	RegionBackground: "Background",
	RegionBorder:     "Border",
	RegionTitleBg:    "Title background",
	RegionTitleText:  "Title text",
	RegionBodyText:   "Body text",
	RegionAccent:     "Accent",
	RegionImageFrame: "Image frame",
}

// SwatchPresets lists the color swatches the editor offers per region.
// The first entry of each list is the region's default.
var SwatchPresets = map[Region][]string{
	RegionBackground: {"#1e3a5f", "#0f172a", "#1c1c1c", "#2d1b4e", "#1a3a2a", "#3b1a1a"},
	RegionBorder:     {"#4a6fa5", "#6366f1", "#f59e0b", "#10b981", "#ef4444", "#8b5cf6"},
	RegionTitleBg:    {"rgba(0,0,0,0.3)", "rgba(0,0,0,0.6)", "rgba(255,255,255,0.1)", "rgba(245,158,11,0.3)"},
	RegionTitleText:  {"#ffffff", "#fbbf24", "#60a5fa", "#34d399", "#f87171"},
	RegionBodyText:   {"#ffffff", "#e2e8f0", "#fbbf24", "#94a3b8", "#d1d5db"},
	RegionAccent:     {"#f59e0b", "#6366f1", "#10b981", "#ef4444", "#8b5cf6", "#ec4899"},
	RegionImageFrame: {"rgba(255,255,255,0.1)", "rgba(255,255,255,0.3)", "rgba(0,0,0,0.3)", "rgba(245,158,11,0.4)"},
}
