package style

// Resolve merges a sparse design into a complete CardStyle.
//
// Per region the explicit CardStyle override wins, then the legacy
// single-field mapping, then the default:
//
//	background ← cardStyle.background ← backgroundColor ← default
//	bodyText   ← cardStyle.bodyText   ← textColor       ← default
//	titleText  ← cardStyle.titleText  ← header.textColor ← textColor ← default
//	titleBg    ← cardStyle.titleBg    ← header.backgroundColor       ← default
//
// Border, accent, and imageFrame have no legacy mapping. Resolve never
// fails; every region of the result is non-empty.
func Resolve(design DesignSettings) CardStyle {
	s := Defaults()

	if design.BackgroundColor != "" {
		s.Background = design.BackgroundColor
	}
	if design.TextColor != "" {
		s.BodyText = design.TextColor
		s.TitleText = design.TextColor
	}
	if design.Header != nil {
		if design.Header.TextColor != "" {
			s.TitleText = design.Header.TextColor
		}
		if design.Header.BackgroundColor != "" {
			s.TitleBg = design.Header.BackgroundColor
		}
	}

	if o := design.CardStyle; o != nil {
		overlay(&s, *o)
	}
	return s
}

// overlay applies the non-empty regions of over onto base.
func overlay(base *CardStyle, over CardStyle) {
	if over.Background != "" {
		base.Background = over.Background
	}
	if over.Border != "" {
		base.Border = over.Border
	}
	if over.TitleBg != "" {
		base.TitleBg = over.TitleBg
	}
	if over.TitleText != "" {
		base.TitleText = over.TitleText
	}
	if over.BodyText != "" {
		base.BodyText = over.BodyText
	}
	if over.Accent != "" {
		base.Accent = over.Accent
	}
	if over.ImageFrame != "" {
		base.ImageFrame = over.ImageFrame
	}
}

// ResolveFooter derives the footer strip appearance from the design and an
// already resolved style. Absent footer colors fall back to an accent tint
// so the strip stays legible on any background; both renderers must use
// this single fallback (the editor and the print layout once disagreed on
// it, which is the drift this function removes).
func ResolveFooter(design DesignSettings, resolved CardStyle) FooterStyle {
	f := FooterStyle{
		Background: resolved.Accent + "33",
		Text:       resolved.Accent,
		Visible:    design.FooterVisible(),
	}
	if design.Footer != nil {
		if design.Footer.BackgroundColor != "" {
			f.Background = design.Footer.BackgroundColor
		}
		if design.Footer.TextColor != "" {
			f.Text = design.Footer.TextColor
		}
	}
	return f
}
