package style

import "testing"

func TestResolveEmptyIsDefaults(t *testing.T) {
	got := Resolve(DesignSettings{})
	if got != Defaults() {
		t.Errorf("Resolve(zero) = %+v, want defaults %+v", got, Defaults())
	}
}

func TestResolveCompleteness(t *testing.T) {
	// Every region must come out non-empty for any sparse input.
	inputs := []DesignSettings{
		{},
		{BackgroundColor: "#000000"},
		{TextColor: "#abcabc"},
		{Header: &HeaderSettings{}},
		{Footer: &FooterSettings{}},
		{CardStyle: &CardStyle{Accent: "#123456"}},
		{TextSize: "bogus", FontFamily: "bogus"},
	}
	for _, in := range inputs {
		s := Resolve(in)
		for _, r := range Regions {
			if s.Get(r) == "" {
				t.Errorf("Resolve(%+v): region %q is empty", in, r)
			}
		}
	}
}

func TestResolveOverrideWinsOverLegacy(t *testing.T) {
	s := Resolve(DesignSettings{
		BackgroundColor: "#222222",
		CardStyle:       &CardStyle{Background: "#111111"},
	})
	if s.Background != "#111111" {
		t.Errorf("background = %q, want override #111111", s.Background)
	}
}

func TestResolveLegacyFields(t *testing.T) {
	tests := []struct {
		name   string
		design DesignSettings
		check  func(CardStyle) (got, want string)
	}{
		{
			name:   "backgroundColor maps to background",
			design: DesignSettings{BackgroundColor: "#010203"},
			check:  func(s CardStyle) (string, string) { return s.Background, "#010203" },
		},
		{
			name:   "textColor maps to bodyText",
			design: DesignSettings{TextColor: "#abcabc"},
			check:  func(s CardStyle) (string, string) { return s.BodyText, "#abcabc" },
		},
		{
			name:   "textColor falls through to titleText",
			design: DesignSettings{TextColor: "#abcabc"},
			check:  func(s CardStyle) (string, string) { return s.TitleText, "#abcabc" },
		},
		{
			name: "header textColor beats textColor for titleText",
			design: DesignSettings{
				TextColor: "#abcabc",
				Header:    &HeaderSettings{TextColor: "#fedcba"},
			},
			check: func(s CardStyle) (string, string) { return s.TitleText, "#fedcba" },
		},
		{
			name:   "header backgroundColor maps to titleBg",
			design: DesignSettings{Header: &HeaderSettings{BackgroundColor: "#303030"}},
			check:  func(s CardStyle) (string, string) { return s.TitleBg, "#303030" },
		},
		{
			name:   "header textColor does not touch bodyText",
			design: DesignSettings{Header: &HeaderSettings{TextColor: "#fedcba"}},
			check:  func(s CardStyle) (string, string) { return s.BodyText, Defaults().BodyText },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.check(Resolve(tt.design)); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	designs := []DesignSettings{
		{},
		{BackgroundColor: "#222222", TextColor: "#eeeeee"},
		{
			Header:    &HeaderSettings{BackgroundColor: "#101010", TextColor: "#fafafa"},
			CardStyle: &CardStyle{Accent: "#00ff00", Border: "#ff0000"},
		},
	}
	for _, d := range designs {
		s1 := Resolve(d)
		s2 := Resolve(DesignSettings{CardStyle: &s1})
		if s1 != s2 {
			t.Errorf("resolve not idempotent for %+v: %+v != %+v", d, s1, s2)
		}
	}
}

func TestFooterVisible(t *testing.T) {
	f := false
	tr := true
	tests := []struct {
		name   string
		design DesignSettings
		want   bool
	}{
		{"no footer", DesignSettings{}, true},
		{"footer without flag", DesignSettings{Footer: &FooterSettings{}}, true},
		{"explicit true", DesignSettings{Footer: &FooterSettings{Visible: &tr}}, true},
		{"explicit false", DesignSettings{Footer: &FooterSettings{Visible: &f}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.design.FooterVisible(); got != tt.want {
				t.Errorf("FooterVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveFooter(t *testing.T) {
	resolved := Resolve(DesignSettings{})

	// Accent tint fallback when nothing is authored.
	f := ResolveFooter(DesignSettings{}, resolved)
	if f.Background != Defaults().Accent+"33" {
		t.Errorf("footer background = %q, want accent tint", f.Background)
	}
	if f.Text != Defaults().Accent {
		t.Errorf("footer text = %q, want accent", f.Text)
	}
	if !f.Visible {
		t.Error("footer should default to visible")
	}

	// Authored colors win.
	design := DesignSettings{Footer: &FooterSettings{
		BackgroundColor: "#202020",
		TextColor:       "#d0d0d0",
	}}
	f = ResolveFooter(design, resolved)
	if f.Background != "#202020" || f.Text != "#d0d0d0" {
		t.Errorf("footer = %+v, want authored colors", f)
	}
}
