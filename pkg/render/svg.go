package render

import (
	"bytes"
	"fmt"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

// rx converts a CSS radius like "8px" into an SVG length attribute value.
func rx(radius string) string {
	return strings.TrimSuffix(radius, "px")
}

type svgRect struct {
	rect
	Fill        string
	Stroke      string
	StrokeWidth float64
	Rx          string
	Region      string // style region this element is colored by, "" for chrome
}

func writeRect(buf *bytes.Buffer, r svgRect) {
	buf.WriteString("  <rect")
	writeRegionAttrs(buf, r.Region)
	fmt.Fprintf(buf, ` x="%.1f" y="%.1f" width="%.1f" height="%.1f"`, r.X, r.Y, r.W, r.H)
	if r.Rx != "" && r.Rx != "0" {
		fmt.Fprintf(buf, ` rx=%q`, r.Rx)
	}
	if r.Fill != "" {
		fmt.Fprintf(buf, ` fill=%q`, r.Fill)
	} else {
		buf.WriteString(` fill="none"`)
	}
	if r.Stroke != "" {
		fmt.Fprintf(buf, ` stroke=%q stroke-width="%.1f"`, r.Stroke, r.StrokeWidth)
	}
	buf.WriteString("/>\n")
}

type svgText struct {
	X, Y   float64
	Text   string
	Fill   string
	Size   string
	Font   string
	Anchor string // "", "middle", or "end"
	Region string
}

func writeText(buf *bytes.Buffer, t svgText) {
	buf.WriteString("  <text")
	writeRegionAttrs(buf, t.Region)
	fmt.Fprintf(buf, ` x="%.1f" y="%.1f" fill=%q font-size=%q font-family=%q`,
		t.X, t.Y, t.Fill, t.Size, escape(t.Font))
	if t.Anchor != "" {
		fmt.Fprintf(buf, ` text-anchor=%q`, t.Anchor)
	}
	fmt.Fprintf(buf, ">%s</text>\n", escape(t.Text))
}

func writeRegionAttrs(buf *bytes.Buffer, region string) {
	if region != "" {
		fmt.Fprintf(buf, ` class="region" data-region=%q`, region)
	}
}

func writeImage(buf *bytes.Buffer, r rect, href string) {
	fmt.Fprintf(buf, `  <image x="%.1f" y="%.1f" width="%.1f" height="%.1f" href=%q preserveAspectRatio="xMidYMid slice"/>`+"\n",
		r.X, r.Y, r.W, r.H, escape(href))
}
