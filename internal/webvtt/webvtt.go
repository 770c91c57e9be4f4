// Package webvtt renders caption cues as a WebVTT document.
package webvtt

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"popon/internal/caption"
)

// Write renders cues as a complete WebVTT file.
func Write(w io.Writer, cues []caption.Caption) error {
	var b strings.Builder
	b.WriteString("WEBVTT\n")
	for _, cue := range cues {
		b.WriteString("\n")
		b.WriteString(cue.Start.FormatMillis())
		b.WriteString(" --> ")
		b.WriteString(cue.End.FormatMillis())
		if settings := cueSettings(cue); settings != "" {
			b.WriteString(" ")
			b.WriteString(settings)
		}
		b.WriteString("\n")
		b.WriteString(norm.NFC.String(renderNode(cue.Content)))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// cueSettings maps a cue's position and alignment to WebVTT cue settings.
func cueSettings(cue caption.Caption) string {
	var parts []string
	switch {
	case cue.Position.IsTop():
		parts = append(parts, "line:10%")
	case cue.Position.IsBottom():
		parts = append(parts, "line:90%")
	default:
		x, y, ok := cue.Position.Coords()
		if ok {
			parts = append(parts,
				fmt.Sprintf("position:%d%%", int(x*100+0.5)),
				fmt.Sprintf("line:%d%%", int(y*100+0.5)),
			)
		}
	}
	parts = append(parts, "align:"+alignToken(cue.Align))
	return strings.Join(parts, " ")
}

// alignToken maps the model's alignment names onto WebVTT cue-setting
// tokens, which spell the middle value "center".
func alignToken(a caption.Alignment) string {
	if a == caption.AlignMiddle {
		return "center"
	}
	return a.String()
}

func renderNode(n *caption.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case caption.KindText:
		return escape(n.Text)
	case caption.KindRoot:
		return renderChildren(n)
	case caption.KindItalics:
		return "<i>" + renderChildren(n) + "</i>"
	case caption.KindUnderline:
		return "<u>" + renderChildren(n) + "</u>"
	case caption.KindFlash:
		return "<c.flash>" + renderChildren(n) + "</c>"
	case caption.KindColor:
		return "<c." + n.Color.String() + ">" + renderChildren(n) + "</c>"
	default:
		return renderChildren(n)
	}
}

func renderChildren(n *caption.Node) string {
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(renderNode(child))
	}
	return b.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}
