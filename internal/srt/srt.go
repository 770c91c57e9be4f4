// Package srt renders caption cues as SubRip text through go-astisub.
package srt

import (
	"io"
	"strings"
	"time"

	"github.com/asticode/go-astisub"

	"popon/internal/caption"
)

// Write renders cues as an SRT file. SRT has no positioning, so only timing,
// text, and italics/underline markup survive.
func Write(w io.Writer, cues []caption.Caption) error {
	subs := astisub.NewSubtitles()
	for _, cue := range cues {
		item := &astisub.Item{
			StartAt: secondsToDuration(cue.Start.Seconds()),
			EndAt:   secondsToDuration(cue.End.Seconds()),
		}
		for _, lineText := range strings.Split(renderNode(cue.Content), "\n") {
			item.Lines = append(item.Lines, astisub.Line{
				Items: []astisub.LineItem{{Text: lineText}},
			})
		}
		subs.Items = append(subs.Items, item)
	}
	return subs.WriteToSRT(w)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func renderNode(n *caption.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case caption.KindText:
		return n.Text
	case caption.KindItalics:
		return "<i>" + renderChildren(n) + "</i>"
	case caption.KindUnderline:
		return "<u>" + renderChildren(n) + "</u>"
	default:
		// Root, Color, Flash: SRT has no equivalent markup, keep the text.
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
