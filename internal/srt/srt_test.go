package srt

import (
	"strings"
	"testing"

	"popon/internal/caption"
	"popon/internal/cea608"
	"popon/internal/timecode"
)

func TestWriteBasic(t *testing.T) {
	start, err := timecode.Parse("00:00:01:00", timecode.Rate30)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	end, err := timecode.Parse("00:00:03:00", timecode.Rate30)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	content := caption.NewRoot(
		caption.NewText("plain "),
		caption.NewItalics(caption.NewText("slanted")),
		caption.NewText("\n"),
		caption.NewColor(cea608.ColorRed, caption.NewText("second line")),
	)
	cue := caption.Caption{Start: start, End: end, Position: caption.PositionBottom, Align: caption.AlignMiddle, Content: content}

	var b strings.Builder
	if err := Write(&b, []caption.Caption{cue}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "00:00:01,000 --> 00:00:03,000") {
		t.Errorf("timing line missing: %q", got)
	}
	if !strings.Contains(got, "plain <i>slanted</i>") {
		t.Errorf("first line missing: %q", got)
	}
	if !strings.Contains(got, "second line") {
		t.Errorf("second line missing: %q", got)
	}
	if strings.Contains(got, "<c.") {
		t.Errorf("color markup should not survive SRT output: %q", got)
	}
}
