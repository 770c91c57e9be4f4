package convert_test

import (
	"bytes"
	"strings"
	"testing"

	"popon/internal/convert"
	"popon/internal/testsupport"
)

const sampleSCC = "Scenarist_SCC V1.0\n\n" +
	"00:00:01:00\t9420 9140 54e5 73f4 942f\n\n" +
	"00:00:03:00\t942c\n"

func TestRunWebVTT(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	opts := convert.OptionsFromConfig(cfg)

	var out bytes.Buffer
	result, err := convert.Run(strings.NewReader(sampleSCC), &out, opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.CueCount != 1 {
		t.Fatalf("CueCount = %d, want 1", result.CueCount)
	}
	if result.Duration <= 0 {
		t.Errorf("Duration = %v, want positive", result.Duration)
	}

	text := out.String()
	if !strings.HasPrefix(text, "WEBVTT") {
		t.Errorf("output missing WEBVTT header:\n%s", text)
	}
	if !strings.Contains(text, "Test") {
		t.Errorf("output missing caption text:\n%s", text)
	}
	if !strings.Contains(text, "-->") {
		t.Errorf("output missing cue timing:\n%s", text)
	}
}

func TestRunSRT(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFormat("srt"))
	opts := convert.OptionsFromConfig(cfg)

	var out bytes.Buffer
	result, err := convert.Run(strings.NewReader(sampleSCC), &out, opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.CueCount != 1 {
		t.Fatalf("CueCount = %d, want 1", result.CueCount)
	}

	text := out.String()
	if !strings.Contains(text, "1\n") {
		t.Errorf("output missing cue index:\n%s", text)
	}
	if !strings.Contains(text, "Test") {
		t.Errorf("output missing caption text:\n%s", text)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	opts := convert.OptionsFromConfig(cfg)
	opts.Format = "ass"

	if _, err := convert.Run(strings.NewReader(sampleSCC), &bytes.Buffer{}, opts); err == nil {
		t.Fatal("Run accepted unknown format")
	}
}

func TestRunRejectsBadStream(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	opts := convert.OptionsFromConfig(cfg)

	if _, err := convert.Run(strings.NewReader("not an scc file\n"), &bytes.Buffer{}, opts); err == nil {
		t.Fatal("Run accepted stream without magic header")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		source    string
		outputDir string
		format    string
		want      string
	}{
		{"/media/show.scc", "", "vtt", "/media/show.vtt"},
		{"/media/show.scc", "/out", "srt", "/out/show.srt"},
		{"show.scc", "", "vtt", "show.vtt"},
	}
	for _, tt := range tests {
		if got := convert.OutputPath(tt.source, tt.outputDir, tt.format); got != tt.want {
			t.Errorf("OutputPath(%q, %q, %q) = %q, want %q", tt.source, tt.outputDir, tt.format, got, tt.want)
		}
	}
}
