// Package timecode provides an SMPTE timecode value type with frame
// arithmetic, ordering, and conversions used across decoding and cue output.
//
// Timecodes carry their frame rate so arithmetic and seconds conversion never
// need out-of-band context. Drop-frame timecodes (semicolon frame separator)
// apply the standard two-frames-per-minute correction, skipping every tenth
// minute.
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Rate describes a timecode frame rate.
type Rate struct {
	FPS       float64
	DropFrame bool
}

// Standard broadcast rates.
var (
	Rate2997NDF = Rate{FPS: 30000.0 / 1001.0}
	Rate2997DF  = Rate{FPS: 30000.0 / 1001.0, DropFrame: true}
	Rate30      = Rate{FPS: 30.0}
	Rate25      = Rate{FPS: 25.0}
	Rate24      = Rate{FPS: 24.0}
)

// nominal returns the integer frame count per nominal second.
func (r Rate) nominal() int64 {
	return int64(math.Round(r.FPS))
}

// Timecode is an instant expressed as a frame count at a fixed rate.
type Timecode struct {
	frames int64
	rate   Rate
}

var timecodePattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})([:;])(\d{2})$`)

// Parse reads an HH:MM:SS:FF timecode at the given rate. A semicolon before
// the frame field marks the value as drop-frame regardless of rate.DropFrame.
func Parse(value string, rate Rate) (Timecode, error) {
	m := timecodePattern.FindStringSubmatch(value)
	if m == nil {
		return Timecode{}, fmt.Errorf("timecode: malformed value %q", value)
	}
	hours, _ := strconv.ParseInt(m[1], 10, 64)
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	seconds, _ := strconv.ParseInt(m[3], 10, 64)
	frames, _ := strconv.ParseInt(m[5], 10, 64)
	if minutes > 59 || seconds > 59 {
		return Timecode{}, fmt.Errorf("timecode: field out of range in %q", value)
	}
	if m[4] == ";" {
		rate.DropFrame = true
	}

	nominal := rate.nominal()
	if frames >= nominal {
		return Timecode{}, fmt.Errorf("timecode: frame field %d exceeds rate in %q", frames, value)
	}

	total := (hours*3600+minutes*60+seconds)*nominal + frames
	if rate.DropFrame {
		totalMinutes := hours*60 + minutes
		total -= 2 * (totalMinutes - totalMinutes/10)
	}
	return Timecode{frames: total, rate: rate}, nil
}

// FromFrames builds a timecode directly from a frame count.
func FromFrames(frames int64, rate Rate) Timecode {
	return Timecode{frames: frames, rate: rate}
}

// Frames returns the absolute frame count.
func (t Timecode) Frames() int64 { return t.frames }

// Rate returns the frame rate the timecode was parsed at.
func (t Timecode) Rate() Rate { return t.rate }

// AddFrames returns the timecode advanced by n frames.
func (t Timecode) AddFrames(n int64) Timecode {
	return Timecode{frames: t.frames + n, rate: t.rate}
}

// AddSeconds returns the timecode advanced by the given duration in seconds.
func (t Timecode) AddSeconds(s float64) Timecode {
	return t.AddFrames(int64(math.Round(s * t.rate.FPS)))
}

// Seconds converts the timecode to elapsed seconds.
func (t Timecode) Seconds() float64 {
	if t.rate.FPS == 0 {
		return 0
	}
	return float64(t.frames) / t.rate.FPS
}

// Cmp orders two timecodes by frame count. Rates are assumed equal within one
// stream; comparison is by frame count only.
func (t Timecode) Cmp(other Timecode) int {
	switch {
	case t.frames < other.frames:
		return -1
	case t.frames > other.frames:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier than other.
func (t Timecode) Before(other Timecode) bool { return t.Cmp(other) < 0 }

// String renders the timecode in HH:MM:SS:FF form, using a semicolon frame
// separator for drop-frame values.
func (t Timecode) String() string {
	nominal := t.rate.nominal()
	if nominal == 0 {
		nominal = 30
	}
	frames := t.frames

	if t.rate.DropFrame {
		framesPerMinute := nominal*60 - 2
		framesPer10Minutes := framesPerMinute*10 + 2
		tens := frames / framesPer10Minutes
		rem := frames % framesPer10Minutes
		if rem > 1 {
			frames += 18*tens + 2*((rem-2)/framesPerMinute)
		} else {
			frames += 18 * tens
		}
	}

	ff := frames % nominal
	ss := (frames / nominal) % 60
	mm := (frames / (nominal * 60)) % 60
	hh := frames / (nominal * 3600)

	sep := ":"
	if t.rate.DropFrame {
		sep = ";"
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%02d", hh, mm, ss, sep, ff)
}

// FormatMillis renders the timecode as wall-clock HH:MM:SS.mmm, the shape cue
// timing lines use.
func (t Timecode) FormatMillis() string {
	total := t.Seconds()
	if total < 0 {
		total = 0
	}
	millis := int64(math.Round(total * 1000))
	hh := millis / 3600000
	mm := (millis / 60000) % 60
	ss := (millis / 1000) % 60
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hh, mm, ss, ms)
}
