// Package transform converts raw decoder snapshots into timed, positioned
// caption trees with minimal nested style nodes.
//
// Each grid row is split into chunks (maximal runs of occupied cells), each
// chunk becomes one cue, and the chunk's character styles are folded into a
// deterministic tree: properties that stay in effect longer nest further
// out, so visually continuous spans are never split needlessly.
package transform

import (
	"math"

	"popon/internal/caption"
	"popon/internal/cea608"
)

// DefaultTailSeconds ends a caption still on screen when the stream runs
// out.
const DefaultTailSeconds = 5.0

// Captions walks raw snapshots in order and produces closed cues. Empty
// input yields empty output.
func Captions(raw []cea608.RawCaption) ([]caption.Caption, error) {
	return CaptionsTail(raw, DefaultTailSeconds)
}

// CaptionsTail is Captions with an explicit tail duration for captions
// still on screen at stream end.
func CaptionsTail(raw []cea608.RawCaption, tailSeconds float64) ([]caption.Caption, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var result []caption.Caption
	var open []caption.Caption

	for _, entry := range raw {
		if entry.Grid == nil || len(open) > 0 {
			for _, cue := range open {
				cue.End = entry.Timecode
				result = append(result, cue)
			}
			open = open[:0]
		}
		if entry.Grid == nil {
			continue
		}
		for _, ch := range chunks(entry.Grid) {
			pos, err := position(ch.row, ch.col)
			if err != nil {
				return nil, err
			}
			content, err := buildTree(ch.cells)
			if err != nil {
				return nil, err
			}
			open = append(open, caption.Caption{
				Start:    entry.Timecode,
				Position: pos,
				Align:    caption.AlignStart,
				Content:  content,
			})
		}
	}

	if len(open) > 0 {
		rate := raw[0].Timecode.Rate()
		last := raw[len(raw)-1].Timecode
		end := last.AddFrames(int64(math.Round(tailSeconds * rate.FPS)))
		for _, cue := range open {
			cue.End = end
			result = append(result, cue)
		}
	}

	return result, nil
}

type chunk struct {
	row   int
	col   int
	cells []cea608.Cell
}

// chunks collects the maximal runs of occupied cells in every grid row,
// top to bottom, left to right.
func chunks(g *cea608.Grid) []chunk {
	var out []chunk
	for row := 0; row < cea608.GridRows; row++ {
		col := 0
		for col < cea608.GridCols {
			if !g.At(row, col).Set {
				col++
				continue
			}
			start := col
			var cells []cea608.Cell
			for col < cea608.GridCols && g.At(row, col).Set {
				cells = append(cells, g.At(row, col))
				col++
			}
			out = append(out, chunk{row: row, col: start, cells: cells})
		}
	}
	return out
}

// position maps a grid coordinate to a normalized screen position. The
// constants bake in the safe-title margins of a 16:9 frame: the grid spans
// the middle 80% each way, and the 4:3 caption area is centered in the wide
// frame.
func position(row, col int) (caption.Position, error) {
	x := (float64(col)/float64(cea608.GridCols)*0.8+0.1)*0.75 + 0.125
	y := float64(row)/float64(cea608.GridRows)*0.8 + 0.1
	return caption.NewPosition(x, y)
}
