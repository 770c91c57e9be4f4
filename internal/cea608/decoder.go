package cea608

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"popon/internal/timecode"
)

// Magic is the mandatory first line of a Scenarist SCC file.
const Magic = "Scenarist_SCC V1.0"

// RawCaption is one visible change of the caption display: the timecode at
// which the foreground grid changed and the grid itself. A nil Grid means the
// display was cleared.
type RawCaption struct {
	Timecode timecode.Timecode
	Grid     *Grid
}

var wordPattern = regexp.MustCompile(`^[0-9a-fA-F]{4}$`)

type cursor struct {
	row   int
	col   int
	style CharStyle
}

func (c *cursor) setRow(row int) {
	if row < 0 {
		row = 0
	}
	if row > GridRows-1 {
		row = GridRows - 1
	}
	c.row = row
}

func (c *cursor) setCol(col int) {
	if col < 0 {
		col = 0
	}
	if col > GridCols-1 {
		col = GridCols - 1
	}
	c.col = col
}

func (c *cursor) advance() {
	c.setCol(c.col + 1)
}

type decoder struct {
	rate        timecode.Rate
	checkParity bool

	fg          *Grid
	bg          *Grid
	cur         cursor
	channel     int
	lastCommand uint16
	now         timecode.Timecode

	out []RawCaption
}

// Decode reads a complete SCC stream and returns one RawCaption per visible
// change of the caption display. rate is the video frame rate the stream's
// timecodes refer to; with checkParity enabled, a byte failing its odd-parity
// check aborts the decode with a ParityError.
func Decode(r io.Reader, rate timecode.Rate, checkParity bool) ([]RawCaption, error) {
	d := &decoder{
		rate:        rate,
		checkParity: checkParity,
		fg:          NewGrid(),
		bg:          NewGrid(),
		cur:         cursor{style: DefaultStyle()},
		now:         timecode.FromFrames(0, rate),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read scc: %w", err)
		}
		return nil, &FormatError{Line: 1, Msg: "empty stream, expected magic line"}
	}
	lineNo++
	if strings.TrimRight(scanner.Text(), "\r") != Magic {
		return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("expected magic line %q", Magic)}
	}

	var prevLine timecode.Timecode
	seenData := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, &FormatError{Line: lineNo, Msg: "expected <timecode>\\t<words>"}
		}

		tc, err := timecode.Parse(fields[0], d.rate)
		if err != nil {
			return nil, &FormatError{Line: lineNo, Msg: err.Error()}
		}
		if seenData && tc.Before(prevLine) {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("timecode %s earlier than previous line", fields[0])}
		}
		prevLine = tc
		seenData = true
		// A line timecode may land inside the frames already consumed by
		// the previous line's words; the clock never moves backwards.
		if d.now.Before(tc) {
			d.now = tc
		}

		for _, word := range strings.Split(fields[1], " ") {
			if !wordPattern.MatchString(word) {
				return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("malformed word %q", word)}
			}
			value, _ := strconv.ParseUint(word, 16, 16)
			err := d.word(byte(value>>8), byte(value), lineNo, word)
			// Time advances one frame per word even when the word kills
			// the decode.
			d.now = d.now.AddFrames(1)
			if err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scc: %w", err)
	}

	return d.out, nil
}

func (d *decoder) word(b1, b2 byte, lineNo int, word string) error {
	if d.checkParity {
		if bits.OnesCount8(b1)%2 == 0 || bits.OnesCount8(b2)%2 == 0 {
			return &ParityError{Line: lineNo, Word: word}
		}
	}
	hi := b1 & 0x7f
	lo := b2 & 0x7f

	if hi >= 0x20 {
		// Two basic characters; null bytes are fillers.
		if d.channel == 0 {
			d.printChar(hi)
			d.printChar(lo)
		}
		d.lastCommand = 0
		return nil
	}

	d.command(hi, lo)
	return nil
}

func (d *decoder) printChar(code byte) {
	if code < 0x20 {
		return
	}
	d.insert(standardChar(code), d.cur.style)
}

func (d *decoder) insert(r rune, style CharStyle) {
	d.bg.SetCell(d.cur.row, d.cur.col, r, style)
	d.cur.advance()
}

func (d *decoder) command(hi, lo byte) {
	word := uint16(hi)<<8 | uint16(lo)
	if word == d.lastCommand {
		// Commands are transmitted twice for robustness; drop the double.
		// Resetting the tracker keeps the suppression from chaining, so a
		// third identical word executes again.
		d.lastCommand = 0
		return
	}
	d.lastCommand = word

	d.channel = int(hi>>3) & 1
	if d.channel != 0 {
		return
	}
	hi &= 0xf7

	switch {
	case hi == 0x11 && lo >= 0x30 && lo <= 0x3f:
		d.specialChar(lo)
	case (hi == 0x12 || hi == 0x13) && lo >= 0x20 && lo <= 0x3f:
		d.extendedChar(hi, lo)
	case lo >= 0x40 && hi >= 0x10 && hi <= 0x17:
		d.preamble(hi, lo)
	case hi == 0x11 && lo >= 0x20 && lo <= 0x2f:
		d.midRow(lo)
	case hi == 0x14 && lo >= 0x20 && lo <= 0x2f:
		d.control(lo)
	case hi == 0x17 && lo >= 0x21 && lo <= 0x23:
		d.cur.setCol(d.cur.col + int(lo&0x03))
	default:
		// Unknown or unsupported (roll-up, paint-on, text mode); skip.
	}
}

func (d *decoder) specialChar(lo byte) {
	if lo == transparentSpace {
		// Transparent space leaves the cell empty but still occupies a
		// column.
		d.bg.ClearCell(d.cur.row, d.cur.col)
		d.cur.advance()
		return
	}
	if r, ok := specialChars[lo]; ok {
		d.insert(r, d.cur.style)
	}
}

func (d *decoder) extendedChar(hi, lo byte) {
	r, ok := extendedChars[[2]byte{hi, lo}]
	if !ok {
		return
	}
	// The extended character replaces the basic fallback transmitted just
	// before it.
	if d.cur.col > 0 {
		d.cur.setCol(d.cur.col - 1)
		d.bg.ClearCell(d.cur.row, d.cur.col)
	}
	d.insert(r, d.cur.style)
}

// pacBaseRow maps a PAC high byte to its base caption row; the 0x20 bit of
// the low byte selects the next row down.
var pacBaseRow = map[byte]int{
	0x10: 10,
	0x11: 0,
	0x12: 2,
	0x13: 11,
	0x14: 13,
	0x15: 4,
	0x16: 6,
	0x17: 8,
}

func (d *decoder) preamble(hi, lo byte) {
	row := pacBaseRow[hi]
	if lo&0x20 != 0 {
		row++
	}
	d.cur.setRow(row)

	d.cur.style.Italics = false
	d.cur.style.Flash = false
	d.cur.style.Underline = lo&0x01 != 0

	field := int(lo&0x1e) >> 1
	if field >= 8 {
		// Indent PAC: column in steps of four, always white.
		d.cur.setCol((field - 8) * 4)
		d.cur.style.Color = ColorWhite
		return
	}
	// Style PACs address the start of the row.
	d.cur.setCol(0)
	if field == 7 {
		d.cur.style.Italics = true
		d.cur.style.Color = ColorWhite
		return
	}
	if color, ok := ColorByCode(field); ok {
		d.cur.style.Color = color
	}
}

func (d *decoder) midRow(lo byte) {
	// A mid-row code occupies a cell, rendered as a space in the style that
	// was in effect before it.
	previous := d.cur.style
	d.insert(' ', previous)

	d.cur.style.Underline = lo&0x01 != 0
	d.cur.style.Flash = false
	field := int(lo&0x0e) >> 1
	if field == 7 {
		d.cur.style.Italics = true
		return
	}
	if color, ok := ColorByCode(field); ok {
		d.cur.style.Color = color
	}
}

func (d *decoder) control(lo byte) {
	switch lo {
	case 0x20: // resume caption loading; pop-on is all we decode
	case 0x21: // backspace
		if d.cur.col > 0 {
			d.cur.setCol(d.cur.col - 1)
			d.bg.ClearCell(d.cur.row, d.cur.col)
		}
	case 0x24: // delete to end of row
		d.bg.ClearToRowEnd(d.cur.row, d.cur.col)
	case 0x28: // flash on
		d.insert(' ', d.cur.style)
		d.cur.style.Flash = true
	case 0x2c: // erase displayed memory
		d.fg = NewGrid()
		d.emit()
	case 0x2e: // erase non-displayed memory
		d.bg = NewGrid()
	case 0x2f: // end of caption: flip the composed grid on screen
		d.fg, d.bg = d.bg, d.fg
		d.emit()
	default:
		// Carriage return and roll-up/paint-on mode switches land here;
		// not supported, not an error.
	}
}

// emit appends a snapshot when the foreground differs from the last emitted
// grid. An empty foreground is stored as a nil grid ("display cleared").
func (d *decoder) emit() {
	var snapshot *Grid
	if !d.fg.Empty() {
		snapshot = d.fg.Clone()
	}
	if len(d.out) > 0 {
		last := d.out[len(d.out)-1].Grid
		if last == nil && snapshot == nil {
			return
		}
		if last != nil && snapshot != nil && last.Equal(snapshot) {
			return
		}
	}
	d.out = append(d.out, RawCaption{Timecode: d.now, Grid: snapshot})
}
