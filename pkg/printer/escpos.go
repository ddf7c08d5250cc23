package printer

import (
	"bytes"
)

// ESC/POS control bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Alignment arguments of ESC a
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size arguments of GS !
const (
	FontNormal = 0x00
	FontDouble = 0x11
)

// Document accumulates one ESC/POS print job. Methods chain.
type Document struct {
	buf   bytes.Buffer
	width int // characters per line: 32 on 58mm paper, 48 on 80mm
}

// NewDocument starts a job for a printer with the given line width,
// defaulting to 58mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.command(ESC, '@')
	return d
}

func (d *Document) command(b ...byte) *Document {
	d.buf.Write(b)
	return d
}

// Width returns the line width in characters
func (d *Document) Width() int {
	return d.width
}

func (d *Document) SetAlign(align int) *Document {
	return d.command(ESC, 'a', byte(align))
}

func (d *Document) SetBold(on bool) *Document {
	if on {
		return d.command(ESC, 'E', 1)
	}
	return d.command(ESC, 'E', 0)
}

func (d *Document) SetFontSize(size byte) *Document {
	return d.command(GS, '!', size)
}

func (d *Document) LineFeed() *Document {
	return d.command(LF)
}

func (d *Document) FeedLines(n int) *Document {
	for range n {
		d.buf.WriteByte(LF)
	}
	return d
}

// PartialCut leaves a tab so the receipt can be torn off cleanly
func (d *Document) PartialCut() *Document {
	return d.command(GS, 'V', 1)
}

// Bytes returns the job so far
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
