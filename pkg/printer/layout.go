package printer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Receipt columns right of the item name
const (
	qtyColumn    = 4
	amountColumn = 8
)

// Text writes s and ends the line
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

func (d *Document) TextF(format string, args ...any) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Centered writes one centered line and returns to left alignment
func (d *Document) Centered(s string) *Document {
	return d.SetAlign(AlignCenter).Text(s).SetAlign(AlignLeft)
}

// Separator fills one line with char
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue puts key at the left margin and value at the right one:
// "TOTAL:                 Rs 750.00"
func (d *Document) KeyValue(key, value string) *Document {
	gap := max(d.width-utf8.RuneCountInString(key)-utf8.RuneCountInString(value), 1)
	return d.Text(key + strings.Repeat(" ", gap) + value)
}

// Row writes an item line with right-aligned quantity and amount columns.
// Names longer than the remaining width are cut.
// "Chicken (Half)         2  300.00"
func (d *Document) Row(name, qty, amount string) *Document {
	nameWidth := max(d.width-qtyColumn-amountColumn, 1)
	return d.Text(padRight(truncate(name, nameWidth), nameWidth) +
		padLeft(qty, qtyColumn) +
		padLeft(amount, amountColumn))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func padRight(s string, n int) string {
	return s + strings.Repeat(" ", max(n-utf8.RuneCountInString(s), 0))
}

func padLeft(s string, n int) string {
	return strings.Repeat(" ", max(n-utf8.RuneCountInString(s), 0)) + s
}
