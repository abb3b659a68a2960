package render

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PlainNumber prints v in its shortest exact form, as in "1234.5".
func PlainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GroupedNumber returns a formatter that groups thousands for lang,
// as in "1,234,567" for English.
func GroupedNumber(lang language.Tag) func(float64) string {
	p := message.NewPrinter(lang)
	return func(v float64) string {
		return p.Sprintf("%v", number.Decimal(v))
	}
}
