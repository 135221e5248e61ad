package value

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleFormatter renders numbers for the configured display locale.
// Trailing zero decimals are collapsed (1.0 renders as "1", 1.50 as
// "1.5") and the decimal separator follows the locale, not a fixed dot.
type LocaleFormatter struct {
	printer *message.Printer
}

// NewLocaleFormatter creates a formatter for the given BCP 47 locale.
// An unparsable locale falls back to English.
func NewLocaleFormatter(locale string) *LocaleFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &LocaleFormatter{printer: message.NewPrinter(tag)}
}

// Float renders a float with minimal fraction digits. Grouping
// separators are suppressed so formatted output stays parseable by the
// save path (round-trip consistency for range fields).
func (f *LocaleFormatter) Float(v float64) string {
	return f.printer.Sprint(number.Decimal(v,
		number.NoSeparator(),
		number.MinFractionDigits(0),
		number.MaxFractionDigits(6),
	))
}

// Int renders an integer with no decimal part.
func (f *LocaleFormatter) Int(v int64) string {
	return f.printer.Sprint(number.Decimal(v,
		number.NoSeparator(),
		number.MaxFractionDigits(0),
	))
}
