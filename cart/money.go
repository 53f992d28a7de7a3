package cart

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats amounts in one fixed currency and locale.
type Money struct {
	symbol string
	group  string
	point  string
}

// NewMoney returns a formatter that prefixes amounts with symbol and groups
// digits the way tag does.
func NewMoney(tag language.Tag, symbol string) Money {
	group, point := separators(message.NewPrinter(tag))
	return Money{symbol: symbol, group: group, point: point}
}

// USD formats amounts as US dollars, e.g. "$1,234.50".
func USD() Money {
	return NewMoney(language.AmericanEnglish, "$")
}

// separators reads the grouping and decimal separators off a sample the
// printer formats. A locale without grouping yields an empty group.
func separators(p *message.Printer) (group, point string) {
	var seps []string
	var cur strings.Builder
	for _, r := range p.Sprintf("%.2f", 1234.5) {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				seps = append(seps, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(seps) {
	case 2:
		return seps[0], seps[1]
	case 1:
		return "", seps[0]
	default:
		return ",", "."
	}
}

// Format rounds amount to cents and renders it with the currency symbol.
// Digits come from the decimal itself, so any total prints exactly.
func (m Money) Format(amount decimal.Decimal) string {
	if m.point == "" {
		m = USD()
	}
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + m.symbol + groupDigits(whole, m.group) + m.point + frac
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
