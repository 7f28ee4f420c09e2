package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const svcTimeout = 5 * time.Second

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatNumber renders d the way the vi-VN locale does ("8.500", "1.234,5").
func FormatNumber(d decimal.Decimal) string {
	if d.IsInteger() {
		return vnPrinter.Sprint(number.Decimal(d.IntPart()))
	}

	return vnPrinter.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}

// FormatCount renders an integer count with vi-VN grouping.
func FormatCount(n int) string {
	return vnPrinter.Sprint(number.Decimal(n))
}

// SvcCtx returns a context with a standard timeout for service calls.
func SvcCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), svcTimeout)
}
