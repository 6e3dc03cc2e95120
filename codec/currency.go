package codec

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	formbind "github.com/reoring/formbind"
)

// Currency displays amounts as symbol-prefixed, grouped, fixed-decimal text
// ("$1,234.50") and stores the bare digits ("1234.50").
func Currency(symbol string, decimals int) formbind.Transform {
	if decimals < 0 {
		decimals = 2
	}
	return &currencyTransform{
		symbol:  symbol,
		format:  "%." + strconv.Itoa(decimals) + "f",
		printer: message.NewPrinter(language.English),
	}
}

type currencyTransform struct {
	symbol  string
	format  string
	printer *message.Printer
}

func (c *currencyTransform) Read(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.ReplaceAll(s, c.symbol, "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func (c *currencyTransform) Write(v any) any {
	f, ok := toFloat(v)
	if !ok {
		return v
	}
	if f < 0 {
		return "-" + c.symbol + c.printer.Sprintf(c.format, -f)
	}
	return c.symbol + c.printer.Sprintf(c.format, f)
}
