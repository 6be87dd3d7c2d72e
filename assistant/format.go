package assistant

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatMoney renders an amount the way the UI shows it: no cents,
// thousands separated, "KSh 12,000".
func formatMoney(d decimal.Decimal) string {
	return "KSh " + groupThousands(d.Round(0).String())
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
