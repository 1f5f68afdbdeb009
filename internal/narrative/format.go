package narrative

import (
	"fmt"
	"math"

	"github.com/nao1215/marketupdate/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Trillion is the divisor used for rupiah amounts printed as "Rp… T".
const Trillion = 1e12

// Trend returns the Indonesian word for a market direction.
func Trend(d model.Direction) string {
	if d == model.Up {
		return "naik"
	}
	return "turun"
}

// RupiahTrend describes a USD/IDR move. A higher rate is a weaker rupiah.
func RupiahTrend(change float64) string {
	if change > 0 {
		return "melemah"
	}
	return "menguat"
}

// Grouped formats v with the given number of decimals and English thousands
// separators, e.g. Grouped(16250, 0) = "16,250".
func Grouped(v float64, decimals int) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// Trillions formats a rupiah amount as "Rp350.00 T".
func Trillions(v float64) string {
	return fmt.Sprintf("Rp%.2f T", v/Trillion)
}

// abs is math.Abs, kept short for the templates.
func abs(v float64) float64 {
	return math.Abs(v)
}
