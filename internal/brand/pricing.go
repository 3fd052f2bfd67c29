package brand

import (
	"github.com/dustin/go-humanize"
)

// FormatAmount renders an integer peso amount with symbol and currency code,
// e.g. "$665 MXN". Card prices use it.
func (p Pricing) FormatAmount(amount int) string {
	return p.CurrencySymbol + humanize.Comma(int64(amount)) + " " + p.Currency
}

// FormatPrice is FormatAmount with the " + IVA" suffix when taxes are not included.
func (p Pricing) FormatPrice(amount int) string {
	formatted := p.FormatAmount(amount)
	if !p.TaxIncluded {
		return formatted + " + IVA"
	}

	return formatted
}

// FormatPrice formats amount with the default pricing settings.
func FormatPrice(amount int) string {
	return Default().Pricing.FormatPrice(amount)
}
