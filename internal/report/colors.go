package report

import (
	"ledger/internal/category"
	"ledger/internal/core"
)

// Chart colors are enumerated per currency rather than shared, so each
// currency tab keeps a distinct look for the same category label.
var categoryColors = map[core.Currency]map[string]string{
	core.CNY: {
		category.Food:          "#1677ff",
		category.Transport:     "#13c2c2",
		category.Shopping:      "#52c41a",
		category.Housing:       "#722ed1",
		category.Entertainment: "#eb2f96",
		category.Medical:       "#fa8c16",
		category.Transfer:      "#f5222d",
		category.Placeholder:   "#595959",
	},
	core.HKD: {
		category.Food:          "#fa8c16",
		category.Transport:     "#b37feb",
		category.Shopping:      "#fadb14",
		category.Housing:       "#2f54eb",
		category.Entertainment: "#13c2c2",
		category.Medical:       "#73d13d",
		category.Transfer:      "#d4380d",
		category.Placeholder:   "#595959",
	},
	core.USDT: {
		category.Food:          "#1677ff",
		category.Transport:     "#13c2c2",
		category.Shopping:      "#52c41a",
		category.Housing:       "#722ed1",
		category.Entertainment: "#eb2f96",
		category.Medical:       "#fa8c16",
		category.Transfer:      "#f5222d",
		category.Placeholder:   "#595959",
	},
}

// fallbackPalette colors labels that are not in the currency map, e.g.
// explicit user-supplied categories outside the resolver's set.
var fallbackPalette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#AF19FF", "#FF1919"}

// CategoryColor returns the chart color for a label under the given
// currency. Unknown labels rotate through the fallback palette by slice
// index so adjacent slices stay distinguishable.
func CategoryColor(currency core.Currency, label string, index int) string {
	if m, ok := categoryColors[currency]; ok {
		if c, ok := m[label]; ok {
			return c
		}
	}
	return fallbackPalette[index%len(fallbackPalette)]
}
