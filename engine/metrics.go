package engine

import (
	"math"
	"strconv"
)

// Metrics are the key-metric panel values for one filtered view.
type Metrics struct {
	Count              int     `json:"count"`
	Delta              int     `json:"delta"` // count minus unfiltered total, always <= 0
	DistinctCategories int     `json:"distinct_categories"`
	AvgLaunchYear      float64 `json:"avg_launch_year"`
	HasAvg             bool    `json:"has_avg"`
	AvgLabel           string  `json:"avg_label"`
	TotalFunding       float64 `json:"total_funding"`
	FundingLabel       string  `json:"funding_label"`
}

// Aggregate computes summary statistics over the base view. total is the
// unfiltered dataset size, used for the delta metric.
func Aggregate(v View, total int) Metrics {
	m := Metrics{
		Count: v.Len(),
		Delta: v.Len() - total,
	}

	categories := make(map[string]bool)
	yearSum := 0
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		categories[r.Category] = true
		yearSum += r.LaunchYear
		m.TotalFunding += r.Funding
	}
	m.DistinctCategories = len(categories)
	m.FundingLabel = formatCurrency(m.TotalFunding)

	if v.Len() == 0 {
		m.AvgLabel = "no data"
		return m
	}
	m.AvgLaunchYear = math.Round(float64(yearSum)/float64(v.Len())*10) / 10
	m.HasAvg = true
	m.AvgLabel = strconv.FormatFloat(m.AvgLaunchYear, 'f', 1, 64)
	return m
}

// formatCurrency renders a dollar amount rounded to whole units with
// comma thousands separators, e.g. 1234567.8 -> "$1,234,568".
func formatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, d)
	}
	if neg {
		return "-$" + string(b)
	}
	return "$" + string(b)
}
