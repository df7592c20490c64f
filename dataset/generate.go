package dataset

import (
	"fmt"
	"math/rand"
)

const (
	generateSeed  = 42
	generateCount = 100
)

// generateCategories is the fixed label set for synthetic data.
var generateCategories = []string{
	"AI/ML", "Web Development", "Mobile App", "Data Science",
	"Blockchain", "IoT", "Game Dev", "AR/VR",
}

// Generate builds the synthetic fallback dataset. The seed is fixed, so
// repeated calls produce identical data.
func Generate() *Dataset {
	rng := rand.New(rand.NewSource(generateSeed))

	records := make([]Record, generateCount)
	for i := range records {
		records[i] = Record{
			Title:       fmt.Sprintf("Project %d", i+1),
			Category:    generateCategories[rng.Intn(len(generateCategories))],
			Description: fmt.Sprintf("Description for project %d", i+1),
			X:           rng.NormFloat64() * 10,
			Y:           rng.NormFloat64() * 10,
			Z:           rng.NormFloat64() * 5,
			LaunchYear:  2018 + rng.Intn(7), // [2018, 2024]
			TeamSize:    1 + rng.Intn(19),   // [1, 19]
			Funding:     rng.Float64() * 1_000_000,
			SuccessRate: 0.1 + rng.Float64()*0.9,
		}
	}

	return New(records, "synthetic")
}
