package rating

import (
	"fmt"

	"freetoolz-blueprint/internal/models"
)

const (
	baseValue = 4.80
	baseCount = 120
)

// Rate derives a display rating from a seed. Value stays within
// [4.80, 4.99] and Count within [120, 199].
func Rate(seed int) models.Rating {
	return models.Rating{
		Value: fmt.Sprintf("%.2f", baseValue+float64(mod(seed, 20))/100),
		Count: baseCount + mod(seed, 80),
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
