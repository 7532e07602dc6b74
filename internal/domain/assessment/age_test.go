package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInYears(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		asOf  time.Time
		want  int
	}{
		{"birthday not reached", date(2015, 3, 15), date(2024, 1, 20), 8},
		{"birthday passed", date(2015, 3, 15), date(2024, 4, 1), 9},
		{"on birthday", date(2015, 3, 15), date(2024, 3, 15), 9},
		{"day before birthday", date(2015, 3, 15), date(2024, 3, 14), 8},
		{"born this year", date(2024, 1, 2), date(2024, 6, 1), 0},
		{"same day", date(2024, 6, 1), date(2024, 6, 1), 0},
		{"future birth clamps to zero", date(2025, 1, 1), date(2024, 6, 1), 0},
		{"leap day in non-leap year before mar 1", date(2016, 2, 29), date(2023, 2, 28), 6},
		{"leap day in non-leap year on mar 1", date(2016, 2, 29), date(2023, 3, 1), 7},
		{"leap day in leap year", date(2016, 2, 29), date(2024, 2, 29), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeInYears(tt.birth, tt.asOf))
		})
	}
}

func TestAgeInYears_IgnoresTimeOfDay(t *testing.T) {
	birth := date(2015, 3, 15)
	asOf := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 9, AgeInYears(birth, asOf))

	asOf = time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 8, AgeInYears(birth, asOf))
}
