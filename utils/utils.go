package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Round2 rounds to two decimals, the precision used across exports and
// responses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatGrade renders a grade the way snapshot files store it.
func FormatGrade(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// AgeAt returns full years elapsed between birth and ref.
func AgeAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// AcademicYearStart parses an academic year like "2025-2026" and returns
// 1 September of the opening year, the reference date for student ages.
func AcademicYearStart(year string) (time.Time, error) {
	parts := strings.SplitN(year, "-", 2)
	y, err := strconv.Atoi(parts[0])
	if err != nil || len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid academic year %q", year)
	}
	return time.Date(y, time.September, 1, 0, 0, 0, 0, time.UTC), nil
}
