package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestIsValidScore(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		scale ScaleType
		want  bool
	}{
		{"z lower bound", -4, ScaleZ, true},
		{"z upper bound", 4, ScaleZ, true},
		{"z below", -4.01, ScaleZ, false},
		{"z above", 5, ScaleZ, false},
		{"s10 lower bound", 1, ScaleS10, true},
		{"s10 upper bound", 19, ScaleS10, true},
		{"s10 zero", 0, ScaleS10, false},
		{"s10 twenty", 20, ScaleS10, false},
		{"s100 lower bound", 40, ScaleS100, true},
		{"s100 upper bound", 160, ScaleS100, true},
		{"s100 39", 39, ScaleS100, false},
		{"s100 161", 161, ScaleS100, false},
		{"s100 typical", 78, ScaleS100, true},
		{"unknown scale", 10, ScaleType("T"), false},
		{"empty scale", 0, ScaleType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidScore(tt.value, tt.scale))
		})
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		score float64
		scale ScaleType
		want  Band
	}{
		{115, ScaleS100, BandVeryHigh},
		{114.9, ScaleS100, BandHigh},
		{110, ScaleS100, BandHigh},
		{90, ScaleS100, BandAverage},
		{89, ScaleS100, BandAverage},
		{80, ScaleS100, BandLow},
		{78, ScaleS100, BandVeryLow},
		{40, ScaleS100, BandVeryLow},
		{13, ScaleS10, BandVeryHigh},
		{11, ScaleS10, BandHigh},
		{8, ScaleS10, BandAverage},
		{6, ScaleS10, BandLow},
		{5, ScaleS10, BandVeryLow},
		{1.5, ScaleZ, BandVeryHigh},
		{1, ScaleZ, BandHigh},
		{-1, ScaleZ, BandAverage},
		{-1.5, ScaleZ, BandLow},
		{-1.6, ScaleZ, BandVeryLow},
		{100, ScaleType("IQ"), BandUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.scale)+"/"+string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, Interpret(tt.score, tt.scale))
		})
	}
}
