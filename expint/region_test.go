package expint

import "testing"

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		x    float64
		want region
	}{
		{-1000, largeNeg},
		{-40, largeNeg},
		{-39.999, moderateNeg},
		{-1, moderateNeg},
		{-0.999, nearZeroNeg},
		{-1e-300, nearZeroNeg},
		{1e-300, nearZeroPos},
		{10, nearZeroPos},
		{10.001, moderatePos},
		{40, moderatePos},
		{40.001, largePos},
		{1e10, largePos},
	}
	for _, tt := range tests {
		if got := cfg.classify(tt.x); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestClassifyCustomThreshold(t *testing.T) {
	cfg := Config{AsymptoticThreshold: 100}.normalized()
	tests := []struct {
		x    float64
		want region
	}{
		{-60, moderateNeg},
		{-100, largeNeg},
		{60, moderatePos},
		{101, largePos},
	}
	for _, tt := range tests {
		if got := cfg.classify(tt.x); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
