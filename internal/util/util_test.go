package util

import (
	"math"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "two decimals", value: 41.2906, expected: "41.29%"},
		{name: "negative", value: -5, expected: "-5.00%"},
		{name: "nan", value: math.NaN(), expected: "N/A"},
		{name: "inf", value: math.Inf(1), expected: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPercent(tt.value); got != tt.expected {
				t.Fatalf("FormatPercent(%v) = %s, want %s", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	if got := FormatMoney(1417.95); got != "$1417.95" {
		t.Fatalf("FormatMoney = %s", got)
	}
	if got := FormatMoney(math.NaN()); got != NotAvailable {
		t.Fatalf("FormatMoney(NaN) = %s", got)
	}
}

func TestFinite(t *testing.T) {
	t.Parallel()

	if Finite(math.NaN()) != nil {
		t.Fatal("Finite(NaN) should be nil")
	}
	if v := Finite(2.5); v == nil || *v != 2.5 {
		t.Fatal("Finite(2.5) should point to 2.5")
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Checksum(nil); got != emptySHA256 {
		t.Fatalf("Checksum(nil) = %s", got)
	}
}
