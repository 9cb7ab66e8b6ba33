package model

import "testing"

func TestFormatTimeLabel(t *testing.T) {
	tests := []struct {
		positionMs int64
		durationMs int64
		expected   string
	}{
		{0, 0, "00:00 / 00:00"},
		{5000, 65000, "00:05 / 01:05"},
		{999, 65000, "00:00 / 01:05"},
		{59999, 3599999, "00:59 / 59:59"},
		{0, 3600000, "00:00:00 / 01:00:00"},
		{3661000, 7323000, "01:01:01 / 02:02:03"},
		{5000, 3600000, "00:00:05 / 01:00:00"},
		{-10, 65000, "00:00 / 01:05"},
	}

	for _, test := range tests {
		result := FormatTimeLabel(test.positionMs, test.durationMs)
		if result != test.expected {
			t.Errorf("FormatTimeLabel(%d, %d) = %s, expected %s",
				test.positionMs, test.durationMs, result, test.expected)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		ms        int64
		withHours bool
		expected  string
	}{
		{0, false, "00:00"},
		{30000, false, "00:30"},
		{90000, false, "01:30"},
		{90000, true, "00:01:30"},
		{3600000, true, "01:00:00"},
	}

	for _, test := range tests {
		result := FormatClock(test.ms, test.withHours)
		if result != test.expected {
			t.Errorf("FormatClock(%d, %v) = %s, expected %s", test.ms, test.withHours, result, test.expected)
		}
	}
}
