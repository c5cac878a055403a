package model

import "testing"

func TestTrimNameSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Deebo Samuel Sr.", expected: "Deebo Samuel"},
		{input: "Brian Robinson Jr.", expected: "Brian Robinson"},
		{input: "Allen Robinson II", expected: "Allen Robinson"},
		{input: "Tyler Lockett", expected: "Tyler Lockett"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if r := TrimNameSuffix(tc.input); r != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, r)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	p := &Player{ID: "6904", FirstName: "Jalen", LastName: "Hurts", Position: POS_QB}
	if n := p.FullName(); n != "Jalen Hurts" {
		t.Errorf("expected 'Jalen Hurts', got %q", n)
	}
}
