package main

import (
	"testing"
)

func TestValidateRequirement(t *testing.T) {
	tests := []struct {
		input string
		err   bool
	}{
		{"", false}, // empty ends the loop
		{"requests", false},
		{"requests>=2.31", false},
		{"uvicorn[standard]", false},
		{"  PyQt6 >= 6.7  ", false},
		{">=2.0", true},
		{"[extra]", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateRequirement(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("validateRequirement(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
		})
	}
}
