package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false}, // leading digit below 6
		{"987654321", false},  // too short
		{"98765432101", false},
		{"98765abcde", false},
		{"919876543210", false}, // country prefix does not belong here
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMobile(tt.phone))
		})
	}
}

func TestIsValidMobileWithCountryCode(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"919876543210", true},
		{"916000000000", true},
		{"9876543210", false}, // missing prefix
		{"915876543210", false},
		{"91987654321", false},
		{"+919876543210", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMobileWithCountryCode(tt.phone))
		})
	}
}
