package model

import "testing"

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"production", EnvironmentProduction},
		{" Production ", EnvironmentProduction},
		{"staging", EnvironmentStaging},
		{"development", EnvironmentDevelopment},
		{"", EnvironmentDevelopment},
		{"qa", EnvironmentDevelopment},
	}

	for _, tt := range tests {
		if got := ParseEnvironment(tt.in); got != tt.want {
			t.Errorf("ParseEnvironment(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
