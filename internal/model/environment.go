package model

import "strings"

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// ParseEnvironment falls back to development for unknown names.
func ParseEnvironment(s string) Environment {
	env := Environment(strings.ToLower(strings.TrimSpace(s)))
	switch env {
	case EnvironmentProduction, EnvironmentStaging:
		return env
	default:
		return EnvironmentDevelopment
	}
}
