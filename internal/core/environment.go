package core

import "strings"

// Environment is where the storefront runs. It picks the log format and level.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether logs should be JSON at info level.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment accepts the full names case-insensitively plus the
// short forms prod, stage, test and dev. Anything else is Development.
func ParseEnvironment(v string) Environment {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	case "testing", "test":
		return Testing
	default:
		return Development
	}
}
