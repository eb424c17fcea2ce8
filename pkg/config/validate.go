// Package config holds the game settings and the injectable dependencies
// the game runs against.
package config

// ValidatableConfig ...
type ValidatableConfig interface {
	Validate() []error
}

// Validate collects the errors of all given configs.
func Validate(cfgs ...ValidatableConfig) []error {
	var out []error

	for _, cfg := range cfgs {
		out = append(out, cfg.Validate()...)
	}

	return out
}
