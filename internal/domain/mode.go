package domain

import "fmt"

// Mode selects what a rebrand run does with its results.
type Mode string

const (
	// ModeApply rewrites files unless dry-run is requested.
	ModeApply Mode = "apply"
	// ModeLintStrings reports only, then runs the regression command.
	ModeLintStrings Mode = "lint-strings"
	// ModeValidate reports only, fails on residual legacy tokens, then runs the regression command.
	ModeValidate Mode = "validate"
)

// ValidModes enumerates all recognized modes.
var ValidModes = []Mode{ModeApply, ModeLintStrings, ModeValidate}

// ParseMode maps a flag value to a Mode. Empty means apply.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeApply, nil
	}
	for _, m := range ValidModes {
		if Mode(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: apply, lint-strings, validate)", ErrInvalidMode, s)
}

// ForcesDryRun reports whether the mode never writes.
func (m Mode) ForcesDryRun() bool {
	return m == ModeLintStrings || m == ModeValidate
}

// RunsRegression reports whether the mode ends with the regression command.
func (m Mode) RunsRegression() bool {
	return m == ModeLintStrings || m == ModeValidate
}
