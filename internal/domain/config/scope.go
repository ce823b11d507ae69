package config

import (
	"errors"
	"fmt"
)

// Scope identifies where a template lives in the account hierarchy.
// The ordering project < org < account governs visibility: a template
// registered at a broader scope is visible at every narrower scope.
type Scope string

// Scope constants.
const (
	ScopeProject Scope = "project"
	ScopeOrg     Scope = "org"
	ScopeAccount Scope = "account"
)

// ErrInvalidScope reports an unknown scope value.
var ErrInvalidScope = errors.New("invalid scope")

// ParseScope parses a scope string.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeProject, ScopeOrg, ScopeAccount:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
}

// IsValid reports whether the scope is one of the known values.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeProject, ScopeOrg, ScopeAccount:
		return true
	default:
		return false
	}
}

// Level returns the numeric position in the scope ordering:
// project (0) < org (1) < account (2). Unknown scopes return -1.
func (s Scope) Level() int {
	switch s {
	case ScopeProject:
		return 0
	case ScopeOrg:
		return 1
	case ScopeAccount:
		return 2
	default:
		return -1
	}
}

// String returns the scope as a string.
func (s Scope) String() string {
	return string(s)
}
