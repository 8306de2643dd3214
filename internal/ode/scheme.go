package ode

import "strings"

// Scheme identifies one of the supported explicit single-step methods.
type Scheme int

const (
	Euler Scheme = iota
	Heun
	RK4
	// Unknown is the sentinel returned by ParseScheme for unrecognized
	// names. It is a valid parse result but not a valid scheme: the
	// steppers reject it with ErrUnknownScheme.
	Unknown
)

var schemeNames = map[Scheme]string{
	Euler: "Euler",
	Heun:  "Heun",
	RK4:   "RK4",
}

// ParseScheme matches name case-insensitively against the supported
// schemes. Anything else yields Unknown; parsing never fails.
func ParseScheme(name string) Scheme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euler":
		return Euler
	case "heun":
		return Heun
	case "rk4":
		return RK4
	}
	return Unknown
}

// String returns the canonical display name of a real scheme.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Stages reports how many vector-field evaluations the scheme performs
// per step, or 0 for Unknown.
func (s Scheme) Stages() int {
	if tab, ok := tableaus[s]; ok {
		return tab.stages()
	}
	return 0
}

// Schemes lists the real schemes in order of ascending accuracy.
func Schemes() []Scheme {
	return []Scheme{Euler, Heun, RK4}
}
