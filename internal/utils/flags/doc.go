// Package flags provides pflag values for yes/no toggles with aliases and for
// flags restricted to a fixed set of choices.
package flags
