// Package packagemanager maps a JavaScript package manager to the binaries and
// arguments the scaffolder runs through it: the one-off package runner used for
// the linter initializer, the install invocation, and the availability probe.
package packagemanager
