// Package naming normalizes free-form project names into identifiers that are
// safe to use both as a directory name and as an npm package name.
package naming
