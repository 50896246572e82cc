// Package projectconfig defines the immutable ProjectConfig record consumed by
// the scaffolding pipeline and the Resolver that builds it from command-line
// flags, configured defaults, and interactive answers.
//
// Cancellation during interactive resolution is reported through
// Resolution.Cancelled rather than through an error value.
package projectconfig
