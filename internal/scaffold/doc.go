// Package scaffold materializes a resolved ProjectConfig into a project
// directory: it clones the template, rewrites the manifests, and runs the
// package manager, linter initializer and git in a fixed order.
//
// Every step failure is fatal and surfaces as one of the exported sentinel
// errors, except for git initialization which is only reported.
package scaffold
