// Package filesystem adapts operating system file access for the scaffolder.
package filesystem
