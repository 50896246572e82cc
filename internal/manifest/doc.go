// Package manifest rewrites the package.json and webflow.json files of a
// freshly cloned template.
//
// Documents are edited as ordered top-level objects so that fields the
// scaffolder does not touch keep their values and their position. The
// webflow.json result is checked against an embedded JSON schema before it is
// written back.
package manifest
