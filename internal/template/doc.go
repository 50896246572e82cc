// Package template downloads the starter project archive and materializes it
// into the target directory.
//
// A template source has the form owner/repository#reference. The archive is
// fetched from a codeload-style endpoint, decompressed with klauspost/compress
// and extracted with the leading archive directory removed.
package template
