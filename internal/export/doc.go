// Package export writes walkthrough reports to disk as indented JSON.
//
// Files are written to a temp file in the target directory and renamed into
// place, so a reader never sees a half-written report.
package export
