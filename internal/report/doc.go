// Package report prints the end-of-run summary: the accepted record count
// first, then every diagnostic grouped by severity.
package report
