// Package types defines the Record and Kind domain types and the standard
// error values for the worklog record store.
package types
