// Package captest contains a check runner that is similar to Go's testing
// package, but is run as regular Go application code rather than Go tests.
// The verification harness uses it to run log-expectation checks with
// filtering, captured debug output, and result reporting; it can also host
// the capture assertions directly, since *T satisfies the same minimal test
// interface as *testing.T.
package captest
