// Package capio contains the low-level output plumbing that the rest of the
// toolkit is built on: a minimal Logger interface for debug output, and a
// CapturingLogger that records everything written to it so that a check
// scope's output can be shown later (for instance, only if the check failed).
//
// The general model is:
//
// 1. Components that produce diagnostic output take a capio.Logger rather
// than writing to a stream directly, so the caller decides where output goes.
//
// 2. A check scope owns a CapturingLogger; when the scope has nested scopes,
// output written to the parent is routed to the active child so that shared
// setup output appears in the record of the check it belongs to.
//
// 3. When a scope finishes, the captured output is handed to a reporter which
// can render it with a prefix and timestamps, or discard it.
package capio
