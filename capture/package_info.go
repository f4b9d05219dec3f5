// Package capture implements scoped log capture: it temporarily redirects a
// logger's output sink to an in-memory buffer for the duration of a function
// call, then returns or asserts against the captured text. The original sink
// is restored on every exit path, including a panic in the function.
//
// Any logger whose output destination can be read and replaced can be
// captured; the subpackages stdlogcap, zerologcap, zapcap, and slogcap adapt
// the common logging backends to the Target interface.
package capture
