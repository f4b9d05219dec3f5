// Package harness runs log expectations against real program output. It is the
// standalone counterpart of the in-process capture assertions: a YAML suite
// file describes commands to run (or log files to read) and the messages that
// must or must not appear in their output.
package harness
