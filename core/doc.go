// Package core defines the shared types used across the syslogformat
// framework.
//
// It provides the Level type for severity ordering, the Entry type
// that represents a single log event, the Field type for structured
// key-value pairs, and the Traceback type that carries exception
// information (type name, message, stack frames) in a
// renderer-neutral form.
//
// Standard levels are spaced ten apart (DebugLevel=10, InfoLevel=20,
// ...) so that custom intermediate levels order correctly; every
// consumer compares levels with thresholds, never exact matches.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handler has consumed it. The pool
// pre-allocates the Fields slice with capacity 8, which covers most
// log calls without triggering a slice growth.
package core
