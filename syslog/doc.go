// Package syslog provides the RFC 3164 facility, severity and
// priority codes and the mapping from log levels to severities.
//
// Only the numeric PRI model lives here. The full RFC 3164 message
// format (HEADER with timestamp and hostname, network transport) is
// out of scope; formatters render the PRI prefix followed directly by
// the message content.
//
// Facility codes are validated once at configuration time via
// Facility.Validate and never clamped or wrapped afterwards. The
// level-to-severity mapping in SeverityOf is total over all level
// values, so formatting never fails on an unknown level.
package syslog
