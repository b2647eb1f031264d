// Package responder renders controller results and routing failures. Errors
// are written as RFC 9457 problem documents with a trace id that is also
// attached to the log record, so a client report can be matched to a log line.
package responder
