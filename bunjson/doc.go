// Package bunjson renders events as newline-delimited JSON in the
// Bunyan log record convention (https://github.com/trentm/node-bunyan).
// Each event becomes one self-contained JSON object on one line:
//
//	{"msg":"request handled","level":"INFO","time":"2022-...","event":"request","target":"app.handler","line":88,"file":"handler.go","status":200,"request_id":"abc-123"}
//
// The "msg", "level", and "time" fields always come from the layer
// itself; caller-supplied fields with those names are dropped with a
// notice on the diagnostic channel. The record's message is the
// event's "message" field when that field holds a string, otherwise
// the event's target.
//
// The layer is deliberately fail-quiet: a record that cannot be
// serialized or written is dropped after reporting through the error
// reporter. Logging never disrupts the instrumented application.
package bunjson
