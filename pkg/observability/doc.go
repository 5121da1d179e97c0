/*
Package observability provides tools for monitoring the magazine engine.

It includes Prometheus metrics fed by lifecycle hooks and a structured logging hook set for
tracing the frontier tick by tick.
*/
package observability
