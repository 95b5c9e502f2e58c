/*
Package observability provides Prometheus instrumentation for the dynurl engine.

Metrics subscribes to the engine lifecycle hooks and counts resolutions per
strategy and outcome, plus rewrites and their latency.
*/
package observability
