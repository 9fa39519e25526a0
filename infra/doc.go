// Package infra contains technical adapters such as the zerolog logger, the
// Prometheus and InfluxDB metrics sinks, the Sentry monitor and the problem
// file loader. These packages should depend only on the interfaces defined in
// the core packages.
package infra
