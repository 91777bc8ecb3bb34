// Package prometheus renders clubadmin client metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [clubadmin.Client] and exposes an [http.Handler]
// that renders all counters and histograms. Counter names are prefixed
// clubadmin_*_total; the single histogram is clubadmin_request_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry; callers mount the Handler.
//   - Mutate client state.
package prometheus
