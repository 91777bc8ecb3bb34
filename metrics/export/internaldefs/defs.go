package internaldefs

import (
	clubadmin "github.com/easyvoley/clubadmin"
)

// CounterDef names one client counter for the exporters.
type CounterDef struct {
	ID   clubadmin.MetricID
	Name string
	Help string
}

// HistogramDef names one client histogram for the exporters.
type HistogramDef struct {
	ID   clubadmin.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter, in a stable order.
var CounterDefs = []CounterDef{
	{ID: clubadmin.MetricRequestSuccess, Name: "clubadmin_request_success_total", Help: "API requests answered 2xx."},
	{ID: clubadmin.MetricRequestFailure, Name: "clubadmin_request_failure_total", Help: "API requests answered non-2xx, non-401."},
	{ID: clubadmin.MetricRequestUnauthorized, Name: "clubadmin_request_unauthorized_total", Help: "API requests answered 401."},
	{ID: clubadmin.MetricTransportError, Name: "clubadmin_transport_error_total", Help: "API requests that never produced a response."},
	{ID: clubadmin.MetricLoginSuccess, Name: "clubadmin_login_success_total", Help: "Successful logins and registrations."},
	{ID: clubadmin.MetricLoginFailure, Name: "clubadmin_login_failure_total", Help: "Rejected logins and registrations."},
	{ID: clubadmin.MetricLogout, Name: "clubadmin_logout_total", Help: "Explicit logouts."},
	{ID: clubadmin.MetricForcedLogout, Name: "clubadmin_forced_logout_total", Help: "Sessions dropped after a 401."},
	{ID: clubadmin.MetricRestoreSuccess, Name: "clubadmin_restore_success_total", Help: "Restored sessions."},
	{ID: clubadmin.MetricRestoreFailure, Name: "clubadmin_restore_failure_total", Help: "Restore attempts that ended unauthenticated."},
}

// HistogramDefs lists every exported histogram, in a stable order.
var HistogramDefs = []HistogramDef{
	{ID: clubadmin.MetricRequestLatency, Name: "clubadmin_request_latency_seconds", Help: "API request round-trip latency histogram."},
}

// HistogramBounds are the upper bucket bounds, matching the core registry.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are the bounds as instrument-name-safe suffixes.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
