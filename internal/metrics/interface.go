package metrics

import "time"

type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementAuthOperations(operation string, success bool)
	IncrementPostOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
