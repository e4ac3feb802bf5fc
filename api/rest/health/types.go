package health

import "context"

// Response represents the health check response
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// checks that the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
