package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single readiness check against a backing service.
const DefaultTimeout = 5 * time.Second

// Status is a component's reported health.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of checking one dependency.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker verifies one backing service the gateway depends on.
type Checker interface {
	// Name identifies the dependency in readiness output.
	Name() string
	Check(ctx context.Context) Result
}
