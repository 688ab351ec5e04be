package adder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync/atomic"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AdderModule provides the add service via RequestReplyService.
type AdderModule struct {
	adder *Adder
	calls atomic.Int64
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*AdderModule)(nil)
	_ mono.ServiceProviderModule = (*AdderModule)(nil)
	_ mono.HealthCheckableModule = (*AdderModule)(nil)
)

// NewModule creates a new AdderModule printing results to w (stdout when nil).
func NewModule(w io.Writer) *AdderModule {
	return &AdderModule{adder: New(w)}
}

// Name returns the module name.
func (m *AdderModule) Name() string {
	return "adder"
}

// RegisterServices registers request-reply services in the service container.
// "add" is exposed as "services.adder.add".
func (m *AdderModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add", json.Unmarshal, json.Marshal, m.add,
	); err != nil {
		return fmt.Errorf("failed to register add service: %w", err)
	}

	log.Printf("[adder] Registered services: services.adder.add")
	return nil
}

// Health reports the module status.
func (m *AdderModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"calls": m.calls.Load(),
		},
	}
}

// Start initializes the adder module.
func (m *AdderModule) Start(_ context.Context) error {
	log.Println("[adder] Module started successfully")
	return nil
}

// Stop gracefully stops the adder module.
func (m *AdderModule) Stop(_ context.Context) error {
	log.Printf("[adder] Module stopped after %d calls", m.calls.Load())
	return nil
}
