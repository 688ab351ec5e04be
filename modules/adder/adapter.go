package adder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
)

// AdderPort is the consumer-side view of the add service.
type AdderPort interface {
	Add(ctx context.Context, a, b Operand) (*AddResponse, error)
}

// adderAdapter wraps ServiceContainer for type-safe calls to the adder module.
type adderAdapter struct {
	container mono.ServiceContainer
}

// NewAdderAdapter creates a new adapter for adder services.
func NewAdderAdapter(container mono.ServiceContainer) AdderPort {
	if container == nil {
		panic("adder adapter requires non-nil ServiceContainer")
	}
	return &adderAdapter{container: container}
}

// Add sums a and b via the add service.
func (a *adderAdapter) Add(ctx context.Context, x, y Operand) (*AddResponse, error) {
	req := AddRequest{RequestID: uuid.NewString(), A: x, B: y}
	var resp AddResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"add",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("add service call failed: %w", err)
	}
	return &resp, nil
}

// Run executes seq in order through port, stopping at the first failure.
func Run(ctx context.Context, port AdderPort, seq []Call) error {
	for i, c := range seq {
		resp, err := port.Add(ctx, c.A, c.B)
		if err != nil {
			return fmt.Errorf("call %d: %w", i+1, err)
		}
		if resp.Error != "" {
			return fmt.Errorf("call %d: %s", i+1, resp.Error)
		}
	}
	return nil
}
