package adder

import (
	"context"
	"log"

	"github.com/go-monolith/mono"
)

// add handles the adder.add service request.
func (m *AdderModule) add(_ context.Context, req AddRequest, _ *mono.Msg) (AddResponse, error) {
	result, err := m.adder.Add(req.A, req.B)
	if err != nil {
		log.Printf("[adder] Rejected request %s: %v", req.RequestID, err)
		return AddResponse{
			RequestID: req.RequestID,
			Error:     err.Error(),
		}, nil // Return error in response, not as Go error
	}

	m.calls.Add(1)

	return AddResponse{
		RequestID: req.RequestID,
		Variant:   result.Variant,
		Sum:       result.Sum,
		Line:      result.Line(),
	}, nil
}
