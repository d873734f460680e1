package dto

import (
	"errors"
)

// EventRequest represents an event submitted over the API.
type EventRequest struct {
	Name     string            `json:"name"`
	Value    string            `json:"value"`
	Params   map[string]string `json:"params,omitempty"`
	Previous map[string]string `json:"previous,omitempty"`
}

// Validate validates the event request.
func (r *EventRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}

	return nil
}
