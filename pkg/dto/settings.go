package dto

import "github.com/google/uuid"

type UpsertServiceRequest struct {
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	Name      string     `json:"name"`
	Duration  int        `json:"duration"`
	Price     float64    `json:"price"`
}

type ServiceUpsertedResponse struct {
	ServiceID uuid.UUID `json:"service_id"`
}

type UpdateHoursRequest struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
	Closed  bool   `json:"closed"`
}
