package dto

import "time"

type CreateCampaignRequest struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Message string `json:"message"`
}

type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}
