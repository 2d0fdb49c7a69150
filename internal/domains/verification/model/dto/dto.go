package dto

import (
	"voyago/internal/domains/verification/model"
)

type StatusResponse struct {
	State            model.State `json:"state"`
	SecondsRemaining int         `json:"seconds_remaining"`
}

func (r *StatusResponse) FromCountdown(c model.Countdown) {
	r.State = c.State
	r.SecondsRemaining = c.SecondsRemaining
}

type ResendResponse struct {
	SecondsRemaining int `json:"seconds_remaining"`
}

type VerifyRequest struct {
	Code string `json:"code" validate:"required,numeric,len=6"`
}
