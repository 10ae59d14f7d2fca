package response

import (
	"atelier-store/internal/usecase/commands"
)

type SweepResponse struct {
	Expired  int `json:"expired"`
	Released int `json:"released"`
	Errors   int `json:"errors"`
}

func FromSweepSummary(s commands.SweepSummary) *SweepResponse {
	return &SweepResponse{
		Expired:  s.Expired,
		Released: s.Released,
		Errors:   s.Errors,
	}
}
