package request

type StartSessionRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required,uuid4"`
}

type ToggleSeatRequest struct {
	Label string `json:"label" validate:"required,min=2,max=3"`
}

// RetreatRequest names the earlier step to go back to: review or seat_pick.
type RetreatRequest struct {
	Step string `json:"step" validate:"required,oneof=review seat_pick"`
}

type CommitBookingRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=esewa khalti card cash"`
}
