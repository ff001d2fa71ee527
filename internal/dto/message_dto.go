package dto

// EmailJobMessage is the payload queued for the email worker.
type EmailJobMessage struct {
	Kind         string `json:"kind"` // booking_confirmation | booking_cancellation | waiver_signing_link | waiver_confirmation
	ToEmail      string `json:"to_email"`
	Reference    string `json:"reference,omitempty"`
	ActivityName string `json:"activity_name,omitempty"`
	Slot         string `json:"slot,omitempty"`
	RefundNote   string `json:"refund_note,omitempty"`
	Participant  string `json:"participant,omitempty"`
	WaiverCode   string `json:"waiver_code,omitempty"`
}
