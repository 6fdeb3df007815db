package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WakeupScheduledMailData struct {
	RoomNumber string `json:"roomNumber"`
	CallDate   string `json:"callDate"`
	CallTime   string `json:"callTime"`
	LoggedBy   string `json:"loggedBy"`
}

type NewAccountMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}
