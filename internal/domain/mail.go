package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type BookingConfirmedMailData struct {
	FullName   string `json:"fullName"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	NumPersons int32  `json:"numPersons"`
}

type BookingRejectedMailData struct {
	FullName      string `json:"fullName"`
	StartTime     string `json:"startTime"`
	NumPersons    int32  `json:"numPersons"`
	SuggestedTime string `json:"suggestedTime"`
}
