package guest

import "time"

type Guest struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	NationalID  string    `json:"nationalId"`
	Nationality string    `json:"nationality"`
	CountryFlag string    `json:"countryFlag,omitempty"`
}
