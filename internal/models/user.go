package models

// User is a registered user as returned to clients. The password never
// leaves the users service.
type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	DOB             Date     `json:"dob"`
	Email           string   `json:"email"`
	ProfilePhotoURL *string  `json:"profile_photo_url"`
	RiskProfile     *string  `json:"risk_profile"`
	MonthlyIncome   *float64 `json:"monthly_income"`
}

// UserAccount is the stored form of a user, including the credential.
type UserAccount struct {
	User     User   `json:"user"`
	Password string `json:"password"`
}
