package models

// Shopper is the single local user of the app. There are no accounts;
// this profile is hard-coded and stamped onto every order.
type Shopper struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	MemberID string `json:"memberId"`
}

// DefaultShopper is the demo profile.
var DefaultShopper = Shopper{
	Name:     "Scrooge McDuck",
	Email:    "profit@moneybin.duckburg",
	Phone:    "(555) NUM-1-DIME",
	MemberID: "RICHEST-DUCK-001",
}
