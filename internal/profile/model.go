package profile

// Character is the summary of one playable character on a profile
type Character struct {
	Nickname       string  `json:"Nickname"`
	Side           string  `json:"Side"`
	Level          int     `json:"Level"`
	MemberCategory int     `json:"MemberCategory"`
	SavageLockTime float64 `json:"SavageLockTime"`
}

// Identity is what the party core needs to know about an account
type Identity struct {
	ProfileID string    `json:"_id"`
	AccountID int64     `json:"aid"`
	Edition   string    `json:"edition"`
	PMC       Character `json:"pmc"`
	Scav      Character `json:"scav"`
}
