package profile

// SummaryResponse is the public view of another player's profile.
// It never carries the profile id, which doubles as the owner's session id.
type SummaryResponse struct {
	AccountID int64  `json:"aid"`
	Nickname  string `json:"Nickname"`
	Side      string `json:"Side"`
	Level     int    `json:"Level"`
}

// StatusEntry describes one of the caller's profiles in a status response
type StatusEntry struct {
	ProfileID    string  `json:"profileid"`
	ProfileToken *string `json:"profileToken"`
	Status       string  `json:"status"`
	SID          string  `json:"sid"`
	IP           string  `json:"ip"`
	Port         int     `json:"port"`
}

// StatusResponse is returned by the profile status route
type StatusResponse struct {
	MaxPveCountExceeded bool           `json:"maxPveCountExceeded"`
	Profiles            []*StatusEntry `json:"profiles"`
}

// StatusEntries lists the caller's scav and pmc profiles, both free to queue
func (i *Identity) StatusEntries() []*StatusEntry {
	return []*StatusEntry{
		{ProfileID: "scav" + i.ProfileID, Status: "Free"},
		{ProfileID: "pmc" + i.ProfileID, Status: "Free"},
	}
}

// ToSummary converts an Identity to its public summary
func (i *Identity) ToSummary() *SummaryResponse {
	return &SummaryResponse{
		AccountID: i.AccountID,
		Nickname:  i.PMC.Nickname,
		Side:      i.PMC.Side,
		Level:     i.PMC.Level,
	}
}
