package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}
