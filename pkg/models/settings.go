package models

// Settings represents the application configuration
type Settings struct {
	API APISettings `yaml:"api"`
	UI  UISettings  `yaml:"ui"`
}

// APISettings points the client at the condominium backend
type APISettings struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// UISettings controls UI preferences
type UISettings struct {
	CompactCards bool `yaml:"compact_cards"` // stacked cards instead of a table
	PageSize     int  `yaml:"page_size"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL: "http://localhost:8000/api",
		},
		UI: UISettings{
			CompactCards: false,
			PageSize:     10,
		},
	}
}
