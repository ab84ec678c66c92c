package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			HistoryPath: "inputs/BrowserHistory.json",
			Format:      "takeout",
		},
		Analysis: AnalysisConfig{
			CapSeconds:      0,
			Policy:          "global",
			DenylistDomains: DefaultDenylistDomains(),
		},
		Export: ExportConfig{
			Dir:    "exports",
			Format: "csv",
		},
	}
}
