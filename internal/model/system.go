package model

// VersionInfo contains version and feature information for the application.
type VersionInfo struct {
	AppVersion string          `json:"app_version"`
	DbVersion  string          `json:"db_version"`
	Source     string          `json:"recommendation_source"`
	Features   map[string]bool `json:"features"`
}
