package models

// Vehicle represents a registered vehicle
type Vehicle struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
