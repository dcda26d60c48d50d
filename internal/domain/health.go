package domain

// HealthStatus is the payload returned by the backend's GET /health.
type HealthStatus struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
}
