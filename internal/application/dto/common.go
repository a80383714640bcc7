package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeletedResponse cantidad de registros eliminados.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// StatsResponse contadores del sistema.
type StatsResponse struct {
	Users     int64 `json:"users"`
	Clients   int64 `json:"clients"`
	Movements int64 `json:"movements"`
	Payments  int64 `json:"payments"`
}
