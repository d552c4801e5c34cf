package api

// Endpoints maps the backend's path suffixes. The backend owns these; the
// client consumes them as an opaque contract.
type Endpoints struct {
	Auth         string
	Faculty      string
	Appointments string
	Complaints   string
	Health       string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Auth:         "/auth",
		Faculty:      "/faculty",
		Appointments: "/appointments",
		Complaints:   "/complaints",
		Health:       "/health",
	}
}
