package api

// RouteRequest is the JSON body for POST /api/v1/route. Endpoints are given
// either as coordinates or as catalog point-of-interest names; a name takes
// precedence over the coordinate pair when both are set.
type RouteRequest struct {
	Start     LatLngJSON `json:"start"`
	End       LatLngJSON `json:"end"`
	StartName string     `json:"start_name,omitempty"`
	EndName   string     `json:"end_name,omitempty"`
	Profile   string     `json:"profile"`
}

// LatLngJSON represents a lat/lng pair in JSON.
type LatLngJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteResponse is the JSON response for a successful route query.
type RouteResponse struct {
	Profile         string       `json:"profile"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationMinutes float64      `json:"duration_minutes"`
	StepCount       int          `json:"step_count"`
	Strides         int          `json:"strides,omitempty"`
	Geometry        []LatLngJSON `json:"geometry"`
	Color           string       `json:"color,omitempty"`
	Advisory        string       `json:"advisory,omitempty"`
}

// ProfileJSON describes one mobility profile in GET /api/v1/profiles.
type ProfileJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Advisory    string `json:"advisory,omitempty"`
}

// POIJSON describes one catalog entry in GET /api/v1/pois.
type POIJSON struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	NumNodes    uint32 `json:"num_nodes"`
	NumEdges    uint32 `json:"num_edges"`
	NumProfiles int    `json:"num_profiles"`
	NumPOIs     int    `json:"num_pois"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
