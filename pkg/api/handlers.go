package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"mime"
	"net/http"

	"access_router/pkg/gpx"
	"access_router/pkg/poi"
	"access_router/pkg/profile"
	"access_router/pkg/routing"
)

// Handlers holds the HTTP handlers and their dependencies. The catalog may
// be nil when no POI file was configured; name-based endpoints then reject
// named requests.
type Handlers struct {
	router   routing.Router
	profiles *profile.Registry
	catalog  *poi.Catalog
	stats    StatsResponse
}

// NewHandlers creates handlers with the given router, profile registry and
// optional POI catalog.
func NewHandlers(router routing.Router, profiles *profile.Registry, catalog *poi.Catalog, stats StatsResponse) *Handlers {
	return &Handlers{
		router:   router,
		profiles: profiles,
		catalog:  catalog,
		stats:    stats,
	}
}

// HandleRoute handles POST /api/v1/route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	route, prof, ok := h.route(w, r)
	if !ok {
		return
	}

	resp := RouteResponse{
		Profile:         route.Profile,
		DistanceMeters:  route.DistanceMeters,
		DurationMinutes: route.Duration.Minutes(),
		StepCount:       route.StepCount,
		Strides:         route.StrideEstimate,
		Geometry:        make([]LatLngJSON, len(route.Geometry)),
		Color:           prof.RouteColor,
		Advisory:        prof.Advisory,
	}
	for i, p := range route.Geometry {
		resp.Geometry[i] = LatLngJSON{Lat: p.Lat(), Lng: p.Lon()}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleRouteGPX handles POST /api/v1/route/gpx. Same request body as
// HandleRoute, but the response is a downloadable GPX track.
func (h *Handlers) HandleRouteGPX(w http.ResponseWriter, r *http.Request) {
	route, prof, ok := h.route(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/gpx+xml")
	w.Header().Set("Content-Disposition", `attachment; filename="route.gpx"`)

	name := fmt.Sprintf("%s route (%.0f m)", prof.Name, route.DistanceMeters)
	// Headers are already sent; an encode error here means the client
	// disconnected mid-download.
	_ = gpx.Write(w, name, route.Geometry)
}

// route decodes, validates and executes a route request, writing the error
// response itself on failure.
func (h *Handlers) route(w http.ResponseWriter, r *http.Request) (*routing.Route, profile.Profile, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return nil, profile.Profile{}, false
	}

	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return nil, profile.Profile{}, false
	}

	prof, err := h.profiles.Get(req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_profile", "profile")
		return nil, profile.Profile{}, false
	}

	start, ok := h.resolveEndpoint(w, req.Start, req.StartName, "start")
	if !ok {
		return nil, profile.Profile{}, false
	}
	end, ok := h.resolveEndpoint(w, req.End, req.EndName, "end")
	if !ok {
		return nil, profile.Profile{}, false
	}

	route, err := h.router.RouteBetween(r.Context(), start, end, req.Profile)
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrPointTooFar):
			writeError(w, http.StatusUnprocessableEntity, "point_too_far_from_walkway", "")
		case errors.Is(err, routing.ErrNoRoute):
			writeError(w, http.StatusNotFound, "no_accessible_route", "")
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return nil, profile.Profile{}, false
	}

	return route, prof, true
}

// resolveEndpoint turns one end of a route request into a coordinate,
// resolving catalog names when given.
func (h *Handlers) resolveEndpoint(w http.ResponseWriter, ll LatLngJSON, name, field string) (routing.LatLng, bool) {
	if name != "" {
		if h.catalog == nil {
			writeError(w, http.StatusBadRequest, "no_poi_catalog", field)
			return routing.LatLng{}, false
		}
		p, err := h.catalog.Get(name)
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown_poi", field)
			return routing.LatLng{}, false
		}
		return routing.LatLng{Lat: p.Location.Lat(), Lng: p.Location.Lon()}, true
	}

	if err := validateCoord(ll); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", field)
		return routing.LatLng{}, false
	}
	return routing.LatLng{Lat: ll.Lat, Lng: ll.Lng}, true
}

// HandleProfiles handles GET /api/v1/profiles.
func (h *Handlers) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	list := h.profiles.List()
	out := make([]ProfileJSON, len(list))
	for i, p := range list {
		out[i] = ProfileJSON{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Color:       p.RouteColor,
			Advisory:    p.Advisory,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// HandlePOIs handles GET /api/v1/pois, optionally filtered by ?category=.
func (h *Handlers) HandlePOIs(w http.ResponseWriter, r *http.Request) {
	out := []POIJSON{}
	if h.catalog != nil {
		category := r.URL.Query().Get("category")
		for _, p := range h.catalog.Points() {
			if category != "" && p.Category != category {
				continue
			}
			out = append(out, POIJSON{
				Name:     p.Name,
				Category: p.Category,
				Lat:      p.Location.Lat(),
				Lng:      p.Location.Lon(),
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.stats)
}

func validateCoord(ll LatLngJSON) error {
	if math.IsNaN(ll.Lat) || math.IsNaN(ll.Lng) || math.IsInf(ll.Lat, 0) || math.IsInf(ll.Lng, 0) {
		return errors.New("coordinates must be finite numbers")
	}
	if ll.Lat < -90 || ll.Lat > 90 || ll.Lng < -180 || ll.Lng > 180 {
		return errors.New("coordinates out of range")
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
