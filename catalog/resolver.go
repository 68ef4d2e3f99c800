package catalog

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"sporthub-cli/api"
)

// VenueSource says which tier of the resolution ladder produced a venue.
type VenueSource string

const (
	// VenueSourceNone: the facility carries no venue reference; generic
	// fallback, no fetch attempted.
	VenueSourceNone VenueSource = "none"
	// VenueSourceBackend: fetched from the venue endpoint.
	VenueSourceBackend VenueSource = "backend"
	// VenueSourceFallback: fetch failed; static per-venue or generic data.
	VenueSourceFallback VenueSource = "fallback"
)

// Venue is the resolved venue display data.
type Venue struct {
	ID              int          `json:"id,omitempty"`
	Nombre          string       `json:"nombre,omitempty"`
	Direccion       string       `json:"direccion"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	HorarioAtencion string       `json:"horarioAtencion"`
	Telefono        string       `json:"telefono,omitempty"`
	Source          VenueSource  `json:"source"`
}

// VenueFetcher is the slice of the API client the resolver needs.
type VenueFetcher interface {
	GetComplejoByID(ctx context.Context, id int) (api.Complejo, error)
}

// VenueResolver resolves a facility's venue reference with graceful
// degradation. Venue data is non-critical: no path out of Resolve returns an
// error, failures are logged and absorbed into static fallbacks.
type VenueResolver struct {
	fetcher   VenueFetcher
	fallbacks FallbackTable
	log       *logrus.Logger
	timeout   time.Duration
}

func NewVenueResolver(fetcher VenueFetcher, fallbacks FallbackTable, log *logrus.Logger) *VenueResolver {
	return &VenueResolver{
		fetcher:   fetcher,
		fallbacks: fallbacks,
		log:       log,
		timeout:   10 * time.Second,
	}
}

// SetTimeout overrides the per-fetch timeout.
func (r *VenueResolver) SetTimeout(d time.Duration) {
	if d > 0 {
		r.timeout = d
	}
}

// Resolve walks the ladder: no reference → generic fallback; fetch success →
// response fields merged over the generic entry; fetch failure → per-venue
// or generic static data.
func (r *VenueResolver) Resolve(ctx context.Context, venueID int) Venue {
	if venueID <= 0 {
		return r.fromDefaults(0, VenueSourceNone)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	complejo, err := r.fetcher.GetComplejoByID(fetchCtx, venueID)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"venue_id": venueID,
			"error":    err.Error(),
		}).Warn("venue fetch failed, using static fallback")
		return r.fromDefaults(venueID, VenueSourceFallback)
	}

	venue := r.fromDefaults(venueID, VenueSourceBackend)
	if complejo.Nombre != "" {
		venue.Nombre = complejo.Nombre
	}
	if complejo.Direccion != "" {
		venue.Direccion = complejo.Direccion
	}
	if coords, ok := parseCoordinates(complejo.Latitud, complejo.Longitud); ok {
		venue.Coordinates = &coords
	}
	if complejo.HorarioAtencion != "" {
		venue.HorarioAtencion = complejo.HorarioAtencion
	}
	if complejo.Telefono != "" {
		venue.Telefono = complejo.Telefono
	}
	return venue
}

func (r *VenueResolver) fromDefaults(venueID int, source VenueSource) Venue {
	defaults := r.fallbacks.venueDefaults(venueID)
	return Venue{
		ID:              venueID,
		Nombre:          defaults.Nombre,
		Direccion:       defaults.Direccion,
		Coordinates:     defaults.Coordinates,
		HorarioAtencion: defaults.HorarioAtencion,
		Telefono:        defaults.Telefono,
		Source:          source,
	}
}

// parseCoordinates handles both numeric and quoted-string lat/lng, which
// varies across backend versions.
func parseCoordinates(lat, lng []byte) (Coordinates, bool) {
	latVal, ok := parseRawNumber(lat)
	if !ok {
		return Coordinates{}, false
	}
	lngVal, ok := parseRawNumber(lng)
	if !ok {
		return Coordinates{}, false
	}
	return Coordinates{Lat: latVal, Lng: lngVal}, true
}

func parseRawNumber(raw []byte) (float64, bool) {
	s := string(raw)
	if s == "" || s == "null" {
		return 0, false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
