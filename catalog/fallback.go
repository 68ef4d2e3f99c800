package catalog

// Coordinates in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// VenueDefaults is the static substitute shown when venue data cannot be
// fetched. Zero-valued fields fall through to the generic entry.
type VenueDefaults struct {
	Nombre          string       `json:"nombre,omitempty"`
	Direccion       string       `json:"direccion,omitempty"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	HorarioAtencion string       `json:"horarioAtencion,omitempty"`
	Telefono        string       `json:"telefono,omitempty"`
}

// SportDefaults carries the per-sport static display data pages used to
// hard-code: amenity strings, image paths, and a capacity label keyed by the
// backend sport spelling.
type SportDefaults struct {
	Direccion string   `json:"direccion,omitempty"`
	Horario   string   `json:"horario,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// FallbackTable is the injected configuration for degraded rendering:
// one generic venue entry, optional per-venue overrides keyed by venue id,
// and per-sport display defaults keyed by UI sport key.
type FallbackTable struct {
	Generic    VenueDefaults            `json:"generic"`
	PorVenue   map[int]VenueDefaults    `json:"porVenue,omitempty"`
	PorDeporte map[string]SportDefaults `json:"porDeporte,omitempty"`
}

// DefaultFallbacks returns the built-in table. Addresses and schedules are
// the Temuco constants the original pages shipped with.
func DefaultFallbacks() FallbackTable {
	return FallbackTable{
		Generic: VenueDefaults{
			Direccion:       "Av. Alemania 1234, Temuco, Chile",
			Coordinates:     &Coordinates{Lat: -38.7359, Lng: -72.5904},
			HorarioAtencion: "Lunes a Domingo • 08:00 a 23:00",
			Telefono:        "(45) 555-1234",
		},
		PorDeporte: map[string]SportDefaults{
			"futbol": {
				Amenities: []string{"Pasto sintético", "Iluminación nocturna", "Camarines"},
				Images:    []string{"/sports/futbol/futbol.png", "/sports/futbol/cancha-2.png"},
			},
			"basquet": {
				Amenities: []string{"Cancha Techada", "Tableros Profesionales", "Piso Sintético"},
				Images:    []string{"/sports/basquetbol/basquetbol.png", "/sports/basquetbol/cancha-2.png"},
			},
			"tenis": {
				Amenities: []string{"Superficie de arcilla", "Iluminación", "Arriendo de raquetas"},
				Images:    []string{"/sports/tenis/tenis.png"},
			},
			"padel": {
				Amenities: []string{"Paredes de cristal", "Césped sintético", "Iluminación LED"},
				Images:    []string{"/sports/padel/padel.png"},
			},
			"volley": {
				Amenities: []string{"Piso flotante", "Red reglamentaria"},
				Images:    []string{"/sports/volley/volley.png"},
			},
			"futbol_sala": {
				Amenities: []string{"Piso vinílico", "Marcador electrónico"},
				Images:    []string{"/sports/futbolito/futbolito.png"},
			},
		},
	}
}

// venueDefaults returns the per-venue entry merged over the generic one.
func (t FallbackTable) venueDefaults(venueID int) VenueDefaults {
	merged := t.Generic
	if venueID <= 0 {
		return merged
	}
	override, ok := t.PorVenue[venueID]
	if !ok {
		return merged
	}
	if override.Nombre != "" {
		merged.Nombre = override.Nombre
	}
	if override.Direccion != "" {
		merged.Direccion = override.Direccion
	}
	if override.Coordinates != nil {
		merged.Coordinates = override.Coordinates
	}
	if override.HorarioAtencion != "" {
		merged.HorarioAtencion = override.HorarioAtencion
	}
	if override.Telefono != "" {
		merged.Telefono = override.Telefono
	}
	return merged
}

// sportDefaults returns the per-sport entry, or a zero value for unknown
// sports — callers fall through to their own defaults.
func (t FallbackTable) sportDefaults(sportKey string) SportDefaults {
	return t.PorDeporte[sportKey]
}
