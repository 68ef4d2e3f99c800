package catalog

import "fmt"

// ViewModel is the fully resolved, display-ready facility object. It is
// page-scoped and never persisted; build it fresh on every load.
type ViewModel struct {
	ID           int          `json:"id"`
	Nombre       string       `json:"nombre"`
	Deporte      string       `json:"deporte"`
	DeporteLabel string       `json:"deporteLabel"`
	Descripcion  string       `json:"descripcion"`
	LocationText string       `json:"locationText"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	ScheduleText string       `json:"scheduleText"`
	CapacityText string       `json:"capacityText"`
	Amenities    []string     `json:"amenities"`
	Images       []string     `json:"images"`
	PrecioDesde  float64      `json:"precioDesde,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	TotalResenas int          `json:"totalResenas,omitempty"`
	Estado       Estado       `json:"estado"`
	Telefono     string       `json:"telefono,omitempty"`
}

// BuildViewModel composes a facility and its resolved venue into display
// strings. Pure and deterministic; every gap is filled from the fallback
// table, never left empty.
func BuildViewModel(vocab *Vocabulary, fallbacks FallbackTable, f Facility, venue Venue) ViewModel {
	sportFB := fallbacks.sportDefaults(f.Tipo)

	vm := ViewModel{
		ID:           f.ID,
		Nombre:       f.Nombre,
		Deporte:      f.Tipo,
		DeporteLabel: vocab.DisplayLabel(f.Tipo),
		Descripcion:  f.Descripcion,
		LocationText: venue.Direccion,
		Coordinates:  venue.Coordinates,
		ScheduleText: venue.HorarioAtencion,
		CapacityText: capacityText(f.Tipo),
		PrecioDesde:  f.PrecioPorHora,
		Rating:       f.Rating,
		TotalResenas: f.TotalResenas,
		Estado:       f.Estado,
		Telefono:     venue.Telefono,
	}

	if vm.Descripcion == "" {
		vm.Descripcion = fmt.Sprintf("%s - Cancha de %s", f.Nombre, vm.DeporteLabel)
		if venue.Nombre != "" {
			vm.Descripcion += " en " + venue.Nombre
		}
	}
	if vm.LocationText == "" && sportFB.Direccion != "" {
		vm.LocationText = sportFB.Direccion
	}
	if vm.LocationText == "" {
		vm.LocationText = fallbacks.Generic.Direccion
	}
	if vm.ScheduleText == "" && sportFB.Horario != "" {
		vm.ScheduleText = sportFB.Horario
	}
	if vm.ScheduleText == "" {
		vm.ScheduleText = fallbacks.Generic.HorarioAtencion
	}

	vm.Amenities = buildAmenities(f, sportFB)
	vm.Images = buildImages(f, sportFB)
	return vm
}

// capacityText is a per-sport lookup on the UI sport key. Strings match the
// ones the sport pages displayed.
func capacityText(sportKey string) string {
	switch sportKey {
	case "futbol":
		return "22 jugadores (11 vs 11)"
	case "futbol_sala":
		return "10 jugadores (5 vs 5)"
	case "basquet":
		return "10 jugadores (5 vs 5)"
	case "tenis":
		return "4 jugadores (2 vs 2)"
	case "padel":
		return "4 jugadores (2 vs 2)"
	case "volley":
		return "12 jugadores (6 vs 6)"
	default:
		return "Consultar capacidad"
	}
}

// buildAmenities leads with the availability and coverage flags rendered as
// human strings, then appends the sport's static amenity list.
func buildAmenities(f Facility, sportFB SportDefaults) []string {
	amenities := make([]string, 0, 2+len(sportFB.Amenities))
	if f.Activa {
		amenities = append(amenities, "Disponible para reservas")
	} else {
		amenities = append(amenities, "No disponible")
	}
	if f.Techada {
		amenities = append(amenities, "Cancha techada")
	} else {
		amenities = append(amenities, "Cancha al aire libre")
	}
	return append(amenities, sportFB.Amenities...)
}

// buildImages never returns an empty list; the carousel divides by its
// length.
func buildImages(f Facility, sportFB SportDefaults) []string {
	images := make([]string, 0, 1+len(sportFB.Images))
	if f.ImagenURL != "" {
		images = append(images, f.ImagenURL)
	}
	images = append(images, sportFB.Images...)
	if len(images) == 0 {
		sport := f.Tipo
		if sport == "" {
			sport = "futbol"
		}
		images = append(images, fmt.Sprintf("/sports/%s/%s.png", sport, sport))
	}
	return images
}
