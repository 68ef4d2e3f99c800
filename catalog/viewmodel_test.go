package catalog

import (
	"strings"
	"testing"
)

func TestBuildViewModelFillsGaps(t *testing.T) {
	fallbacks := DefaultFallbacks()
	facility := Facility{
		ID:     7,
		Nombre: "Cancha 7",
		Tipo:   "basquet",
		Activa: true,
		Estado: EstadoDisponible,
	}
	venue := Venue{Source: VenueSourceNone,
		Direccion:       fallbacks.Generic.Direccion,
		HorarioAtencion: fallbacks.Generic.HorarioAtencion,
	}

	vm := BuildViewModel(Sports(), fallbacks, facility, venue)

	if vm.DeporteLabel != "Básquetbol" {
		t.Errorf("DeporteLabel = %q, want Básquetbol", vm.DeporteLabel)
	}
	if !strings.Contains(vm.Descripcion, "Cancha 7") {
		t.Errorf("default Descripcion should mention the facility, got %q", vm.Descripcion)
	}
	if vm.LocationText == "" || vm.ScheduleText == "" {
		t.Errorf("location/schedule must never be empty: %+v", vm)
	}
	if vm.CapacityText != "10 jugadores (5 vs 5)" {
		t.Errorf("CapacityText = %q", vm.CapacityText)
	}
}

func TestBuildViewModelDescriptionIncludesVenue(t *testing.T) {
	vm := BuildViewModel(Sports(), DefaultFallbacks(),
		Facility{Nombre: "Cancha 1", Tipo: "padel", Activa: true},
		Venue{Nombre: "Complejo Centro", Source: VenueSourceBackend})

	want := "Cancha 1 - Cancha de Pádel en Complejo Centro"
	if vm.Descripcion != want {
		t.Errorf("Descripcion = %q, want %q", vm.Descripcion, want)
	}
}

func TestBuildViewModelKeepsExplicitDescription(t *testing.T) {
	vm := BuildViewModel(Sports(), DefaultFallbacks(),
		Facility{Nombre: "Cancha 1", Tipo: "padel", Descripcion: "Cancha panorámica"},
		Venue{})
	if vm.Descripcion != "Cancha panorámica" {
		t.Errorf("Descripcion = %q, want the backend description untouched", vm.Descripcion)
	}
}

func TestCapacityText(t *testing.T) {
	tests := []struct {
		sport string
		want  string
	}{
		{"futbol", "22 jugadores (11 vs 11)"},
		{"futbol_sala", "10 jugadores (5 vs 5)"},
		{"basquet", "10 jugadores (5 vs 5)"},
		{"tenis", "4 jugadores (2 vs 2)"},
		{"padel", "4 jugadores (2 vs 2)"},
		{"volley", "12 jugadores (6 vs 6)"},
		{"cricket", "Consultar capacidad"},
	}
	for _, tt := range tests {
		if got := capacityText(tt.sport); got != tt.want {
			t.Errorf("capacityText(%q) = %q, want %q", tt.sport, got, tt.want)
		}
	}
}

func TestAmenitiesLeadWithFlags(t *testing.T) {
	fallbacks := DefaultFallbacks()

	vm := BuildViewModel(Sports(), fallbacks,
		Facility{Tipo: "futbol", Activa: true, Techada: false}, Venue{})
	if vm.Amenities[0] != "Disponible para reservas" {
		t.Errorf("Amenities[0] = %q", vm.Amenities[0])
	}
	if vm.Amenities[1] != "Cancha al aire libre" {
		t.Errorf("Amenities[1] = %q", vm.Amenities[1])
	}
	if len(vm.Amenities) <= 2 {
		t.Error("sport amenities missing after flags")
	}

	vm = BuildViewModel(Sports(), fallbacks,
		Facility{Tipo: "basquet", Activa: false, Techada: true}, Venue{})
	if vm.Amenities[0] != "No disponible" || vm.Amenities[1] != "Cancha techada" {
		t.Errorf("Amenities = %v", vm.Amenities[:2])
	}
}

func TestImagesNeverEmpty(t *testing.T) {
	tests := []struct {
		name     string
		facility Facility
	}{
		{"known sport no image", Facility{Tipo: "padel"}},
		{"unknown sport no image", Facility{Tipo: "cricket"}},
		{"no sport no image", Facility{}},
		{"with explicit image", Facility{Tipo: "futbol", ImagenURL: "https://cdn.example.com/c1.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := BuildViewModel(Sports(), DefaultFallbacks(), tt.facility, Venue{})
			if len(vm.Images) == 0 {
				t.Fatal("Images is empty")
			}
		})
	}
}

func TestImagesLeadWithFacilityImage(t *testing.T) {
	vm := BuildViewModel(Sports(), DefaultFallbacks(),
		Facility{Tipo: "futbol", ImagenURL: "https://cdn.example.com/c1.jpg"}, Venue{})
	if vm.Images[0] != "https://cdn.example.com/c1.jpg" {
		t.Errorf("Images[0] = %q, want the facility's own image first", vm.Images[0])
	}
}

func TestImagesSyntheticPathForUnknownSport(t *testing.T) {
	vm := BuildViewModel(Sports(), FallbackTable{},
		Facility{Tipo: "cricket"}, Venue{})
	if len(vm.Images) != 1 || vm.Images[0] != "/sports/cricket/cricket.png" {
		t.Errorf("Images = %v, want synthetic path", vm.Images)
	}
}
