package catalog

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestAdaptFacilitySnakeCase(t *testing.T) {
	raw := json.RawMessage(`{
		"id_cancha": 7,
		"nombre": "Cancha 7",
		"deporte": "basquetbol",
		"cubierta": true,
		"activo": false,
		"id_complejo": 3
	}`)

	got, err := AdaptFacility(Sports(), raw)
	if err != nil {
		t.Fatalf("AdaptFacility: %v", err)
	}

	want := Facility{
		ID:                7,
		Nombre:            "Cancha 7",
		Tipo:              "basquet",
		Techada:           true,
		Activa:            false,
		EstablecimientoID: 3,
		Estado:            EstadoInactiva,
	}
	if got != want {
		t.Errorf("AdaptFacility = %+v, want %+v", got, want)
	}
}

func TestAdaptFacilityLegacyCamelCase(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 12,
		"nombre": "Cancha Central",
		"tipo": "paddle",
		"techada": false,
		"activa": true,
		"establecimientoId": 5,
		"precioPorHora": 18000
	}`)

	got, err := AdaptFacility(Sports(), raw)
	if err != nil {
		t.Fatalf("AdaptFacility: %v", err)
	}

	if got.ID != 12 || got.Tipo != "padel" || got.EstablecimientoID != 5 {
		t.Errorf("unexpected record: %+v", got)
	}
	if !got.Activa || got.Estado != EstadoDisponible {
		t.Errorf("want active/disponible, got %+v", got)
	}
	if got.PrecioPorHora != 18000 {
		t.Errorf("PrecioPorHora = %v, want 18000", got.PrecioPorHora)
	}
}

func TestAdaptFacilityDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Facility
	}{
		{
			name: "snake missing optionals default active and futbol",
			raw:  `{"id_cancha": 1, "nombre": "X"}`,
			want: Facility{ID: 1, Nombre: "X", Tipo: "futbol", Activa: true, Estado: EstadoDisponible},
		},
		{
			name: "legacy missing activity flag defaults active",
			raw:  `{"id": 2, "nombre": "Y", "tipo": "tenis"}`,
			want: Facility{ID: 2, Nombre: "Y", Tipo: "tenis", Activa: true, Estado: EstadoDisponible},
		},
		{
			name: "unknown sport passes through normalized",
			raw:  `{"id_cancha": 3, "nombre": "Z", "deporte": "Cricket"}`,
			want: Facility{ID: 3, Nombre: "Z", Tipo: "cricket", Activa: true, Estado: EstadoDisponible},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdaptFacility(Sports(), json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("AdaptFacility: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAdaptFacilityMalformed(t *testing.T) {
	if _, err := AdaptFacility(Sports(), json.RawMessage(`not json`)); err == nil {
		t.Error("want error for malformed payload")
	}
}

func TestCreatePayloadValidation(t *testing.T) {
	vocab := Sports()

	tests := []struct {
		name      string
		input     CreateFacilityInput
		wantField string
	}{
		{"missing venue", CreateFacilityInput{Nombre: "A"}, "id_complejo"},
		{"zero venue", CreateFacilityInput{Nombre: "A", EstablecimientoID: 0}, "id_complejo"},
		{"negative venue", CreateFacilityInput{Nombre: "A", EstablecimientoID: -2}, "id_complejo"},
		{"empty name", CreateFacilityInput{EstablecimientoID: 3}, "nombre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreatePayload(vocab, tt.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestCreatePayload(t *testing.T) {
	payload, err := CreatePayload(Sports(), CreateFacilityInput{
		Nombre:            "Cancha Nueva",
		Tipo:              "padel",
		Techada:           true,
		EstablecimientoID: 3,
		PrecioPorHora:     15000,
	})
	if err != nil {
		t.Fatalf("CreatePayload: %v", err)
	}

	want := map[string]any{
		"id_complejo":  3,
		"nombre":       "Cancha Nueva",
		"cubierta":     true,
		"deporte":      "paddle",
		"id_deporte":   4,
		"precio_desde": 15000.0,
	}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload = %v, want %v", payload, want)
	}
}

func TestCreatePayloadOmitsNonPositiveExtras(t *testing.T) {
	payload, err := CreatePayload(Sports(), CreateFacilityInput{
		Nombre:            "Cancha",
		EstablecimientoID: 1,
		PrecioPorHora:     -5,
		Capacidad:         0,
	})
	if err != nil {
		t.Fatalf("CreatePayload: %v", err)
	}
	for _, key := range []string{"precio_desde", "capacidad", "deporte", "descripcion", "foto_principal"} {
		if _, ok := payload[key]; ok {
			t.Errorf("payload should not contain %q", key)
		}
	}
}

func TestUpdatePayloadExactKeys(t *testing.T) {
	nombre := "Cancha Renovada"
	payload := UpdatePayload(Sports(), UpdateFacilityInput{Nombre: &nombre})

	want := map[string]any{"nombre": "Cancha Renovada"}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload = %v, want %v", payload, want)
	}
}

func TestUpdatePayloadTranslatesSport(t *testing.T) {
	tipo := "basquet"
	activa := false
	payload := UpdatePayload(Sports(), UpdateFacilityInput{Tipo: &tipo, Activa: &activa})

	want := map[string]any{
		"deporte":    "basquetbol",
		"id_deporte": 2,
		"activo":     false,
	}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload = %v, want %v", payload, want)
	}
}

func TestUpdatePayloadEmpty(t *testing.T) {
	if payload := UpdatePayload(Sports(), UpdateFacilityInput{}); len(payload) != 0 {
		t.Errorf("empty input must produce empty payload, got %v", payload)
	}
}
