package catalog

import (
	"encoding/json"
	"fmt"

	"sporthub-cli/api"
)

// Estado is derived from the activity flag and only from it; the backend's
// own status field, where present, is ignored.
type Estado string

const (
	EstadoDisponible Estado = "disponible"
	EstadoInactiva   Estado = "inactiva"
)

// Facility is the canonical in-memory facility record, independent of which
// naming convention the backend answered in.
type Facility struct {
	ID                int     `json:"id"`
	Nombre            string  `json:"nombre"`
	Tipo              string  `json:"tipo"` // UI-facing sport key
	Techada           bool    `json:"techada"`
	Activa            bool    `json:"activa"`
	EstablecimientoID int     `json:"establecimientoId"` // 0 when the record has no venue reference
	PrecioPorHora     float64 `json:"precioPorHora,omitempty"`
	Rating            float64 `json:"rating,omitempty"`
	TotalResenas      int     `json:"totalResenas,omitempty"`
	Descripcion       string  `json:"descripcion,omitempty"`
	Capacidad         int     `json:"capacidad,omitempty"`
	ImagenURL         string  `json:"imagenUrl,omitempty"`
	Estado            Estado  `json:"estado"`
}

// ValidationError reports a write-path payload the backend must never
// receive. It is the one place the adapter fails closed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AdaptFacility decodes a raw backend facility payload in either naming
// convention into the canonical record. The presence of id_cancha selects
// the FastAPI variant; anything else is treated as the legacy camelCase
// shape. Missing optional fields default, they never error.
func AdaptFacility(vocab *Vocabulary, raw json.RawMessage) (Facility, error) {
	var probe struct {
		IDCancha *int `json:"id_cancha"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Facility{}, fmt.Errorf("decode facility: %w", err)
	}

	if probe.IDCancha != nil {
		var out api.CanchaOut
		if err := json.Unmarshal(raw, &out); err != nil {
			return Facility{}, fmt.Errorf("decode facility: %w", err)
		}
		return adaptFromSnake(vocab, out), nil
	}

	var legacy api.CanchaLegacy
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return Facility{}, fmt.Errorf("decode facility: %w", err)
	}
	return adaptFromLegacy(vocab, legacy), nil
}

func adaptFromSnake(vocab *Vocabulary, out api.CanchaOut) Facility {
	f := Facility{
		Nombre:            out.Nombre,
		Tipo:              vocab.Key(orDefault(out.Deporte, "futbol")),
		Techada:           out.Cubierta,
		Activa:            true,
		EstablecimientoID: out.IDComplejo,
		Descripcion:       out.Descripcion,
		ImagenURL:         out.FotoPrincipal,
	}
	if out.IDCancha != nil {
		f.ID = *out.IDCancha
	}
	if out.Activo != nil {
		f.Activa = *out.Activo
	}
	if out.PrecioDesde != nil {
		f.PrecioPorHora = *out.PrecioDesde
	}
	if out.RatingPromedio != nil {
		f.Rating = *out.RatingPromedio
	}
	if out.TotalResenas != nil {
		f.TotalResenas = *out.TotalResenas
	}
	if out.Capacidad != nil {
		f.Capacidad = *out.Capacidad
	}
	f.Estado = estadoFor(f.Activa)
	return f
}

func adaptFromLegacy(vocab *Vocabulary, legacy api.CanchaLegacy) Facility {
	f := Facility{
		ID:                legacy.ID,
		Nombre:            legacy.Nombre,
		Tipo:              vocab.Key(orDefault(legacy.Tipo, "futbol")),
		Techada:           legacy.Techada,
		Activa:            true,
		EstablecimientoID: legacy.EstablecimientoID,
		Descripcion:       legacy.Descripcion,
		ImagenURL:         legacy.ImagenURL,
	}
	if legacy.Activa != nil {
		f.Activa = *legacy.Activa
	}
	if legacy.PrecioPorHora != nil {
		f.PrecioPorHora = *legacy.PrecioPorHora
	}
	if legacy.Capacidad != nil {
		f.Capacidad = *legacy.Capacidad
	}
	f.Estado = estadoFor(f.Activa)
	return f
}

func estadoFor(activa bool) Estado {
	if activa {
		return EstadoDisponible
	}
	return EstadoInactiva
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// CreateFacilityInput carries a facility creation intent in canonical terms.
type CreateFacilityInput struct {
	Nombre            string
	Tipo              string
	Techada           bool
	EstablecimientoID int
	PrecioPorHora     float64
	Capacidad         int
	Descripcion       string
	ImagenURL         string
}

// UpdateFacilityInput uses pointers so only fields the caller explicitly set
// reach the payload; absent fields must not clobber backend state.
type UpdateFacilityInput struct {
	Nombre        *string
	Tipo          *string
	Techada       *bool
	Activa        *bool
	PrecioPorHora *float64
	Capacidad     *int
	Descripcion   *string
}

// CreatePayload builds the backend creation payload. A missing or
// non-positive venue reference is rejected with a *ValidationError — a
// malformed reference would corrupt the write downstream. Non-positive
// numeric extras are omitted rather than sent as zero.
func CreatePayload(vocab *Vocabulary, in CreateFacilityInput) (map[string]any, error) {
	if in.EstablecimientoID <= 0 {
		return nil, &ValidationError{Field: "id_complejo", Reason: "must be a positive venue id"}
	}
	if in.Nombre == "" {
		return nil, &ValidationError{Field: "nombre", Reason: "must not be empty"}
	}

	payload := map[string]any{
		"id_complejo": in.EstablecimientoID,
		"nombre":      in.Nombre,
		"cubierta":    in.Techada,
	}
	if in.Tipo != "" {
		payload["deporte"] = vocab.CanonicalName(in.Tipo)
		if id, ok := vocab.ID(in.Tipo); ok {
			payload["id_deporte"] = id
		}
	}
	if in.PrecioPorHora > 0 {
		payload["precio_desde"] = in.PrecioPorHora
	}
	if in.Capacidad > 0 {
		payload["capacidad"] = in.Capacidad
	}
	if in.Descripcion != "" {
		payload["descripcion"] = in.Descripcion
	}
	if in.ImagenURL != "" {
		payload["foto_principal"] = in.ImagenURL
	}
	return payload, nil
}

// UpdatePayload builds a partial-update payload containing exactly the
// fields set on the input, nothing else.
func UpdatePayload(vocab *Vocabulary, in UpdateFacilityInput) map[string]any {
	payload := map[string]any{}
	if in.Nombre != nil {
		payload["nombre"] = *in.Nombre
	}
	if in.Tipo != nil {
		payload["deporte"] = vocab.CanonicalName(*in.Tipo)
		if id, ok := vocab.ID(*in.Tipo); ok {
			payload["id_deporte"] = id
		}
	}
	if in.Techada != nil {
		payload["cubierta"] = *in.Techada
	}
	if in.Activa != nil {
		payload["activo"] = *in.Activa
	}
	if in.PrecioPorHora != nil {
		payload["precio_desde"] = *in.PrecioPorHora
	}
	if in.Capacidad != nil {
		payload["capacidad"] = *in.Capacidad
	}
	if in.Descripcion != nil {
		payload["descripcion"] = *in.Descripcion
	}
	return payload
}
