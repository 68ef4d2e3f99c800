package api

import "encoding/json"

// CanchaOut is the FastAPI (snake_case) facility payload.
// Base fields plus read-only computed fields the backend may include.
type CanchaOut struct {
	IDCancha           *int     `json:"id_cancha"`
	Nombre             string   `json:"nombre"`
	Deporte            string   `json:"deporte"`
	Cubierta           bool     `json:"cubierta"`
	Activo             *bool    `json:"activo"`
	IDComplejo         int      `json:"id_complejo"`
	PrecioDesde        *float64 `json:"precio_desde"`
	RatingPromedio     *float64 `json:"rating_promedio"`
	TotalResenas       *int     `json:"total_resenas"`
	DistanciaKm        *float64 `json:"distancia_km"`
	Descripcion        string   `json:"descripcion"`
	Capacidad          *int     `json:"capacidad"`
	Iluminacion        *bool    `json:"iluminacion"`
	FotoPrincipal      string   `json:"foto_principal"`
	FechaCreacion      string   `json:"fecha_creacion"`
	FechaActualizacion string   `json:"fecha_actualizacion"`
}

// CanchaLegacy is the old BFF (camelCase) facility payload, still served by
// some deployments.
type CanchaLegacy struct {
	ID                 int      `json:"id"`
	Nombre             string   `json:"nombre"`
	Tipo               string   `json:"tipo"`
	Techada            bool     `json:"techada"`
	Activa             *bool    `json:"activa"`
	EstablecimientoID  int      `json:"establecimientoId"`
	PrecioPorHora      *float64 `json:"precioPorHora"`
	Descripcion        string   `json:"descripcion"`
	Capacidad          *int     `json:"capacidad"`
	ImagenURL          string   `json:"imagenUrl"`
	FechaCreacion      string   `json:"fechaCreacion"`
	FechaActualizacion string   `json:"fechaActualizacion"`
}

// Complejo is a venue record. Coordinates come back as strings from some
// backend versions and as numbers from others, so they stay raw here and are
// parsed by the caller.
type Complejo struct {
	IDComplejo      int             `json:"id_complejo"`
	Nombre          string          `json:"nombre"`
	Direccion       string          `json:"direccion"`
	Latitud         json.RawMessage `json:"latitud"`
	Longitud        json.RawMessage `json:"longitud"`
	HorarioAtencion string          `json:"horarioAtencion"`
	Telefono        string          `json:"telefono"`
}

type Resena struct {
	ID           int     `json:"id"`
	IDCancha     int     `json:"id_cancha"`
	IDComplejo   int     `json:"id_complejo"`
	Calificacion float64 `json:"calificacion"`
	Comentario   string  `json:"comentario"`
	Autor        string  `json:"autor"`
	Fecha        string  `json:"fecha"`
}

type CreateResenaInput struct {
	IDCancha     int     `json:"idCancha"`
	Calificacion float64 `json:"calificacion"`
	Comentario   string  `json:"comentario"`
}

type Reserva struct {
	ID           int     `json:"id"`
	IDCancha     int     `json:"id_cancha"`
	FechaReserva string  `json:"fecha_reserva"`
	HoraInicio   string  `json:"hora_inicio"`
	HoraFin      string  `json:"hora_fin"`
	Estado       string  `json:"estado"`
	PrecioTotal  float64 `json:"precio_total"`
}

type CreateReservaInput struct {
	IDCancha     int    `json:"id_cancha"`
	FechaReserva string `json:"fecha_reserva"` // YYYY-MM-DD
	HoraInicio   string `json:"hora_inicio"`   // HH:MM
	HoraFin      string `json:"hora_fin"`      // HH:MM
}

type CreateReservaAdminInput struct {
	IDCancha     int    `json:"id_cancha"`
	FechaReserva string `json:"fecha_reserva"`
	HoraInicio   string `json:"hora_inicio"`
	HoraFin      string `json:"hora_fin"`
	IDUsuario    int    `json:"id_usuario"`
}

// CanchaFilters are the supported query parameters for listing facilities.
type CanchaFilters struct {
	Deporte    string
	Cubierta   *bool
	IDComplejo int
	Query      string
	MaxPrecio  float64
	Page       int
	PageSize   int
}
