package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"sporthub-cli/api"
)

type fakeFetcher struct {
	complejo api.Complejo
	err      error
	calls    int
}

func (f *fakeFetcher) GetComplejoByID(ctx context.Context, id int) (api.Complejo, error) {
	f.calls++
	if f.err != nil {
		return api.Complejo{}, f.err
	}
	return f.complejo, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestResolveNoVenueReference(t *testing.T) {
	fetcher := &fakeFetcher{}
	resolver := NewVenueResolver(fetcher, DefaultFallbacks(), quietLogger())

	for _, id := range []int{0, -1} {
		venue := resolver.Resolve(context.Background(), id)
		if venue.Source != VenueSourceNone {
			t.Errorf("Resolve(%d).Source = %q, want %q", id, venue.Source, VenueSourceNone)
		}
		if venue.Direccion != "Av. Alemania 1234, Temuco, Chile" {
			t.Errorf("Resolve(%d).Direccion = %q, want generic fallback", id, venue.Direccion)
		}
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times for absent venue refs, want 0", fetcher.calls)
	}
}

func TestResolveFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	resolver := NewVenueResolver(fetcher, DefaultFallbacks(), quietLogger())

	venue := resolver.Resolve(context.Background(), 3)
	if venue.Source != VenueSourceFallback {
		t.Errorf("Source = %q, want %q", venue.Source, VenueSourceFallback)
	}
	if venue.ID != 3 {
		t.Errorf("ID = %d, want 3", venue.ID)
	}
	if venue.Direccion == "" || venue.HorarioAtencion == "" {
		t.Errorf("fallback venue must carry display data, got %+v", venue)
	}
}

func TestResolveFetchFailurePerVenueOverride(t *testing.T) {
	fallbacks := DefaultFallbacks()
	fallbacks.PorVenue = map[int]VenueDefaults{
		3: {Nombre: "Complejo Ñielol", Direccion: "Calle Prat 02155, Temuco"},
	}
	fetcher := &fakeFetcher{err: errors.New("boom")}
	resolver := NewVenueResolver(fetcher, fallbacks, quietLogger())

	venue := resolver.Resolve(context.Background(), 3)
	if venue.Nombre != "Complejo Ñielol" {
		t.Errorf("Nombre = %q, want per-venue override", venue.Nombre)
	}
	if venue.Direccion != "Calle Prat 02155, Temuco" {
		t.Errorf("Direccion = %q, want per-venue override", venue.Direccion)
	}
	// Fields the override leaves empty fall through to the generic entry.
	if venue.HorarioAtencion != "Lunes a Domingo • 08:00 a 23:00" {
		t.Errorf("HorarioAtencion = %q, want generic fallback", venue.HorarioAtencion)
	}
}

func TestResolvePartialMerge(t *testing.T) {
	fetcher := &fakeFetcher{complejo: api.Complejo{
		IDComplejo: 5,
		Nombre:     "Complejo Labranza",
		Direccion:  "Camino Labranza km 3",
		Latitud:    json.RawMessage(`"-38.75"`),
		Longitud:   json.RawMessage(`-72.68`),
		// HorarioAtencion and Telefono absent.
	}}
	resolver := NewVenueResolver(fetcher, DefaultFallbacks(), quietLogger())

	venue := resolver.Resolve(context.Background(), 5)
	if venue.Source != VenueSourceBackend {
		t.Fatalf("Source = %q, want %q", venue.Source, VenueSourceBackend)
	}
	if venue.Nombre != "Complejo Labranza" || venue.Direccion != "Camino Labranza km 3" {
		t.Errorf("backend fields not applied: %+v", venue)
	}
	if venue.Coordinates == nil {
		t.Fatal("Coordinates = nil, want parsed")
	}
	if venue.Coordinates.Lat != -38.75 || venue.Coordinates.Lng != -72.68 {
		t.Errorf("Coordinates = %+v, want {-38.75 -72.68}", venue.Coordinates)
	}
	if venue.HorarioAtencion != "Lunes a Domingo • 08:00 a 23:00" {
		t.Errorf("HorarioAtencion = %q, want generic fallback for absent field", venue.HorarioAtencion)
	}
	if venue.Telefono != "(45) 555-1234" {
		t.Errorf("Telefono = %q, want generic fallback for absent field", venue.Telefono)
	}
}

func TestResolveHonorsTimeout(t *testing.T) {
	fetcher := &fakeFetcher{err: context.DeadlineExceeded}
	resolver := NewVenueResolver(fetcher, DefaultFallbacks(), quietLogger())
	resolver.SetTimeout(time.Millisecond)

	venue := resolver.Resolve(context.Background(), 9)
	if venue.Source != VenueSourceFallback {
		t.Errorf("Source = %q, want %q after timeout", venue.Source, VenueSourceFallback)
	}
}

func TestParseRawNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{`-38.7359`, -38.7359, true},
		{`"-38.7359"`, -38.7359, true},
		{`0`, 0, true},
		{``, 0, false},
		{`null`, 0, false},
		{`"not a number"`, 0, false},
	}
	for _, tt := range tests {
		got, ok := parseRawNumber([]byte(tt.raw))
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseRawNumber(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}
