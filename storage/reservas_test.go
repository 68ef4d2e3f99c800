package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenReservasDBAt(filepath.Join(t.TempDir(), "reservas.db"))
	if err != nil {
		t.Fatalf("OpenReservasDBAt: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleReserva(id string, remoteID int, fecha string) Reserva {
	return Reserva{
		ID:          id,
		RemoteID:    remoteID,
		CanchaID:    7,
		CanchaName:  "Cancha 7",
		Deporte:     "basquet",
		Fecha:       fecha,
		HoraInicio:  "18:00",
		HoraFin:     "19:00",
		Precio:      12000,
		Estado:      "confirmada",
		RegistradaA: "2026-08-30T12:00:00Z",
	}
}

func TestAddAndListReservas(t *testing.T) {
	db := openTestDB(t)

	if err := AddReserva(db, sampleReserva("a", 101, "2026-09-05")); err != nil {
		t.Fatalf("AddReserva: %v", err)
	}
	if err := AddReserva(db, sampleReserva("b", 102, "2026-09-03")); err != nil {
		t.Fatalf("AddReserva: %v", err)
	}

	reservas, err := ListReservas(db, ReservaFilter{})
	if err != nil {
		t.Fatalf("ListReservas: %v", err)
	}
	if len(reservas) != 2 {
		t.Fatalf("len = %d, want 2", len(reservas))
	}
	// Ordered by fecha.
	if reservas[0].ID != "b" || reservas[1].ID != "a" {
		t.Errorf("order = %s, %s; want b, a", reservas[0].ID, reservas[1].ID)
	}
	if reservas[0].CanchaName != "Cancha 7" || reservas[0].Precio != 12000 {
		t.Errorf("row did not round-trip: %+v", reservas[0])
	}
}

func TestListReservasFilters(t *testing.T) {
	db := openTestDB(t)
	for _, r := range []Reserva{
		sampleReserva("past", 1, "2026-08-20"),
		sampleReserva("today", 2, "2026-09-01"),
		sampleReserva("future", 3, "2026-09-10"),
	} {
		if err := AddReserva(db, r); err != nil {
			t.Fatalf("AddReserva: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter ReservaFilter
		want   []string
	}{
		{"upcoming", ReservaFilter{Upcoming: true, NowDate: "2026-09-01"}, []string{"today", "future"}},
		{"past", ReservaFilter{Past: true, NowDate: "2026-09-01"}, []string{"past", "today"}},
		{"range", ReservaFilter{From: "2026-08-25", To: "2026-09-05"}, []string{"today"}},
		{"from only", ReservaFilter{From: "2026-09-02"}, []string{"future"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservas, err := ListReservas(db, tt.filter)
			if err != nil {
				t.Fatalf("ListReservas: %v", err)
			}
			if len(reservas) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(reservas), len(tt.want))
			}
			for i, id := range tt.want {
				if reservas[i].ID != id {
					t.Errorf("reservas[%d].ID = %s, want %s", i, reservas[i].ID, id)
				}
			}
		})
	}
}

func TestMarkReservaCancelada(t *testing.T) {
	db := openTestDB(t)
	if err := AddReserva(db, sampleReserva("a", 101, "2026-09-05")); err != nil {
		t.Fatalf("AddReserva: %v", err)
	}

	ok, err := MarkReservaCancelada(db, 101)
	if err != nil || !ok {
		t.Fatalf("MarkReservaCancelada = %v, %v; want true, nil", ok, err)
	}

	reservas, err := ListReservas(db, ReservaFilter{})
	if err != nil {
		t.Fatalf("ListReservas: %v", err)
	}
	if reservas[0].Estado != "cancelada" {
		t.Errorf("Estado = %q, want cancelada", reservas[0].Estado)
	}

	ok, err = MarkReservaCancelada(db, 999)
	if err != nil {
		t.Fatalf("MarkReservaCancelada: %v", err)
	}
	if ok {
		t.Error("unknown remote id must report false")
	}
}

func TestGetReservaStats(t *testing.T) {
	db := openTestDB(t)

	a := sampleReserva("a", 1, "2026-09-05")
	b := sampleReserva("b", 2, "2026-09-06")
	b.Deporte = "padel"
	b.Precio = 8000
	c := sampleReserva("c", 3, "2026-09-07")
	c.Estado = "cancelada"
	for _, r := range []Reserva{a, b, c} {
		if err := AddReserva(db, r); err != nil {
			t.Fatalf("AddReserva: %v", err)
		}
	}

	stats, err := GetReservaStats(db)
	if err != nil {
		t.Fatalf("GetReservaStats: %v", err)
	}
	if stats.Total != 3 || stats.Canceladas != 1 {
		t.Errorf("Total/Canceladas = %d/%d, want 3/1", stats.Total, stats.Canceladas)
	}
	// Cancelled rows are excluded from spend.
	if stats.TotalSpend != 20000 {
		t.Errorf("TotalSpend = %v, want 20000", stats.TotalSpend)
	}
	if len(stats.PorDeporte) != 2 {
		t.Fatalf("PorDeporte len = %d, want 2", len(stats.PorDeporte))
	}
	if stats.PorDeporte[0].Deporte != "basquet" || stats.PorDeporte[0].Count != 2 {
		t.Errorf("PorDeporte[0] = %+v, want basquet x2", stats.PorDeporte[0])
	}
}

func TestRemoveReserva(t *testing.T) {
	db := openTestDB(t)
	if err := AddReserva(db, sampleReserva("a", 101, "2026-09-05")); err != nil {
		t.Fatalf("AddReserva: %v", err)
	}

	ok, err := RemoveReserva(db, "a")
	if err != nil || !ok {
		t.Fatalf("RemoveReserva = %v, %v; want true, nil", ok, err)
	}
	reservas, err := ListReservas(db, ReservaFilter{})
	if err != nil {
		t.Fatalf("ListReservas: %v", err)
	}
	if len(reservas) != 0 {
		t.Errorf("len = %d after remove, want 0", len(reservas))
	}
}
