package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Reserva is a reservation in the local ledger. The ledger mirrors what the
// backend accepted so history survives backend pruning and works offline.
type Reserva struct {
	ID          string  `json:"id"` // local uuid
	RemoteID    int     `json:"remote_id"`
	CanchaID    int     `json:"cancha_id"`
	CanchaName  string  `json:"cancha_name"`
	Deporte     string  `json:"deporte"`
	VenueName   string  `json:"venue_name"`
	Fecha       string  `json:"fecha"` // YYYY-MM-DD
	HoraInicio  string  `json:"hora_inicio"`
	HoraFin     string  `json:"hora_fin"`
	Precio      float64 `json:"precio"`
	Estado      string  `json:"estado"`
	RegistradaA string  `json:"registrada_a"` // RFC3339
}

type ReservaFilter struct {
	From     string
	To       string
	Past     bool
	Upcoming bool
	NowDate  string
}

// OpenReservasDB opens the ledger at the default config path.
func OpenReservasDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := ReservasPath()
	if err != nil {
		return nil, err
	}
	return OpenReservasDBAt(path)
}

// OpenReservasDBAt opens the ledger at an explicit path (tests use a temp
// dir).
func OpenReservasDBAt(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := ensureReservasSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureReservasSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS reservas (
  id TEXT PRIMARY KEY,
  remote_id INTEGER,
  cancha_id INTEGER,
  cancha_name TEXT,
  deporte TEXT,
  venue_name TEXT,
  fecha TEXT,
  hora_inicio TEXT,
  hora_fin TEXT,
  precio REAL,
  estado TEXT,
  registrada_a TEXT
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create reservas table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reservas_fecha ON reservas(fecha);"); err != nil {
		return fmt.Errorf("create reservas index: %w", err)
	}
	return nil
}

func AddReserva(db *sql.DB, reserva Reserva) error {
	query := `
INSERT INTO reservas (
  id, remote_id, cancha_id, cancha_name, deporte, venue_name, fecha, hora_inicio, hora_fin, precio, estado, registrada_a
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := db.Exec(
		query,
		reserva.ID,
		reserva.RemoteID,
		reserva.CanchaID,
		reserva.CanchaName,
		reserva.Deporte,
		reserva.VenueName,
		reserva.Fecha,
		reserva.HoraInicio,
		reserva.HoraFin,
		reserva.Precio,
		reserva.Estado,
		reserva.RegistradaA,
	)
	return err
}

// MarkReservaCancelada flips the estado of the ledger row matching a remote
// reservation id. Returns false when the id is not in the ledger.
func MarkReservaCancelada(db *sql.DB, remoteID int) (bool, error) {
	res, err := db.Exec("UPDATE reservas SET estado = 'cancelada' WHERE remote_id = ?", remoteID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func RemoveReserva(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec("DELETE FROM reservas WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SportStat is one row of the per-sport ledger summary.
type SportStat struct {
	Deporte    string  `json:"deporte"`
	Count      int     `json:"count"`
	TotalSpend float64 `json:"total_spend"`
}

// ReservaStats summarizes the ledger: totals overall and grouped by sport.
// Cancelled rows count separately and are excluded from spend.
type ReservaStats struct {
	Total      int         `json:"total"`
	Canceladas int         `json:"canceladas"`
	TotalSpend float64     `json:"total_spend"`
	PorDeporte []SportStat `json:"por_deporte"`
}

func GetReservaStats(db *sql.DB) (ReservaStats, error) {
	stats := ReservaStats{}

	row := db.QueryRow(`
SELECT
  COUNT(*),
  COALESCE(SUM(CASE WHEN estado = 'cancelada' THEN 1 ELSE 0 END), 0),
  COALESCE(SUM(CASE WHEN estado != 'cancelada' THEN precio ELSE 0 END), 0)
FROM reservas`)
	if err := row.Scan(&stats.Total, &stats.Canceladas, &stats.TotalSpend); err != nil {
		return ReservaStats{}, err
	}

	rows, err := db.Query(`
SELECT deporte, COUNT(*), COALESCE(SUM(CASE WHEN estado != 'cancelada' THEN precio ELSE 0 END), 0)
FROM reservas
GROUP BY deporte
ORDER BY COUNT(*) DESC, deporte`)
	if err != nil {
		return ReservaStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var s SportStat
		if err := rows.Scan(&s.Deporte, &s.Count, &s.TotalSpend); err != nil {
			return ReservaStats{}, err
		}
		stats.PorDeporte = append(stats.PorDeporte, s)
	}
	if err := rows.Err(); err != nil {
		return ReservaStats{}, err
	}
	return stats, nil
}

func ListReservas(db *sql.DB, filter ReservaFilter) ([]Reserva, error) {
	base := `
SELECT id, remote_id, cancha_id, cancha_name, deporte, venue_name, fecha, hora_inicio, hora_fin, precio, estado, registrada_a
FROM reservas`

	conds := []string{}
	args := []any{}

	if filter.From != "" {
		conds = append(conds, "fecha >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		conds = append(conds, "fecha <= ?")
		args = append(args, filter.To)
	}
	if filter.From == "" && filter.To == "" {
		if filter.Past {
			conds = append(conds, "fecha <= ?")
			args = append(args, filter.NowDate)
		}
		if filter.Upcoming {
			conds = append(conds, "fecha >= ?")
			args = append(args, filter.NowDate)
		}
	}

	query := base
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY fecha, hora_inicio"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservas := []Reserva{}
	for rows.Next() {
		var r Reserva
		if err := rows.Scan(
			&r.ID,
			&r.RemoteID,
			&r.CanchaID,
			&r.CanchaName,
			&r.Deporte,
			&r.VenueName,
			&r.Fecha,
			&r.HoraInicio,
			&r.HoraFin,
			&r.Precio,
			&r.Estado,
			&r.RegistradaA,
		); err != nil {
			return nil, err
		}
		reservas = append(reservas, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservas, nil
}
