package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sporthub-cli/api"
	"sporthub-cli/storage"
)

func reservarCmd() *cobra.Command {
	var fecha string
	var horario string

	cmd := &cobra.Command{
		Use:   "reservar <cancha-id>",
		Short: "Book a facility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canchaID, err := strconv.Atoi(args[0])
			if err != nil || canchaID <= 0 {
				return fmt.Errorf("invalid facility id %q", args[0])
			}

			date, err := parseDateInput(fecha)
			if err != nil {
				return err
			}
			inicio, fin, err := parseTimeRange(horario)
			if err != nil {
				return err
			}

			ctx := context.Background()

			// Load the facility first: bookings against inactive facilities
			// are rejected server-side anyway, failing early gives a clearer
			// message.
			facility, err := loadFacility(ctx, canchaID)
			if err != nil {
				return err
			}
			if !facility.Activa {
				return fmt.Errorf("cancha %d (%s) is not accepting reservations", canchaID, facility.Nombre)
			}

			input := api.CreateReservaInput{
				IDCancha:     canchaID,
				FechaReserva: date.Format("2006-01-02"),
				HoraInicio:   inicio,
				HoraFin:      fin,
			}
			reserva, err := client.CreateReserva(ctx, input)
			if err != nil {
				return fmt.Errorf("booking failed: %w", err)
			}

			// Record in the local ledger. Ledger failures must not undo a
			// booking the backend already accepted.
			if db, dbErr := storage.OpenReservasDB(); dbErr == nil {
				defer db.Close()
				entry := storage.Reserva{
					ID:          uuid.NewString(),
					RemoteID:    reserva.ID,
					CanchaID:    canchaID,
					CanchaName:  facility.Nombre,
					Deporte:     facility.Tipo,
					Fecha:       input.FechaReserva,
					HoraInicio:  inicio,
					HoraFin:     fin,
					Precio:      reserva.PrecioTotal,
					Estado:      reserva.Estado,
					RegistradaA: time.Now().UTC().Format(time.RFC3339),
				}
				if err := storage.AddReserva(db, entry); err != nil {
					log.WithField("error", err.Error()).Warn("could not record reservation locally")
				}
			} else {
				log.WithField("error", dbErr.Error()).Warn("local reservation ledger unavailable")
			}

			if outputJSON {
				return writeJSON(reserva)
			}
			fmt.Printf("Reserved %s on %s %s-%s (reservation %d).\n",
				facility.Nombre, input.FechaReserva, inicio, fin, reserva.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fecha, "fecha", "", "Date (YYYY-MM-DD, 'hoy' or 'manana')")
	cmd.Flags().StringVar(&horario, "horario", "", "Time range HH:MM-HH:MM")
	_ = cmd.MarkFlagRequired("fecha")
	_ = cmd.MarkFlagRequired("horario")
	return cmd
}
