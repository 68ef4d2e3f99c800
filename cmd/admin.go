package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"sporthub-cli/api"
	"sporthub-cli/catalog"
	"sporthub-cli/storage"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative facility and reservation management",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			creds, err := storage.LoadCredentials()
			if err != nil {
				return err
			}
			if creds == nil || creds.AccessToken == "" || creds.AccessTokenExpired(time.Now()) {
				return fmt.Errorf("admin commands require login: run 'sporthub auth login'")
			}
			return nil
		},
	}

	cmd.AddCommand(adminCanchaCreateCmd())
	cmd.AddCommand(adminCanchaUpdateCmd())
	cmd.AddCommand(adminCanchaDeleteCmd())
	cmd.AddCommand(adminReservaCreateCmd())
	cmd.AddCommand(adminReservaCancelCmd())
	return cmd
}

func adminCanchaCreateCmd() *cobra.Command {
	var input catalog.CreateFacilityInput

	cmd := &cobra.Command{
		Use:   "crear-cancha",
		Short: "Create a facility",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := catalog.CreatePayload(vocab, input)
			if err != nil {
				var verr *catalog.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("cannot create cancha: %s", verr.Error())
				}
				return err
			}

			raw, err := client.CreateCancha(context.Background(), payload)
			if err != nil {
				return err
			}
			facility, err := catalog.AdaptFacility(vocab, raw)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(facility)
			}
			fmt.Printf("Created cancha %d (%s).\n", facility.ID, facility.Nombre)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Nombre, "nombre", "", "Facility name")
	cmd.Flags().StringVar(&input.Tipo, "deporte", "", "Sport (any accepted spelling)")
	cmd.Flags().BoolVar(&input.Techada, "techada", false, "Covered facility")
	cmd.Flags().IntVar(&input.EstablecimientoID, "complejo", 0, "Venue id (required)")
	cmd.Flags().Float64Var(&input.PrecioPorHora, "precio", 0, "Price per hour")
	cmd.Flags().IntVar(&input.Capacidad, "capacidad", 0, "Capacity")
	cmd.Flags().StringVar(&input.Descripcion, "descripcion", "", "Description")
	cmd.Flags().StringVar(&input.ImagenURL, "imagen", "", "Main image URL")
	_ = cmd.MarkFlagRequired("nombre")
	return cmd
}

func adminCanchaUpdateCmd() *cobra.Command {
	var nombre string
	var deporte string
	var techada bool
	var activa bool
	var precio float64
	var capacidad int
	var descripcion string

	cmd := &cobra.Command{
		Use:   "editar-cancha <id>",
		Short: "Update a facility (only flags you pass are sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid facility id %q", args[0])
			}

			// Partial-update semantics: a flag the caller did not pass must
			// not reach the payload at all.
			input := catalog.UpdateFacilityInput{}
			if cmd.Flags().Changed("nombre") {
				input.Nombre = &nombre
			}
			if cmd.Flags().Changed("deporte") {
				input.Tipo = &deporte
			}
			if cmd.Flags().Changed("techada") {
				input.Techada = &techada
			}
			if cmd.Flags().Changed("activa") {
				input.Activa = &activa
			}
			if cmd.Flags().Changed("precio") {
				input.PrecioPorHora = &precio
			}
			if cmd.Flags().Changed("capacidad") {
				input.Capacidad = &capacidad
			}
			if cmd.Flags().Changed("descripcion") {
				input.Descripcion = &descripcion
			}

			payload := catalog.UpdatePayload(vocab, input)
			if len(payload) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			raw, err := client.UpdateCancha(context.Background(), id, payload)
			if err != nil {
				return err
			}
			facility, err := catalog.AdaptFacility(vocab, raw)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(facility)
			}
			fmt.Printf("Updated cancha %d (%s).\n", facility.ID, facility.Nombre)
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "Facility name")
	cmd.Flags().StringVar(&deporte, "deporte", "", "Sport")
	cmd.Flags().BoolVar(&techada, "techada", false, "Covered facility")
	cmd.Flags().BoolVar(&activa, "activa", false, "Accepting reservations")
	cmd.Flags().Float64Var(&precio, "precio", 0, "Price per hour")
	cmd.Flags().IntVar(&capacidad, "capacidad", 0, "Capacity")
	cmd.Flags().StringVar(&descripcion, "descripcion", "", "Description")
	return cmd
}

func adminCanchaDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "eliminar-cancha <id>",
		Short: "Delete a facility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid facility id %q", args[0])
			}
			if !force {
				return fmt.Errorf("deleting cancha %d is irreversible; pass --force to confirm", id)
			}
			if err := client.DeleteCancha(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Cancha %d deleted.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")
	return cmd
}

func adminReservaCreateCmd() *cobra.Command {
	var canchaID int
	var usuarioID int
	var fecha string
	var horario string

	cmd := &cobra.Command{
		Use:   "crear-reserva",
		Short: "Create a reservation on behalf of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateInput(fecha)
			if err != nil {
				return err
			}
			inicio, fin, err := parseTimeRange(horario)
			if err != nil {
				return err
			}

			input := api.CreateReservaAdminInput{
				IDCancha:     canchaID,
				FechaReserva: date.Format("2006-01-02"),
				HoraInicio:   inicio,
				HoraFin:      fin,
				IDUsuario:    usuarioID,
			}
			reserva, err := client.CreateReservaAdmin(context.Background(), input)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(reserva)
			}
			fmt.Printf("Reservation %d created for user %d.\n", reserva.ID, usuarioID)
			return nil
		},
	}

	cmd.Flags().IntVar(&canchaID, "cancha", 0, "Facility id")
	cmd.Flags().IntVar(&usuarioID, "usuario", 0, "User id")
	cmd.Flags().StringVar(&fecha, "fecha", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&horario, "horario", "", "Time range HH:MM-HH:MM")
	_ = cmd.MarkFlagRequired("cancha")
	_ = cmd.MarkFlagRequired("usuario")
	_ = cmd.MarkFlagRequired("fecha")
	_ = cmd.MarkFlagRequired("horario")
	return cmd
}

func adminReservaCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancelar-reserva <id>",
		Short: "Cancel any user's reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid reservation id %q", args[0])
			}
			if err := client.CancelarReservaAdmin(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Reservation %d cancelled.\n", id)
			return nil
		},
	}
	return cmd
}
