package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sporthub-cli/catalog"
	"sporthub-cli/storage"
)

func complejosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complejos",
		Short: "List and manage venues",
	}

	cmd.AddCommand(complejosListCmd())
	cmd.AddCommand(complejosShowCmd())
	cmd.AddCommand(complejosFallbackCmd())
	return cmd
}

func complejosListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			complejos, err := client.GetComplejos(ctx)
			if err != nil {
				return err
			}

			sort.Slice(complejos, func(i, j int) bool {
				return complejos[i].Nombre < complejos[j].Nombre
			})

			if outputJSON {
				return writeJSON(complejos)
			}

			if len(complejos) == 0 {
				fmt.Println("No venues found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tNAME\tADDRESS")
			}
			for _, complejo := range complejos {
				fmt.Fprintf(writer, "%d\t%s\t%s\n", complejo.IDComplejo, complejo.Nombre, complejo.Direccion)
			}
			return writer.Flush()
		},
	}
	return cmd
}

func complejosShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show resolved venue data (falls back to static data when the backend is down)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid venue id %q", args[0])
			}

			fallbacks, err := storage.LoadFallbacks()
			if err != nil {
				log.WithField("error", err.Error()).Warn("fallback overrides unavailable, using built-ins")
				fallbacks = catalog.DefaultFallbacks()
			}

			resolver := catalog.NewVenueResolver(client, fallbacks, log)
			venue := resolver.Resolve(context.Background(), id)

			if outputJSON {
				return writeJSON(venue)
			}

			if venue.Nombre != "" {
				fmt.Println(venue.Nombre)
			}
			fmt.Printf("  Dirección: %s\n", venue.Direccion)
			if venue.Coordinates != nil {
				fmt.Printf("  Mapa:      %.4f, %.4f\n", venue.Coordinates.Lat, venue.Coordinates.Lng)
			}
			fmt.Printf("  Horario:   %s\n", venue.HorarioAtencion)
			if venue.Telefono != "" {
				fmt.Printf("  Teléfono:  %s\n", venue.Telefono)
			}
			if venue.Source == catalog.VenueSourceFallback {
				fmt.Println("  (showing static fallback data; live venue data unavailable)")
			}
			return nil
		},
	}
	return cmd
}

func complejosFallbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fallback",
		Short: "Manage per-venue static fallback data",
	}

	cmd.AddCommand(complejosFallbackSetCmd())
	cmd.AddCommand(complejosFallbackRemoveCmd())
	return cmd
}

func complejosFallbackSetCmd() *cobra.Command {
	var nombre string
	var direccion string
	var horario string
	var telefono string
	var lat float64
	var lng float64

	cmd := &cobra.Command{
		Use:   "set <venue-id>",
		Short: "Set the static fallback shown when a venue can't be fetched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid venue id %q", args[0])
			}

			defaults := catalog.VenueDefaults{
				Nombre:          nombre,
				Direccion:       direccion,
				HorarioAtencion: horario,
				Telefono:        telefono,
			}
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				defaults.Coordinates = &catalog.Coordinates{Lat: lat, Lng: lng}
			}

			if err := storage.SaveFallbackVenue(id, defaults); err != nil {
				return err
			}
			fmt.Printf("Fallback saved for venue %d.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "Venue name")
	cmd.Flags().StringVar(&direccion, "direccion", "", "Street address")
	cmd.Flags().StringVar(&horario, "horario", "", "Operating hours text")
	cmd.Flags().StringVar(&telefono, "telefono", "", "Contact phone")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	return cmd
}

func complejosFallbackRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <venue-id>",
		Short: "Remove a venue's static fallback override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid venue id %q", args[0])
			}
			removed, err := storage.RemoveFallbackVenue(id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("No fallback override for venue %d.\n", id)
				return nil
			}
			fmt.Printf("Fallback override removed for venue %d.\n", id)
			return nil
		},
	}
	return cmd
}
