package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func canchaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancha <id>",
		Short: "Show a facility's resolved detail view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid facility id %q", args[0])
			}

			ctx := context.Background()
			vm, err := buildFacilityView(ctx, id)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(vm)
			}

			fmt.Printf("%s (%s)\n", vm.Nombre, vm.DeporteLabel)
			fmt.Printf("  %s\n", vm.Descripcion)
			fmt.Printf("  Estado:     %s\n", vm.Estado)
			fmt.Printf("  Ubicación:  %s\n", vm.LocationText)
			if vm.Coordinates != nil {
				fmt.Printf("  Mapa:       %.4f, %.4f\n", vm.Coordinates.Lat, vm.Coordinates.Lng)
			}
			fmt.Printf("  Horario:    %s\n", vm.ScheduleText)
			fmt.Printf("  Capacidad:  %s\n", vm.CapacityText)
			if vm.PrecioDesde > 0 {
				fmt.Printf("  Desde:      $%.0f/h\n", vm.PrecioDesde)
			}
			if vm.Rating > 0 {
				fmt.Printf("  Rating:     %.1f (%d reseñas)\n", vm.Rating, vm.TotalResenas)
			}
			if vm.Telefono != "" {
				fmt.Printf("  Teléfono:   %s\n", vm.Telefono)
			}
			fmt.Println("  Servicios:")
			for _, amenity := range vm.Amenities {
				fmt.Printf("    - %s\n", amenity)
			}
			return nil
		},
	}
	return cmd
}
