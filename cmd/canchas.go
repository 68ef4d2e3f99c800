package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sporthub-cli/api"
	"sporthub-cli/catalog"
)

func canchasCmd() *cobra.Command {
	var deporte string
	var complejo int
	var query string
	var maxPrecio float64
	var cubierta bool
	var descubierta bool
	var page int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "canchas",
		Short: "List facilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			if deporte == "" {
				deporte = cfg.DefaultDeporte
			}
			if complejo == 0 {
				complejo = cfg.DefaultComplejo
			}
			if pageSize == 0 {
				pageSize = cfg.DefaultPageSize
			}
			if cubierta && descubierta {
				return fmt.Errorf("choose either --cubierta or --descubierta")
			}

			filters := api.CanchaFilters{
				IDComplejo: complejo,
				Query:      query,
				MaxPrecio:  maxPrecio,
				Page:       page,
				PageSize:   pageSize,
			}
			if deporte != "" {
				filters.Deporte = vocab.CanonicalName(deporte)
			}
			if cubierta {
				v := true
				filters.Cubierta = &v
			}
			if descubierta {
				v := false
				filters.Cubierta = &v
			}

			ctx := context.Background()
			items, err := client.GetCanchas(ctx, filters)
			if err != nil {
				return err
			}

			facilities := make([]catalog.Facility, 0, len(items))
			for _, item := range items {
				facility, err := catalog.AdaptFacility(vocab, item)
				if err != nil {
					log.WithField("error", err.Error()).Warn("skipping undecodable facility record")
					continue
				}
				facilities = append(facilities, facility)
			}

			sort.Slice(facilities, func(i, j int) bool {
				return facilities[i].Nombre < facilities[j].Nombre
			})

			if outputJSON {
				return writeJSON(facilities)
			}

			if len(facilities) == 0 {
				fmt.Println("No facilities found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tNAME\tSPORT\tCOVERED\tSTATE\tPRICE/H")
			}
			for _, f := range facilities {
				price := "-"
				if f.PrecioPorHora > 0 {
					price = fmt.Sprintf("%.0f", f.PrecioPorHora)
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
					f.ID,
					f.Nombre,
					vocab.DisplayLabel(f.Tipo),
					formatBool(f.Techada, "yes", "no"),
					f.Estado,
					price,
				)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&deporte, "deporte", "", "Filter by sport (any accepted spelling)")
	cmd.Flags().IntVar(&complejo, "complejo", 0, "Filter by venue id")
	cmd.Flags().StringVar(&query, "q", "", "Free-text search")
	cmd.Flags().Float64Var(&maxPrecio, "max-precio", 0, "Maximum price per hour")
	cmd.Flags().BoolVar(&cubierta, "cubierta", false, "Only covered facilities")
	cmd.Flags().BoolVar(&descubierta, "descubierta", false, "Only open-air facilities")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Page size")
	return cmd
}
