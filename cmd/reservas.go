package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sporthub-cli/storage"
)

func reservasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservas",
		Short: "Manage reservations",
	}

	cmd.AddCommand(reservasListCmd())
	cmd.AddCommand(reservasRemoteCmd())
	cmd.AddCommand(reservasCancelCmd())
	cmd.AddCommand(reservasStatsCmd())
	return cmd
}

func reservasStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the local reservation ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := storage.OpenReservasDB()
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := storage.GetReservaStats(db)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(stats)
			}

			fmt.Printf("Reservations: %d (%d cancelled)\n", stats.Total, stats.Canceladas)
			fmt.Printf("Total spent:  $%.0f\n", stats.TotalSpend)
			if len(stats.PorDeporte) > 0 {
				writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
				fmt.Fprintln(writer, "SPORT\tCOUNT\tSPENT")
				for _, s := range stats.PorDeporte {
					fmt.Fprintf(writer, "%s\t%d\t$%.0f\n", vocab.DisplayLabel(s.Deporte), s.Count, s.TotalSpend)
				}
				return writer.Flush()
			}
			return nil
		},
	}
	return cmd
}

func reservasListCmd() *cobra.Command {
	var past bool
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations from the local ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := storage.ReservaFilter{}

			if from != "" {
				date, err := parseDateInput(from)
				if err != nil {
					return err
				}
				filter.From = date.Format("2006-01-02")
			}
			if to != "" {
				date, err := parseDateInput(to)
				if err != nil {
					return err
				}
				filter.To = date.Format("2006-01-02")
			}
			if filter.From != "" && filter.To != "" && filter.From > filter.To {
				return fmt.Errorf("--from must be on or before --to")
			}

			filter.NowDate = time.Now().Format("2006-01-02")
			if filter.From == "" && filter.To == "" {
				if past {
					filter.Past = true
				} else {
					filter.Upcoming = true
				}
			}

			db, err := storage.OpenReservasDB()
			if err != nil {
				return err
			}
			defer db.Close()

			reservas, err := storage.ListReservas(db, filter)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(reservas)
			}

			if len(reservas) == 0 {
				fmt.Println("No reservations found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tFACILITY\tSPORT\tDATE\tTIME\tSTATE")
			}
			for _, r := range reservas {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s-%s\t%s\n",
					r.RemoteID, r.CanchaName, vocab.DisplayLabel(r.Deporte),
					r.Fecha, r.HoraInicio, r.HoraFin, r.Estado)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&past, "past", false, "Show past reservations")
	cmd.Flags().StringVar(&from, "from", "", "Start date")
	cmd.Flags().StringVar(&to, "to", "", "End date")
	return cmd
}

func reservasRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "List reservations from the backend (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			reservas, err := client.GetMisReservas(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(reservas)
			}

			if len(reservas) == 0 {
				fmt.Println("No reservations found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tCANCHA\tDATE\tTIME\tSTATE")
			}
			for _, r := range reservas {
				fmt.Fprintf(writer, "%d\t%d\t%s\t%s-%s\t%s\n",
					r.ID, r.IDCancha, r.FechaReserva, r.HoraInicio, r.HoraFin, r.Estado)
			}
			return writer.Flush()
		},
	}
	return cmd
}

func reservasCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid reservation id %q", args[0])
			}

			reserva, err := client.CancelarReserva(context.Background(), id)
			if err != nil {
				return err
			}

			if db, dbErr := storage.OpenReservasDB(); dbErr == nil {
				defer db.Close()
				if _, err := storage.MarkReservaCancelada(db, id); err != nil {
					log.WithField("error", err.Error()).Warn("could not update local ledger")
				}
			}

			if outputJSON {
				return writeJSON(reserva)
			}
			fmt.Printf("Reservation %d cancelled.\n", id)
			return nil
		},
	}
	return cmd
}
