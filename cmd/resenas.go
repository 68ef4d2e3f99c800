package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sporthub-cli/api"
)

func resenasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resenas",
		Short: "List and post facility reviews",
	}

	cmd.AddCommand(resenasListCmd())
	cmd.AddCommand(resenasAddCmd())
	return cmd
}

func resenasListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <cancha-id>",
		Short: "List reviews for a facility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canchaID, err := strconv.Atoi(args[0])
			if err != nil || canchaID <= 0 {
				return fmt.Errorf("invalid facility id %q", args[0])
			}

			resenas, err := client.ListResenas(context.Background(), canchaID)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(resenas)
			}

			if len(resenas) == 0 {
				fmt.Println("No reviews yet.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "RATING\tAUTHOR\tDATE\tCOMMENT")
			}
			for _, r := range resenas {
				fmt.Fprintf(writer, "%.0f\t%s\t%s\t%s\n", r.Calificacion, r.Autor, r.Fecha, r.Comentario)
			}
			return writer.Flush()
		},
	}
	return cmd
}

func resenasAddCmd() *cobra.Command {
	var rating float64
	var comentario string

	cmd := &cobra.Command{
		Use:   "add <cancha-id>",
		Short: "Post a review (requires login and a confirmed reservation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canchaID, err := strconv.Atoi(args[0])
			if err != nil || canchaID <= 0 {
				return fmt.Errorf("invalid facility id %q", args[0])
			}
			if rating < 1 || rating > 5 {
				return fmt.Errorf("--rating must be between 1 and 5")
			}

			input := api.CreateResenaInput{
				IDCancha:     canchaID,
				Calificacion: rating,
				Comentario:   comentario,
			}
			resena, err := client.CreateResena(context.Background(), input)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(resena)
			}
			fmt.Printf("Review posted for cancha %d.\n", canchaID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating 1-5")
	cmd.Flags().StringVar(&comentario, "comentario", "", "Review text")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
