package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"sporthub-cli/catalog"
	"sporthub-cli/storage"
)

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseDateInput(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	now := time.Now()
	switch strings.ToLower(input) {
	case "hoy", "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "manana", "mañana", "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}
	parsed, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}

func parseClock(input string) (string, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", input)
	}
	return parsed.Format("15:04"), nil
}

func parseTimeRange(input string) (string, string, error) {
	parts := strings.Split(input, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid time range %q (expected HH:MM-HH:MM)", input)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return "", "", err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return "", "", err
	}
	if end <= start {
		return "", "", fmt.Errorf("time range end must be after start")
	}
	return start, end, nil
}

func formatBool(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

// loadFacility fetches a facility by id and adapts it to the canonical
// record.
func loadFacility(ctx context.Context, id int) (catalog.Facility, error) {
	raw, err := client.GetCanchaByID(ctx, id)
	if err != nil {
		return catalog.Facility{}, err
	}
	return catalog.AdaptFacility(vocab, raw)
}

// buildFacilityView runs the full pipeline for one facility: fetch, adapt,
// resolve venue (degrading to static fallbacks), build the view model.
func buildFacilityView(ctx context.Context, id int) (catalog.ViewModel, error) {
	facility, err := loadFacility(ctx, id)
	if err != nil {
		return catalog.ViewModel{}, err
	}

	fallbacks, err := storage.LoadFallbacks()
	if err != nil {
		log.WithField("error", err.Error()).Warn("fallback overrides unavailable, using built-ins")
		fallbacks = catalog.DefaultFallbacks()
	}

	resolver := catalog.NewVenueResolver(client, fallbacks, log)
	venue := resolver.Resolve(ctx, facility.EstablecimientoID)

	return catalog.BuildViewModel(vocab, fallbacks, facility, venue), nil
}
