package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"sporthub-cli/catalog"
)

// LoadFallbacks returns the built-in fallback table with any user overrides
// from ~/.config/sporthub/fallbacks.json merged over it. A missing file is
// fine; a malformed one is an error so a typo doesn't silently disable
// overrides.
func LoadFallbacks() (catalog.FallbackTable, error) {
	table := catalog.DefaultFallbacks()

	path, err := FallbacksPath()
	if err != nil {
		return table, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return table, err
	}
	if info.IsDir() {
		return table, fmt.Errorf("fallbacks path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return table, err
	}
	defer file.Close()

	var overrides catalog.FallbackTable
	if err := json.NewDecoder(file).Decode(&overrides); err != nil {
		return table, fmt.Errorf("decode fallbacks file: %w", err)
	}

	return MergeFallbacks(table, overrides), nil
}

// SaveFallbackVenue writes or replaces a single per-venue override.
func SaveFallbackVenue(venueID int, defaults catalog.VenueDefaults) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}
	path, err := FallbacksPath()
	if err != nil {
		return err
	}

	overrides := catalog.FallbackTable{}
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &overrides); err != nil {
			return fmt.Errorf("decode fallbacks file: %w", err)
		}
	}
	if overrides.PorVenue == nil {
		overrides.PorVenue = map[int]catalog.VenueDefaults{}
	}
	overrides.PorVenue[venueID] = defaults

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(overrides)
}

// RemoveFallbackVenue deletes a per-venue override. Returns false when no
// override existed.
func RemoveFallbackVenue(venueID int) (bool, error) {
	path, err := FallbacksPath()
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	var overrides catalog.FallbackTable
	if err := json.Unmarshal(data, &overrides); err != nil {
		return false, fmt.Errorf("decode fallbacks file: %w", err)
	}
	if _, ok := overrides.PorVenue[venueID]; !ok {
		return false, nil
	}
	delete(overrides.PorVenue, venueID)

	file, err := os.Create(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return true, encoder.Encode(overrides)
}

// MergeFallbacks lays overrides over a base table. Venue overrides replace
// whole entries; sport overrides replace whole entries; generic fields merge
// individually.
func MergeFallbacks(base, overrides catalog.FallbackTable) catalog.FallbackTable {
	if overrides.Generic.Nombre != "" {
		base.Generic.Nombre = overrides.Generic.Nombre
	}
	if overrides.Generic.Direccion != "" {
		base.Generic.Direccion = overrides.Generic.Direccion
	}
	if overrides.Generic.Coordinates != nil {
		base.Generic.Coordinates = overrides.Generic.Coordinates
	}
	if overrides.Generic.HorarioAtencion != "" {
		base.Generic.HorarioAtencion = overrides.Generic.HorarioAtencion
	}
	if overrides.Generic.Telefono != "" {
		base.Generic.Telefono = overrides.Generic.Telefono
	}

	if len(overrides.PorVenue) > 0 {
		if base.PorVenue == nil {
			base.PorVenue = map[int]catalog.VenueDefaults{}
		}
		for id, entry := range overrides.PorVenue {
			base.PorVenue[id] = entry
		}
	}
	if len(overrides.PorDeporte) > 0 {
		if base.PorDeporte == nil {
			base.PorDeporte = map[string]catalog.SportDefaults{}
		}
		for key, entry := range overrides.PorDeporte {
			base.PorDeporte[key] = entry
		}
	}
	return base
}
