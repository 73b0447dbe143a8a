// Package plot keeps the farm map's plot list. The list is one JSON
// document layered over the built-in default plots.
package plot

import "cropplan/entities"

// StorageKey names the document holding the saved plot list.
const StorageKey = "farmPlots"

// Merge layers stored plots over defaults by ID. For a plot present in
// both, each non-zero stored field wins and zero fields fall back to the
// default. Defaults keep their order and are never dropped; stored-only
// plots follow in stored order.
func Merge(defaults, stored []entities.Plot) []entities.Plot {
	byID := make(map[string]entities.Plot, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}
	out := make([]entities.Plot, 0, len(defaults)+len(stored))
	seen := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		seen[d.ID] = true
		if s, ok := byID[d.ID]; ok {
			out = append(out, overlay(d, s))
			continue
		}
		out = append(out, d)
	}
	for _, s := range stored {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

func overlay(d, s entities.Plot) entities.Plot {
	out := d
	if s.Name != "" {
		out.Name = s.Name
	}
	if s.AreaHa != 0 {
		out.AreaHa = s.AreaHa
	}
	if s.Crop != "" {
		out.Crop = s.Crop
	}
	if s.Variety != "" {
		out.Variety = s.Variety
	}
	if s.Status != "" {
		out.Status = s.Status
	}
	if len(s.Coordinates) > 0 {
		out.Coordinates = s.Coordinates
	}
	if s.Color != "" {
		out.Color = s.Color
	}
	return out
}
