package entities

type PlotStatus string

const (
	PlotPlanting    PlotStatus = "plantio"
	PlotPreparation PlotStatus = "preparo"
	PlotFertilizing PlotStatus = "adubacao"
	PlotGroundSpray PlotStatus = "pulverizacao-terrestre"
	PlotAerialSpray PlotStatus = "pulverizacao-aerea"
	PlotHarvest     PlotStatus = "colheita"
	PlotResting     PlotStatus = "descanso"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Plot is persisted as part of a single JSON blob, not as its own table.
type Plot struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	AreaHa      float64    `json:"area"`
	Crop        string     `json:"crop"`
	Variety     string     `json:"variety,omitempty"`
	Status      PlotStatus `json:"status"`
	Coordinates []LatLng   `json:"coordinates"`
	Color       string     `json:"color"`
}
