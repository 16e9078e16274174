package schema

// SignalGroup describes one signal group for display purposes.
type SignalGroup struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Purpose string  `json:"purpose"`
	Weight  float64 `json:"weight"`
	Formula string  `json:"formula"`
}

// WeightsRenderModel contains all processed data needed for displaying the
// active weight configuration.
type WeightsRenderModel struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Formula     string        `json:"formula"`
	Groups      []SignalGroup `json:"groups"`
	Config      WeightConfig  `json:"config"`
}
