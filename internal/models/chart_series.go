package models

// ChartSeries is a named period series backing the analytics chart.
// Labels and Values always have the same length.
type ChartSeries struct {
	Key         string    `json:"key" yaml:"key"`
	Labels      []string  `json:"labels" yaml:"labels"`
	Values      []float64 `json:"values" yaml:"values"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Color       string    `json:"color" yaml:"color"`
	FillColor   string    `json:"fill_color,omitempty" yaml:"-"` // translucent variant of Color
}
