package service

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"agrismart/internal/models"

	"gopkg.in/yaml.v2"
)

//go:embed charts.yml
var defaultChartSeed []byte

// fillAlpha matches a "20" hex alpha suffix (0x20/0xff).
const fillAlpha = "0.125"

var (
	errNoSeries        = errors.New("chart seed has no series")
	errUnknownActive   = errors.New("chart seed active key is not a known series")
	errDuplicateSeries = errors.New("chart seed has duplicate series key")

	hslPattern = regexp.MustCompile(`^hsl\((.+)\)$`)
	rgbPattern = regexp.MustCompile(`^rgb\((.+)\)$`)
	hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

type chartSeed struct {
	Active string               `yaml:"active"`
	Series []models.ChartSeries `yaml:"series"`
}

// ParseChartSeed decodes a YAML series definition.
func ParseChartSeed(data []byte) ([]models.ChartSeries, string, error) {
	var seed chartSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, "", fmt.Errorf("decode chart seed: %w", err)
	}
	return seed.Series, seed.Active, nil
}

// ChartRegistry is built once; afterwards only the active key changes.
type ChartRegistry struct {
	mu     sync.RWMutex
	order  []string
	series map[string]models.ChartSeries
	active string
}

// NewChartRegistry validates the series and selects active.
func NewChartRegistry(series []models.ChartSeries, active string) (*ChartRegistry, error) {
	if len(series) == 0 {
		return nil, errNoSeries
	}
	r := &ChartRegistry{series: make(map[string]models.ChartSeries, len(series))}
	for _, s := range series {
		if _, dup := r.series[s.Key]; dup {
			return nil, fmt.Errorf("%w: %q", errDuplicateSeries, s.Key)
		}
		if len(s.Labels) != len(s.Values) {
			return nil, fmt.Errorf("series %q: %d labels vs %d values", s.Key, len(s.Labels), len(s.Values))
		}
		s.FillColor = fillColor(s.Color)
		r.series[s.Key] = s
		r.order = append(r.order, s.Key)
	}
	if _, ok := r.series[active]; !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownActive, active)
	}
	r.active = active
	return r, nil
}

// NewDefaultChartRegistry loads the embedded infection/usage series.
func NewDefaultChartRegistry() (*ChartRegistry, error) {
	series, active, err := ParseChartSeed(defaultChartSeed)
	if err != nil {
		return nil, err
	}
	return NewChartRegistry(series, active)
}

// Select makes key the active series. Unknown keys are ignored and reported
// with ok=false.
func (r *ChartRegistry) Select(key string) (models.ChartSeries, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.series[key]
	if !ok {
		return models.ChartSeries{}, false
	}
	r.active = key
	return cloneSeries(s), true
}

func (r *ChartRegistry) Active() models.ChartSeries {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSeries(r.series[r.active])
}

func (r *ChartRegistry) ActiveKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Keys lists series keys in seed order.
func (r *ChartRegistry) Keys() []string {
	return append([]string(nil), r.order...)
}

// All returns every series in seed order.
func (r *ChartRegistry) All() []models.ChartSeries {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ChartSeries, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, cloneSeries(r.series[k]))
	}
	return out
}

func cloneSeries(s models.ChartSeries) models.ChartSeries {
	s.Labels = append([]string(nil), s.Labels...)
	s.Values = append([]float64(nil), s.Values...)
	return s
}

// fillColor derives the translucent fill drawn under a line.
func fillColor(color string) string {
	c := strings.TrimSpace(color)
	switch {
	case hslPattern.MatchString(c):
		return "hsla(" + hslPattern.FindStringSubmatch(c)[1] + ", " + fillAlpha + ")"
	case rgbPattern.MatchString(c):
		return "rgba(" + rgbPattern.FindStringSubmatch(c)[1] + ", " + fillAlpha + ")"
	case hexPattern.MatchString(c):
		return c + "20"
	default:
		return c
	}
}
