package service

import (
	"fmt"

	"agrismart/internal/models"

	"github.com/Knetic/govaluate"
)

// AlertRule turns a sensor reading into a notification when Expression holds.
// Expressions see temperature_c, humidity, soil_moisture and battery_level.
type AlertRule struct {
	Name       string
	Expression string
	Message    string
	Label      string
	Severity   models.Severity
}

// DefaultAlertRules are checked in order; the first match wins.
// With the default battery floor of 85 the low_battery rule never matches.
var DefaultAlertRules = []AlertRule{
	{
		Name:       "low_soil_moisture",
		Expression: "soil_moisture < 30",
		Message:    "Low soil moisture detected",
		Label:      "1 min ago",
		Severity:   models.SeverityWarning,
	},
	{
		Name:       "low_battery",
		Expression: "battery_level < 20",
		Message:    "Battery level low",
		Label:      "2 min ago",
		Severity:   models.SeverityWarning,
	},
}

type compiledRule struct {
	AlertRule
	expr *govaluate.EvaluableExpression
}

// AlertEvaluator holds compiled rules.
type AlertEvaluator struct {
	rules []compiledRule
}

func NewAlertEvaluator(rules []AlertRule) (*AlertEvaluator, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		expr, err := govaluate.NewEvaluableExpression(r.Expression)
		if err != nil {
			return nil, fmt.Errorf("compile alert rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{AlertRule: r, expr: expr})
	}
	return &AlertEvaluator{rules: compiled}, nil
}

func readingParams(r models.SensorReading) map[string]interface{} {
	return map[string]interface{}{
		"temperature_c": r.TemperatureC,
		"humidity":      r.Humidity,
		"soil_moisture": r.SoilMoisture,
		"battery_level": r.BatteryLevel,
	}
}

// Evaluate returns the first rule that holds for r. Rules that fail to
// evaluate or yield a non-boolean are treated as not matching.
func (e *AlertEvaluator) Evaluate(r models.SensorReading) (AlertRule, bool) {
	params := readingParams(r)
	for _, rule := range e.rules {
		res, err := rule.expr.Evaluate(params)
		if err != nil {
			continue
		}
		if hit, ok := res.(bool); ok && hit {
			return rule.AlertRule, true
		}
	}
	return AlertRule{}, false
}
