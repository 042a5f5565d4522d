package forecast

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Tim-Abwao/wqu-weather-app/internal/metno"
	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

// CurrentConditions maps a metric name to a display string with its unit
// suffix, e.g. "Air pressure" -> "1013hPa".
type CurrentConditions map[string]string

// IconSet maps a look-ahead window ("1h", "6h", "12h") to a weather symbol
// code, e.g. "lightrain".
type IconSet map[string]string

// Sample is one hourly temperature reading, timestamped in the location's
// zone.
type Sample struct {
	Time    time.Time
	Celsius float64
}

// Series is an hourly temperature sequence in upstream order, ascending by
// time. Gaps are not repaired.
type Series []Sample

// DayExtreme holds the max/min temperature observed on one calendar day.
// Partial days keep whatever hours they have.
type DayExtreme struct {
	Day string // YYYY-MM-DD in the series' zone
	Max float64
	Min float64
}

// ExtractCurrent formats the six instantaneous metrics of a forecast entry.
func ExtractCurrent(step metno.Timestep) (CurrentConditions, error) {
	d := step.Data.Instant.Details
	fields := []struct {
		name  string
		value *float64
		unit  string
	}{
		{"Air pressure", d.AirPressureAtSeaLevel, "hPa"},
		{"Air temperature", d.AirTemperature, "°C"},
		{"Cloud area fraction", d.CloudAreaFraction, "%"},
		{"Relative humidity", d.RelativeHumidity, "%"},
		{"Wind direction (from)", d.WindFromDirection, "°"},
		{"Wind speed", d.WindSpeed, "m/s"},
	}

	current := make(CurrentConditions, len(fields))
	for _, f := range fields {
		if f.value == nil {
			return nil, fmt.Errorf("%w: instant details missing %q", upstream.ErrMalformed, f.name)
		}
		current[f.name] = formatNumber(*f.value) + f.unit
	}
	return current, nil
}

// ExtractIcons reads the symbol codes for the 1-, 6- and 12-hour windows.
// Entries near the end of a series lack the longer windows; that surfaces
// as an error rather than a partial set, since upstream always provides at
// least 12 hours when data exists.
func ExtractIcons(step metno.Timestep) (IconSet, error) {
	windows := []struct {
		key   string
		block *metno.NextHours
	}{
		{"1h", step.Data.Next1Hours},
		{"6h", step.Data.Next6Hours},
		{"12h", step.Data.Next12Hours},
	}

	icons := make(IconSet, len(windows))
	for _, w := range windows {
		if w.block == nil {
			return nil, fmt.Errorf("%w: forecast entry has no next_%s window", upstream.ErrMalformed, w.key)
		}
		icons[w.key] = w.block.Summary.SymbolCode
	}
	return icons, nil
}

// BuildSeries pairs each entry's timestamp with its air temperature and
// converts the timestamps into the given zone. Input order is preserved.
func BuildSeries(steps []metno.Timestep, zone *time.Location) (Series, error) {
	series := make(Series, 0, len(steps))
	for _, step := range steps {
		t := step.Data.Instant.Details.AirTemperature
		if t == nil {
			return nil, fmt.Errorf("%w: entry at %s has no air temperature", upstream.ErrMalformed, step.Time.Format(time.RFC3339))
		}
		series = append(series, Sample{Time: step.Time.In(zone), Celsius: *t})
	}
	return series, nil
}

// DailyExtremes resamples a series into calendar-day buckets in the
// samples' zone, each reduced to its max and min. Days appear in the order
// they occur in the series.
func DailyExtremes(series Series) []DayExtreme {
	var days []DayExtreme
	index := make(map[string]int)
	for _, s := range series {
		day := s.Time.Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			index[day] = len(days)
			days = append(days, DayExtreme{Day: day, Max: s.Celsius, Min: s.Celsius})
			continue
		}
		if s.Celsius > days[i].Max {
			days[i].Max = s.Celsius
		}
		if s.Celsius < days[i].Min {
			days[i].Min = s.Celsius
		}
	}
	return days
}

// CelsiusToFahrenheit converts exactly; rounding happens only at display
// time.
func CelsiusToFahrenheit(c float64) float64 {
	return 9.0/5.0*c + 32
}

// Headline renders the page title line. Celsius and Fahrenheit are each
// rounded from the raw Celsius value independently, so the two numbers are
// not guaranteed to be a consistent 32/1.8 pair after rounding.
func Headline(celsius float64, city, country string) string {
	return fmt.Sprintf("It's %.0f°C (%.0f°F) in %s, %s right now.",
		celsius, CelsiusToFahrenheit(celsius), city, country)
}

// formatNumber renders like the upstream JSON: 1013 stays "1013", 1013.2
// stays "1013.2".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
