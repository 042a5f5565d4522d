package metno

import "time"

// Types mirror the locationforecast/2.0 JSON payload. Instant details and
// the next_X_hours blocks use pointers: met.no omits them near the end of
// the series, and the transforms need to tell "absent" from zero.

type forecastDocument struct {
	Properties struct {
		Meta struct {
			UpdatedAt time.Time `json:"updated_at"`
		} `json:"meta"`
		Timeseries []Timestep `json:"timeseries"`
	} `json:"properties"`
}

// Timestep is one hourly entry of the forecast payload. The first entry of
// a fetched series is treated as "now".
type Timestep struct {
	Time time.Time `json:"time"`
	Data struct {
		Instant struct {
			Details InstantDetails `json:"details"`
		} `json:"instant"`
		Next1Hours  *NextHours `json:"next_1_hours"`
		Next6Hours  *NextHours `json:"next_6_hours"`
		Next12Hours *NextHours `json:"next_12_hours"`
	} `json:"data"`
}

type InstantDetails struct {
	AirPressureAtSeaLevel *float64 `json:"air_pressure_at_sea_level"`
	AirTemperature        *float64 `json:"air_temperature"`
	CloudAreaFraction     *float64 `json:"cloud_area_fraction"`
	RelativeHumidity      *float64 `json:"relative_humidity"`
	WindFromDirection     *float64 `json:"wind_from_direction"`
	WindSpeed             *float64 `json:"wind_speed"`
}

type NextHours struct {
	Summary struct {
		SymbolCode string `json:"symbol_code"`
	} `json:"summary"`
}
