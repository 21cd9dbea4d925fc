package domain

// WeatherCondition is the normalized sky/precipitation state reported by a
// weather provider. Providers map their own vocabularies onto this set;
// anything they cannot classify becomes ConditionUnknown.
type WeatherCondition string

const (
	ConditionClear                 WeatherCondition = "clear"
	ConditionMostlyClear           WeatherCondition = "mostly_clear"
	ConditionPartlyCloudy          WeatherCondition = "partly_cloudy"
	ConditionMostlyCloudy          WeatherCondition = "mostly_cloudy"
	ConditionCloudy                WeatherCondition = "cloudy"
	ConditionFoggy                 WeatherCondition = "foggy"
	ConditionHaze                  WeatherCondition = "haze"
	ConditionSmoky                 WeatherCondition = "smoky"
	ConditionBreezy                WeatherCondition = "breezy"
	ConditionWindy                 WeatherCondition = "windy"
	ConditionDrizzle               WeatherCondition = "drizzle"
	ConditionRain                  WeatherCondition = "rain"
	ConditionHeavyRain             WeatherCondition = "heavy_rain"
	ConditionSunShowers            WeatherCondition = "sun_showers"
	ConditionIsolatedThunderstorms WeatherCondition = "isolated_thunderstorms"
	ConditionScatteredThunderstorm WeatherCondition = "scattered_thunderstorms"
	ConditionThunderstorms         WeatherCondition = "thunderstorms"
	ConditionStrongStorms          WeatherCondition = "strong_storms"
	ConditionFlurries              WeatherCondition = "flurries"
	ConditionSnow                  WeatherCondition = "snow"
	ConditionHeavySnow             WeatherCondition = "heavy_snow"
	ConditionBlowingSnow           WeatherCondition = "blowing_snow"
	ConditionBlizzard              WeatherCondition = "blizzard"
	ConditionSleet                 WeatherCondition = "sleet"
	ConditionFreezingDrizzle       WeatherCondition = "freezing_drizzle"
	ConditionFreezingRain          WeatherCondition = "freezing_rain"
	ConditionWintryMix             WeatherCondition = "wintry_mix"
	ConditionHail                  WeatherCondition = "hail"
	ConditionHot                   WeatherCondition = "hot"
	ConditionFrigid                WeatherCondition = "frigid"
	ConditionTropicalStorm         WeatherCondition = "tropical_storm"
	ConditionHurricane             WeatherCondition = "hurricane"
	ConditionUnknown               WeatherCondition = "unknown"
)

// WeatherSnapshot is a point-in-time weather observation for one location.
// Humidity is fractional (0.55, never 55). Immutable once fetched.
type WeatherSnapshot struct {
	// Current air temperature in degrees Celsius
	CurrentTemperatureC float64 `json:"current_temperature_c" example:"31.5"`
	// Forecast daily maximum in degrees Celsius
	MaxTemperatureC float64 `json:"max_temperature_c" example:"34.0"`
	// Forecast daily minimum in degrees Celsius
	MinTemperatureC float64 `json:"min_temperature_c" example:"19.0"`
	// Relative humidity as a fraction in [0,1]
	Humidity float64 `json:"humidity" example:"0.35"`
	// UV index, non-negative
	UVIndex int `json:"uv_index" example:"7"`
	// Normalized condition
	Condition WeatherCondition `json:"condition" example:"clear"`
}

// TemperatureSwingC is the forecast day's max-min spread.
func (w WeatherSnapshot) TemperatureSwingC() float64 {
	return w.MaxTemperatureC - w.MinTemperatureC
}
