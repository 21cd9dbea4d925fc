package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
)

// OpenMeteoClient implements Provider using the Open-Meteo forecast API.
type OpenMeteoClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewOpenMeteoClient creates a new Open-Meteo client. baseURL without a
// trailing slash, e.g. https://api.open-meteo.com.
func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "hydration-api/1.0 (github.com/aqualog/hydration-api)",
	}
}

// Current fetches the current conditions plus today's min/max and UV for a
// coordinate pair. All failures wrap domain.ErrWeatherUnavailable so callers
// can treat the whole class uniformly.
func (c *OpenMeteoClient) Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,uv_index_max")
	q.Set("forecast_days", "1")
	q.Set("timezone", "UTC")

	reqURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: failed to create request: %v", domain.ErrWeatherUnavailable, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: API returned status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: failed to decode response: %v", domain.ErrWeatherUnavailable, err)
	}

	snapshot := domain.WeatherSnapshot{
		CurrentTemperatureC: forecast.Current.Temperature,
		// Open-Meteo reports humidity as a percentage
		Humidity:  forecast.Current.RelativeHumidity / 100,
		Condition: conditionFromWMOCode(forecast.Current.WeatherCode),
	}

	if len(forecast.Daily.TemperatureMax) > 0 {
		snapshot.MaxTemperatureC = forecast.Daily.TemperatureMax[0]
	} else {
		snapshot.MaxTemperatureC = forecast.Current.Temperature
	}
	if len(forecast.Daily.TemperatureMin) > 0 {
		snapshot.MinTemperatureC = forecast.Daily.TemperatureMin[0]
	} else {
		snapshot.MinTemperatureC = forecast.Current.Temperature
	}
	if len(forecast.Daily.UVIndexMax) > 0 {
		snapshot.UVIndex = int(math.Round(forecast.Daily.UVIndexMax[0]))
	}

	return snapshot, nil
}

// conditionFromWMOCode maps WMO weather interpretation codes to normalized
// conditions. Unlisted codes fall through to ConditionUnknown.
func conditionFromWMOCode(code int) domain.WeatherCondition {
	switch code {
	case 0:
		return domain.ConditionClear
	case 1:
		return domain.ConditionMostlyClear
	case 2:
		return domain.ConditionPartlyCloudy
	case 3:
		return domain.ConditionCloudy
	case 45, 48:
		return domain.ConditionFoggy
	case 51, 53, 55:
		return domain.ConditionDrizzle
	case 56, 57:
		return domain.ConditionFreezingDrizzle
	case 61, 63:
		return domain.ConditionRain
	case 65:
		return domain.ConditionHeavyRain
	case 66, 67:
		return domain.ConditionFreezingRain
	case 71, 77:
		return domain.ConditionFlurries
	case 73:
		return domain.ConditionSnow
	case 75:
		return domain.ConditionHeavySnow
	case 80, 81:
		return domain.ConditionSunShowers
	case 82:
		return domain.ConditionHeavyRain
	case 85:
		return domain.ConditionSnow
	case 86:
		return domain.ConditionHeavySnow
	case 95:
		return domain.ConditionThunderstorms
	case 96, 99:
		return domain.ConditionStrongStorms
	default:
		return domain.ConditionUnknown
	}
}

// Internal types for Open-Meteo API responses

type forecastResponse struct {
	Current struct {
		Temperature      float64 `json:"temperature_2m"`
		RelativeHumidity float64 `json:"relative_humidity_2m"`
		WeatherCode      int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		UVIndexMax     []float64 `json:"uv_index_max"`
	} `json:"daily"`
}
