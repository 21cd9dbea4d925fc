package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
)

func TestNewOpenMeteoClient(t *testing.T) {
	client := NewOpenMeteoClient("https://api.open-meteo.com")

	if client == nil {
		t.Fatal("NewOpenMeteoClient() returned nil")
	}

	if client.baseURL != "https://api.open-meteo.com" {
		t.Errorf("baseURL = %s, want https://api.open-meteo.com", client.baseURL)
	}

	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", client.httpClient.Timeout)
	}

	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}
}

func TestOpenMeteoClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		if got := r.URL.Query().Get("latitude"); got != "52.4100" {
			t.Errorf("latitude query = %s, want 52.4100", got)
		}
		if got := r.URL.Query().Get("forecast_days"); got != "1" {
			t.Errorf("forecast_days query = %s, want 1", got)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"current": {"temperature_2m": 31.4, "relative_humidity_2m": 35, "weather_code": 0},
			"daily": {"temperature_2m_max": [34.1], "temperature_2m_min": [19.2], "uv_index_max": [7.8]}
		}`)
	}))
	defer server.Close()

	client := NewOpenMeteoClient(server.URL)

	snapshot, err := client.Current(context.Background(), 52.41, 16.93)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if snapshot.CurrentTemperatureC != 31.4 {
		t.Errorf("CurrentTemperatureC = %v, want 31.4", snapshot.CurrentTemperatureC)
	}
	if snapshot.MaxTemperatureC != 34.1 {
		t.Errorf("MaxTemperatureC = %v, want 34.1", snapshot.MaxTemperatureC)
	}
	if snapshot.MinTemperatureC != 19.2 {
		t.Errorf("MinTemperatureC = %v, want 19.2", snapshot.MinTemperatureC)
	}
	if snapshot.Humidity != 0.35 {
		t.Errorf("Humidity = %v, want 0.35 (fractional)", snapshot.Humidity)
	}
	if snapshot.UVIndex != 8 {
		t.Errorf("UVIndex = %d, want 8 (rounded from 7.8)", snapshot.UVIndex)
	}
	if snapshot.Condition != domain.ConditionClear {
		t.Errorf("Condition = %s, want clear", snapshot.Condition)
	}
}

func TestOpenMeteoClient_Current_MissingDaily(t *testing.T) {
	// Some deployments omit daily blocks; current temperature stands in for
	// min and max so the swing reads as zero.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"current": {"temperature_2m": 22.0, "relative_humidity_2m": 60, "weather_code": 3}}`)
	}))
	defer server.Close()

	client := NewOpenMeteoClient(server.URL)

	snapshot, err := client.Current(context.Background(), 52.41, 16.93)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if snapshot.MaxTemperatureC != 22.0 || snapshot.MinTemperatureC != 22.0 {
		t.Errorf("min/max = %v/%v, want both 22.0", snapshot.MinTemperatureC, snapshot.MaxTemperatureC)
	}
	if snapshot.TemperatureSwingC() != 0 {
		t.Errorf("TemperatureSwingC() = %v, want 0", snapshot.TemperatureSwingC())
	}
	if snapshot.UVIndex != 0 {
		t.Errorf("UVIndex = %d, want 0", snapshot.UVIndex)
	}
}

func TestOpenMeteoClient_Current_ErrorStatuses(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			client := NewOpenMeteoClient(server.URL)

			_, err := client.Current(context.Background(), 52.41, 16.93)
			if err == nil {
				t.Fatal("Current() expected error")
			}
			if !errors.Is(err, domain.ErrWeatherUnavailable) {
				t.Errorf("error = %v, want ErrWeatherUnavailable", err)
			}
		})
	}
}

func TestOpenMeteoClient_Current_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"current": `)
	}))
	defer server.Close()

	client := NewOpenMeteoClient(server.URL)

	_, err := client.Current(context.Background(), 52.41, 16.93)
	if !errors.Is(err, domain.ErrWeatherUnavailable) {
		t.Errorf("error = %v, want ErrWeatherUnavailable", err)
	}
}

func TestConditionFromWMOCode(t *testing.T) {
	tests := []struct {
		code int
		want domain.WeatherCondition
	}{
		{0, domain.ConditionClear},
		{1, domain.ConditionMostlyClear},
		{2, domain.ConditionPartlyCloudy},
		{3, domain.ConditionCloudy},
		{45, domain.ConditionFoggy},
		{55, domain.ConditionDrizzle},
		{57, domain.ConditionFreezingDrizzle},
		{63, domain.ConditionRain},
		{65, domain.ConditionHeavyRain},
		{67, domain.ConditionFreezingRain},
		{71, domain.ConditionFlurries},
		{73, domain.ConditionSnow},
		{75, domain.ConditionHeavySnow},
		{81, domain.ConditionSunShowers},
		{95, domain.ConditionThunderstorms},
		{99, domain.ConditionStrongStorms},
		{42, domain.ConditionUnknown},
		{-1, domain.ConditionUnknown},
		{100, domain.ConditionUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("code=%d", tt.code), func(t *testing.T) {
			if got := conditionFromWMOCode(tt.code); got != tt.want {
				t.Errorf("conditionFromWMOCode(%d) = %s, want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestFallbackSnapshot(t *testing.T) {
	snapshot := FallbackSnapshot()

	if snapshot.CurrentTemperatureC != 20 {
		t.Errorf("CurrentTemperatureC = %v, want 20", snapshot.CurrentTemperatureC)
	}
	if snapshot.TemperatureSwingC() > 15 {
		t.Errorf("fallback swing %v must not trip the swing rule", snapshot.TemperatureSwingC())
	}
	if snapshot.Humidity != 0.50 {
		t.Errorf("Humidity = %v, want 0.50", snapshot.Humidity)
	}
	if snapshot.UVIndex >= 3 {
		t.Errorf("UVIndex = %d, must stay below the lowest UV tier", snapshot.UVIndex)
	}
}
