package portal

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"agrimate/common/log"
	"agrimate/config"
)

// Query selects a location either by city name or by coordinates; a city
// name wins when both are set.
type Query struct {
	City string
	Lat  float64
	Lon  float64
}

type ForecastDay struct {
	Day       string  `json:"day"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Condition string  `json:"condition"`
	Rainfall  float64 `json:"rainfall"`
}

type Report struct {
	City        string        `json:"city"`
	Temperature float64       `json:"temperature"`
	Humidity    float64       `json:"humidity"`
	WindSpeed   float64       `json:"windSpeed"`
	Condition   string        `json:"condition"`
	Icon        string        `json:"icon"`
	UVIndex     float64       `json:"uvIndex"`
	Pressure    float64       `json:"pressure"`
	Visibility  float64       `json:"visibility"`
	Rainfall    float64       `json:"rainfall"`
	Forecast    []ForecastDay `json:"forecast"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Provider is the weather capability. The mock implementation is always
// available; the live one needs WEATHER_API_URL and WEATHER_API_KEY.
type Provider interface {
	Current(ctx context.Context, q Query) (Report, error)
}

// NewProvider selects the live provider when the configuration carries both
// API settings, the mock otherwise.
func NewProvider(cfg config.AppConfig) Provider {
	if cfg.WeatherAPIURL != "" && cfg.WeatherAPIKey != "" {
		return NewWeatherAPIProvider(cfg.WeatherAPIURL, cfg.WeatherAPIKey)
	}
	return &MockProvider{}
}

// MockProvider serves canned weather for common Indian cities and synthesizes
// plausible readings for everything else. It never fails.
type MockProvider struct{}

var mockCityWeather = map[string]Report{
	"Chennai":    {City: "Chennai, Tamil Nadu", Temperature: 28, Humidity: 70, WindSpeed: 12, Condition: "Partly Cloudy", Icon: "⛅", UVIndex: 8, Rainfall: 10},
	"Coimbatore": {City: "Coimbatore, Tamil Nadu", Temperature: 26, Humidity: 65, WindSpeed: 8, Condition: "Sunny", Icon: "☀️", UVIndex: 7, Rainfall: 0},
	"Madurai":    {City: "Madurai, Tamil Nadu", Temperature: 30, Humidity: 50, WindSpeed: 6, Condition: "Sunny", Icon: "☀️", UVIndex: 9, Rainfall: 0},
	"Bangalore":  {City: "Bengaluru, Karnataka", Temperature: 24, Humidity: 60, WindSpeed: 10, Condition: "Cloudy", Icon: "⛅", UVIndex: 6, Rainfall: 2},
	"Mysore":     {City: "Mysore, Karnataka", Temperature: 25, Humidity: 55, WindSpeed: 8, Condition: "Fair", Icon: "☀️", UVIndex: 6, Rainfall: 1},
	"Mumbai":     {City: "Mumbai, Maharashtra", Temperature: 29, Humidity: 75, WindSpeed: 14, Condition: "Humid", Icon: "☀️", UVIndex: 7, Rainfall: 5},
	"Pune":       {City: "Pune, Maharashtra", Temperature: 27, Humidity: 60, WindSpeed: 9, Condition: "Sunny", Icon: "☀️", UVIndex: 7, Rainfall: 0},
	"Amritsar":   {City: "Amritsar, Punjab", Temperature: 22, Humidity: 55, WindSpeed: 6, Condition: "Cool", Icon: "☀️", UVIndex: 5, Rainfall: 0},
	"Jaipur":     {City: "Jaipur, Rajasthan", Temperature: 33, Humidity: 30, WindSpeed: 10, Condition: "Hot", Icon: "☀️", UVIndex: 9, Rainfall: 0},
}

func (p *MockProvider) Current(ctx context.Context, q Query) (Report, error) {
	var report Report
	switch {
	case q.City != "":
		base, ok := mockCityWeather[q.City]
		if !ok {
			base = Report{
				City:        q.City,
				Temperature: 26 + rand.Float64()*6,
				Humidity:    60 + rand.Float64()*20,
				WindSpeed:   8 + rand.Float64()*10,
				Condition:   "Fair",
				Icon:        "☀️",
				UVIndex:     6,
				Rainfall:    rand.Float64() * 10,
			}
		}
		report = base
	default:
		report = Report{
			City:        fmt.Sprintf("Location (%.2f, %.2f)", q.Lat, q.Lon),
			Temperature: 25 + rand.Float64()*10,
			Humidity:    60 + rand.Float64()*30,
			WindSpeed:   8 + rand.Float64()*20,
			Condition:   "Fair",
			Icon:        "☀️",
			UVIndex:     7,
			Pressure:    1013,
			Visibility:  10,
		}
	}
	report.Forecast = mockForecast()
	report.Timestamp = time.Now()
	return report, nil
}

func mockForecast() []ForecastDay {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	conditions := []string{"☀️ Sunny", "⛅ Cloudy", "🌧️ Rainy", "⛈️ Thunderstorm", "☀️ Sunny"}
	forecast := make([]ForecastDay, 0, len(days))
	for _, day := range days {
		forecast = append(forecast, ForecastDay{
			Day:       day,
			High:      28 + rand.Float64()*8,
			Low:       18 + rand.Float64()*6,
			Condition: conditions[rand.Intn(len(conditions))],
			Rainfall:  rand.Float64() * 20,
		})
	}
	return forecast
}

// WeatherAPIProvider fetches live conditions and a 5-day forecast from
// weatherapi.com.
type WeatherAPIProvider struct {
	http *resty.Client
	key  string
}

func NewWeatherAPIProvider(baseURL, key string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		key:  key,
	}
}

type weatherAPIResponse struct {
	Location struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		Humidity   float64 `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		UV         float64 `json:"uv"`
		PressureMb float64 `json:"pressure_mb"`
		VisKm      float64 `json:"vis_km"`
		PrecipMm   float64 `json:"precip_mm"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64 `json:"maxtemp_c"`
				MinTempC      float64 `json:"mintemp_c"`
				TotalPrecipMm float64 `json:"totalprecip_mm"`
				Condition     struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (p *WeatherAPIProvider) Current(ctx context.Context, q Query) (Report, error) {
	location := q.City
	if location == "" {
		location = fmt.Sprintf("%f,%f", q.Lat, q.Lon)
	}
	var body weatherAPIResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":  p.key,
			"q":    location,
			"days": "5",
		}).
		SetResult(&body).
		Get("/forecast.json")
	if err != nil {
		return Report{}, errors.Wrap(err, "weather fetch")
	}
	if resp.IsError() {
		return Report{}, errors.Errorf("weather fetch: server returned %s", resp.Status())
	}

	city := body.Location.Name
	if body.Location.Region != "" {
		city += ", " + body.Location.Region
	}
	report := Report{
		City:        city,
		Temperature: body.Current.TempC,
		Humidity:    body.Current.Humidity,
		WindSpeed:   body.Current.WindKph,
		Condition:   body.Current.Condition.Text,
		UVIndex:     body.Current.UV,
		Pressure:    body.Current.PressureMb,
		Visibility:  body.Current.VisKm,
		Rainfall:    body.Current.PrecipMm,
		Timestamp:   time.Now(),
	}
	for _, d := range body.Forecast.ForecastDay {
		report.Forecast = append(report.Forecast, ForecastDay{
			Day:       d.Date,
			High:      d.Day.MaxTempC,
			Low:       d.Day.MinTempC,
			Condition: d.Day.Condition.Text,
			Rainfall:  d.Day.TotalPrecipMm,
		})
	}
	return report, nil
}

// WeatherManager renders current conditions with a 1h cache. A live provider
// failure degrades to the mock so the view always gets a report.
type WeatherManager struct {
	provider Provider
	mock     MockProvider
	view     WeatherView
	store    Storage

	mu  sync.Mutex
	seq uint64
}

func NewWeatherManager(provider Provider, view WeatherView, store Storage) *WeatherManager {
	return &WeatherManager{provider: provider, view: view, store: store}
}

func (m *WeatherManager) Load(ctx context.Context, q Query) {
	m.view.Loading()

	m.mu.Lock()
	m.seq++
	token := m.seq
	m.mu.Unlock()

	report, err := m.provider.Current(ctx, q)
	if err != nil {
		log.Logger().Debugf("weather fetch failed, using mock: %s", err.Error())
		report, _ = m.mock.Current(ctx, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.seq {
		return
	}
	m.view.RenderWeather(report)
	writeCache(m.store, WeatherCacheKey, report)
}

// LoadCached renders the cached report when it is under an hour old.
func (m *WeatherManager) LoadCached() bool {
	report, ok := readCache[Report](m.store, WeatherCacheKey)
	if !ok {
		return false
	}
	if time.Since(report.Timestamp) >= WeatherFreshFor {
		return false
	}
	m.view.RenderWeather(report)
	return true
}
