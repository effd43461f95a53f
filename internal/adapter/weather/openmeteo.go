package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

// OpenMeteoProvider resolves a locality through the Open-Meteo geocoding API
// and aggregates its daily forecast into a short-term summary: the last three
// fully past days plus the next three.
type OpenMeteoProvider struct {
	geocodeURL  string
	forecastURL string
	http        *http.Client
	now         func() time.Time
}

var _ ports.WeatherProvider = (*OpenMeteoProvider)(nil)

func NewOpenMeteoProvider(geocodeURL, forecastURL string) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		geocodeURL:  geocodeURL,
		forecastURL: forecastURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		now: time.Now,
	}
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		SunshineDuration []float64 `json:"sunshine_duration"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

func (p *OpenMeteoProvider) SummaryByLocation(ctx context.Context, loc domain.UserLocation) (*domain.WeatherSummary, error) {
	lat, lon, ok, err := p.geocodeLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return p.fetchSummary(ctx, lat, lon)
}

// geocodeLocation tries progressively broader queries: "municipality,
// district, Portugal", then municipality alone, then district alone.
func (p *OpenMeteoProvider) geocodeLocation(ctx context.Context, loc domain.UserLocation) (lat, lon float64, ok bool, err error) {
	queries := make([]string, 0, 3)
	switch {
	case loc.Municipality != "" && loc.District != "":
		queries = append(queries,
			loc.Municipality+", "+loc.District+", Portugal",
			loc.Municipality+", Portugal",
			loc.District+", Portugal",
		)
	case loc.Municipality != "":
		queries = append(queries, loc.Municipality+", Portugal")
	case loc.District != "":
		queries = append(queries, loc.District+", Portugal")
	default:
		return 0, 0, false, nil
	}

	for _, q := range queries {
		lat, lon, ok, err = p.geocode(ctx, q)
		if err != nil {
			return 0, 0, false, err
		}
		if ok {
			return lat, lon, true, nil
		}
	}
	return 0, 0, false, nil
}

func (p *OpenMeteoProvider) geocode(ctx context.Context, name string) (lat, lon float64, ok bool, err error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", "pt")
	params.Set("format", "json")

	var out geocodeResponse
	if err := p.getJSON(ctx, p.geocodeURL+"?"+params.Encode(), &out); err != nil {
		return 0, 0, false, err
	}
	if len(out.Results) == 0 {
		return 0, 0, false, nil
	}
	return out.Results[0].Latitude, out.Results[0].Longitude, true, nil
}

func (p *OpenMeteoProvider) fetchSummary(ctx context.Context, lat, lon float64) (*domain.WeatherSummary, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", lat))
	params.Set("longitude", fmt.Sprintf("%g", lon))
	params.Set("timezone", "auto")
	params.Set("daily", "precipitation_sum,sunshine_duration,temperature_2m_max")
	params.Set("past_days", "3")
	params.Set("forecast_days", "3")

	var out forecastResponse
	if err := p.getJSON(ctx, p.forecastURL+"?"+params.Encode(), &out); err != nil {
		return nil, err
	}

	d := out.Daily
	if len(d.Time) == 0 || len(d.PrecipitationSum) == 0 || len(d.SunshineDuration) == 0 || len(d.TemperatureMax) == 0 {
		zap.L().Warn("forecast response missing daily series")
		return nil, nil
	}

	today := p.now().UTC().Format(time.DateOnly)
	idxToday := -1
	for i, day := range d.Time {
		if day == today {
			idxToday = i
			break
		}
	}
	lastIndex := len(d.Time) - 1

	endPast := idxToday - 1
	if idxToday == -1 {
		endPast = lastIndex - 3
	}
	var past []int
	for _, i := range []int{endPast, endPast - 1, endPast - 2} {
		if i >= 0 && i <= lastIndex {
			past = append(past, i)
		}
	}

	startForecast := idxToday + 1
	if idxToday == -1 {
		startForecast = lastIndex - 2
	}
	var future []int
	for _, i := range []int{startForecast, startForecast + 1, startForecast + 2} {
		if i >= 0 && i <= lastIndex {
			future = append(future, i)
		}
	}

	rainYesterday := 0.0
	if len(past) > 0 {
		rainYesterday = d.PrecipitationSum[past[0]]
	}

	return &domain.WeatherSummary{
		Latitude:              lat,
		Longitude:             lon,
		RainLast3Days:         round1(sumAt(d.PrecipitationSum, past)),
		RainYesterday:         round1(rainYesterday),
		ForecastRainNext3Days: round1(sumAt(d.PrecipitationSum, future)),
		AvgSunshineHours:      round1(avgAt(d.SunshineDuration, past) / 3600),
		AvgMaxTemp:            round1(avgAt(d.TemperatureMax, past)),
		UpdatedAt:             p.now(),
	}, nil
}

func (p *OpenMeteoProvider) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open-meteo returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func sumAt(values []float64, idxs []int) float64 {
	total := 0.0
	for _, i := range idxs {
		if i < len(values) {
			total += values[i]
		}
	}
	return total
}

func avgAt(values []float64, idxs []int) float64 {
	if len(idxs) == 0 {
		return 0
	}
	return sumAt(values, idxs) / float64(len(idxs))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
