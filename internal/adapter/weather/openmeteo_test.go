package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

func TestSummaryByLocation_AggregatesDailySeries(t *testing.T) {
	var geocodeQueries []string

	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		geocodeQueries = append(geocodeQueries, r.URL.Query().Get("name"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"latitude":41.15,"longitude":-8.61}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "3", r.URL.Query().Get("past_days"))
		require.Equal(t, "3", r.URL.Query().Get("forecast_days"))
		w.Header().Set("Content-Type", "application/json")
		// three past days, today, two forecast days
		_, _ = w.Write([]byte(`{"daily":{
			"time":["2026-06-12","2026-06-13","2026-06-14","2026-06-15","2026-06-16","2026-06-17"],
			"precipitation_sum":[2.0,3.0,7.0,1.0,4.0,8.0],
			"sunshine_duration":[36000,36000,43200,0,0,0],
			"temperature_2m_max":[27.0,29.0,31.0,30.0,30.0,30.0]
		}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewOpenMeteoProvider(server.URL+"/geocode", server.URL+"/forecast")
	p.now = func() time.Time { return time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC) }

	summary, err := p.SummaryByLocation(context.Background(), domain.UserLocation{
		District: "Porto", Municipality: "Matosinhos",
	})
	require.NoError(t, err)
	require.NotNil(t, summary)

	require.Equal(t, []string{"Matosinhos, Porto, Portugal"}, geocodeQueries)
	require.Equal(t, 41.15, summary.Latitude)
	require.Equal(t, 12.0, summary.RainLast3Days)   // 2+3+7
	require.Equal(t, 7.0, summary.RainYesterday)    // 2026-06-14
	require.Equal(t, 12.0, summary.ForecastRainNext3Days)
	require.Equal(t, 10.7, summary.AvgSunshineHours) // (10h+10h+12h)/3
	require.Equal(t, 29.0, summary.AvgMaxTemp)
}

func TestSummaryByLocation_GeocodeFallbackChain(t *testing.T) {
	var geocodeQueries []string

	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		geocodeQueries = append(geocodeQueries, name)
		w.Header().Set("Content-Type", "application/json")
		if name == "Bragança, Portugal" {
			_, _ = w.Write([]byte(`{"results":[{"latitude":41.8,"longitude":-6.75}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"daily":{
			"time":["2026-06-14","2026-06-15"],
			"precipitation_sum":[0,0],
			"sunshine_duration":[0,0],
			"temperature_2m_max":[20,20]
		}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewOpenMeteoProvider(server.URL+"/geocode", server.URL+"/forecast")
	p.now = func() time.Time { return time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC) }

	summary, err := p.SummaryByLocation(context.Background(), domain.UserLocation{
		District: "Bragança", Municipality: "Aldeia Inexistente",
	})
	require.NoError(t, err)
	require.NotNil(t, summary)
	require.Equal(t, []string{
		"Aldeia Inexistente, Bragança, Portugal",
		"Aldeia Inexistente, Portugal",
		"Bragança, Portugal",
	}, geocodeQueries)
}

func TestSummaryByLocation_NoGeocodeHitIsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewOpenMeteoProvider(server.URL+"/geocode", server.URL+"/forecast")

	summary, err := p.SummaryByLocation(context.Background(), domain.UserLocation{District: "Atlantis"})
	require.NoError(t, err)
	require.Nil(t, summary)
}
