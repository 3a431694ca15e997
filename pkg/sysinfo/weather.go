package sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/cache"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// DefaultWeatherURL is the OpenWeather current-weather endpoint.
const DefaultWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// siWeather is the cached subset of an OpenWeather response.
type siWeather struct {
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	City        string  `json:"city"`
}

// siWeatherResponse mirrors the fields of /data/2.5/weather we read.
type siWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Name string `json:"name"`
}

// Weather reports the current temperature at the configured location,
// "12°C" or, detailed, "12°C, overcast clouds". It is null when no
// location is configured.
type Weather struct{ opts Options }

// NewWeather returns the weather adapter.
func NewWeather(opts Options) *Weather { return &Weather{opts} }

func (a *Weather) Name() string { return facts.Weather }

func (a *Weather) Collect(ctx context.Context) facts.Value {
	if a.opts.Weather == "" || a.opts.WeatherAPI == "" {
		return facts.Null
	}
	w, err := a.lookup(ctx)
	if err != nil {
		a.opts.logger().Debug("weather lookup failed", "location", a.opts.Weather, "err", err)
		return facts.Null
	}
	return facts.Text(siWeatherText(w, a.opts.Detailed))
}

func (a *Weather) cacheKey() string {
	return "weather:" + strings.ToLower(strings.TrimSpace(a.opts.Weather))
}

func (a *Weather) lookup(ctx context.Context) (siWeather, error) {
	if a.opts.Cache != nil {
		if w, ok := cache.GetTyped[siWeather](a.opts.Cache, a.cacheKey()); ok {
			return w, nil
		}
	}
	w, err := a.fetch(ctx)
	if err != nil {
		return siWeather{}, err
	}
	if a.opts.Cache != nil {
		if err := cache.PutTyped(a.opts.Cache, a.cacheKey(), w); err != nil {
			a.opts.logger().Debug("weather cache write failed", "err", err)
		}
	}
	return w, nil
}

func (a *Weather) fetch(ctx context.Context) (siWeather, error) {
	base := a.opts.WeatherURL
	if base == "" {
		base = DefaultWeatherURL
	}
	q := url.Values{}
	q.Set("q", a.opts.Weather)
	q.Set("appid", a.opts.WeatherAPI)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return siWeather{}, err
	}
	resp, err := a.opts.httpClient().Do(req)
	if err != nil {
		return siWeather{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return siWeather{}, fmt.Errorf("openweather: %s", resp.Status)
	}

	var body siWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return siWeather{}, fmt.Errorf("openweather: decode: %w", err)
	}
	w := siWeather{Temp: body.Main.Temp, City: body.Name}
	if len(body.Weather) > 0 {
		w.Description = body.Weather[0].Description
		if w.Description == "" {
			w.Description = strings.ToLower(body.Weather[0].Main)
		}
	}
	return w, nil
}

func siWeatherText(w siWeather, detailed bool) string {
	t := math.Round(w.Temp)
	if t == 0 {
		t = 0 // no "-0°C"
	}
	text := fmt.Sprintf("%.0f°C", t)
	if detailed && w.Description != "" {
		text += ", " + w.Description
	}
	return text
}
