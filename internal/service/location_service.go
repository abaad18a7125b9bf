package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sipspot-be/internal/pkg/apperr"

	"github.com/patrickmn/go-cache"
)

const geoapifySearchURL = "https://api.geoapify.com/v1/geocode/search"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type ILocationService interface {
	Geocode(ctx context.Context, addressLine, city, postalCode, country string) (*Coordinates, error)
}

type locationService struct {
	geoapifyKey string
	cache       *cache.Cache
	httpClient  *http.Client
}

func NewLocationService(geoapifyKey string) ILocationService {
	// Geocoding results for a fixed address rarely change; cache for a day.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &locationService{
		geoapifyKey: geoapifyKey,
		cache:       c,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *locationService) Geocode(ctx context.Context, addressLine, city, postalCode, country string) (*Coordinates, error) {
	if s.geoapifyKey == "" {
		// Geocoding is optional; without a key establishments simply have no
		// coordinates.
		return nil, nil
	}

	text := strings.Join([]string{addressLine, city, postalCode, country}, ", ")
	cacheKey := fmt.Sprintf("geocode:%s", text)
	if val, ok := s.cache.Get(cacheKey); ok {
		return val.(*Coordinates), nil
	}

	params := url.Values{}
	params.Add("text", text)
	params.Add("apiKey", s.geoapifyKey)
	params.Add("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geoapifySearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("geocoding request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(fmt.Errorf("geocoding returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	var result struct {
		Features []struct {
			Properties struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperr.Upstream(err)
	}
	if len(result.Features) == 0 {
		return nil, nil
	}

	coords := &Coordinates{
		Latitude:  result.Features[0].Properties.Lat,
		Longitude: result.Features[0].Properties.Lon,
	}
	s.cache.Set(cacheKey, coords, cache.DefaultExpiration)
	return coords, nil
}
