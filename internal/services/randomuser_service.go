package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/alimgiray/staffdir/pkg/logger"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// RawUser is the slice of the random-user API payload the mapper needs
type RawUser struct {
	Login struct {
		UUID string `json:"uuid"`
	} `json:"login"`
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"location"`
	Picture struct {
		Large string `json:"large"`
	} `json:"picture"`
}

type randomUserResponse struct {
	Results []RawUser `json:"results"`
}

// RandomUserService fetches raw person records from the random-user API.
// The seed parameter keeps the upstream data set stable across calls.
type RandomUserService struct {
	client        *resty.Client
	seed          string
	nationalities string
}

func NewRandomUserService(apiURL, seed, nationalities string) *RandomUserService {
	client := resty.New().
		SetBaseURL(apiURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &RandomUserService{
		client:        client,
		seed:          seed,
		nationalities: nationalities,
	}
}

// FetchRawEmployees requests a batch of raw person records
func (s *RandomUserService) FetchRawEmployees(ctx context.Context, count int) ([]RawUser, error) {
	logger.WithFields(logrus.Fields{
		"url":     s.client.BaseURL,
		"results": count,
		"seed":    s.seed,
	}).Info("Fetching raw employee records")

	var payload randomUserResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"results": strconv.Itoa(count),
			"seed":    s.seed,
			"nat":     s.nationalities,
		}).
		SetResult(&payload).
		Get("/")
	if err != nil {
		logger.WithError(err).Error("Failed to fetch data from external API")
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		logger.WithField("status", resp.StatusCode()).Error("External API returned non-OK status")
		return nil, fmt.Errorf("%w: status %d", ErrDirectoryUnavailable, resp.StatusCode())
	}

	return payload.Results, nil
}
