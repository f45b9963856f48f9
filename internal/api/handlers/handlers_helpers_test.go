package handlers

import (
	"context"
	"errors"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

// failingSource simulates an unavailable recommendation backend.
type failingSource struct{}

func (failingSource) Recommendations(context.Context) ([]model.Recommendation, error) {
	return nil, errors.New("backend down")
}

func (failingSource) Recommendation(context.Context, string) (model.Recommendation, error) {
	return model.Recommendation{}, errors.New("backend down")
}
