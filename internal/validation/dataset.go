package validation

import (
	"fmt"
	"time"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// ParseMarket validates a market query parameter.
func ParseMarket(value string) (model.Market, error) {
	switch model.Market(value) {
	case model.MarketJapan:
		return model.MarketJapan, nil
	case model.MarketUS:
		return model.MarketUS, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidMarket, value)
}

// ParseStyle validates a style query parameter.
func ParseStyle(value string) (model.Style, error) {
	switch model.Style(value) {
	case model.StyleSwing:
		return model.StyleSwing, nil
	case model.StyleLong:
		return model.StyleLong, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStyle, value)
}

// ParseDataset validates a (market, style) pair from query parameters.
func ParseDataset(market, style string) (model.Dataset, error) {
	m, err := ParseMarket(market)
	if err != nil {
		return model.Dataset{}, err
	}
	s, err := ParseStyle(style)
	if err != nil {
		return model.Dataset{}, err
	}
	return model.Dataset{Market: m, Style: s}, nil
}

// ParseDate validates a YYYY-MM-DD query parameter.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, value)
	}
	return t, nil
}
