package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/catalog/models"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
	"github.com/m04kA/SMC-StoreAdmin/pkg/totals"
)

// верхняя граница NUMERIC(10,2)
const (
	maxValueCents  int64 = 99_999_999_99
	maxValueDigits       = 10
)

func buildService(req *models.ServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required (max %d characters)", ErrInvalidInput, domain.MaxNameLength)
	}

	value, err := resolveValue(req)
	if err != nil {
		return nil, err
	}

	duration, err := normalizeDuration(req.Duration)
	if err != nil {
		return nil, err
	}

	return &domain.Service{
		StoreID:  req.StoreID,
		Name:     name,
		Value:    value,
		Duration: duration,
	}, nil
}

// resolveValue приоритет у valueCents: это сырое значение поля с маской валюты
func resolveValue(req *models.ServiceRequest) (float64, error) {
	if req.ValueCents != "" {
		digits := mask.Unmask(req.ValueCents)
		if digits == "" {
			return 0, fmt.Errorf("%w: valueCents must contain digits", ErrInvalidInput)
		}
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			return 0, nil
		}
		if len(digits) > maxValueDigits {
			return 0, fmt.Errorf("%w: value is too large", ErrInvalidInput)
		}
		cents, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || cents > maxValueCents {
			return 0, fmt.Errorf("%w: value is too large", ErrInvalidInput)
		}
		return totals.FromCents(cents), nil
	}

	if req.Value == nil {
		return 0, fmt.Errorf("%w: value is required", ErrInvalidInput)
	}

	value := *req.Value
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("%w: value must be a non-negative number", ErrInvalidInput)
	}

	cents := totals.ToCents(value)
	if cents > maxValueCents {
		return 0, fmt.Errorf("%w: value is too large", ErrInvalidInput)
	}

	return totals.FromCents(cents), nil
}

// normalizeDuration приводит длительность к HH:mm; нулевая длительность недопустима
func normalizeDuration(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: duration is required", ErrInvalidDuration)
	}
	if totals.ParseDuration(raw) <= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	return totals.NormalizeDuration(raw), nil
}
