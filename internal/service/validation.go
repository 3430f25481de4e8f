package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"thermostat_dashboard/internal/client"
)

// ErrValidation wraps every input rejection so handlers can answer 400.
var ErrValidation = errors.New("validation failed")

const startTimeTag = "start_time"

func newValidator() *validator.Validate {
	v := validator.New()
	// a start time is valid when it yields at least one trigger instant
	_ = v.RegisterValidation(startTimeTag, func(fl validator.FieldLevel) bool {
		return len(ScheduleCandidates(fl.Field().String(), nowForValidation())) > 0
	})
	return v
}

func validate(v *validator.Validate, in any) error {
	if err := v.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// emptyWithoutSession turns a missing session into an empty list.
func emptyWithoutSession[T any](items []T, err error) ([]T, error) {
	if errors.Is(err, client.ErrNoSession) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

var nowForValidation = RealClock().Now
