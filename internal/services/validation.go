package services

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"productorders/internal/events"
	"productorders/internal/shared"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateView checks struct tags and wraps failures in ErrInvalidArgument.
func validateView(v *validator.Validate, view any) error {
	err := v.Struct(view)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", shared.ErrInvalidArgument, strings.Join(messages, "; "))
}

// publish emits a catalog event. Failures are logged; the write has
// already been committed.
func publish(p events.Publisher, eventType string, entityID int64) {
	if p == nil {
		return
	}
	if err := p.Publish(events.New(eventType, entityID)); err != nil {
		log.Printf("Warning: failed to publish %s event for %d: %v", eventType, entityID, err)
	}
}
