package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/bakery-order-app/models"
)

// ValidationError is a recoverable input problem. The message is shown to the
// customer as-is; nothing has been uploaded or persisted when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// MinLeadDays is how many days ahead the event date must be, inclusive.
const MinLeadDays = 2

// ValidateOrder checks the form rule by rule and returns the first failure.
// Rule order is fixed so an invalid form always produces the same message.
func ValidateOrder(form *models.OrderForm) error {
	if len(form.Items) == 0 {
		return &ValidationError{Message: "At least one cake must be specified"}
	}

	for i, item := range form.Items {
		n := i + 1
		switch {
		case item.SizeID == "":
			return validationErrorf("Cake %d: Size is required", n)
		case item.ShapeID == "":
			return validationErrorf("Cake %d: Shape is required", n)
		case item.FlavorID == "":
			return validationErrorf("Cake %d: Flavor is required", n)
		case item.FillingID == "":
			return validationErrorf("Cake %d: Filling is required", n)
		case item.DesignID == "":
			return validationErrorf("Cake %d: Design is required", n)
		}
	}

	eventDate, err := time.ParseInLocation("2006-01-02", form.DeliveryDate, time.Local)
	if err != nil {
		return &ValidationError{Message: "Delivery date is not a valid date"}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	minDate := today.AddDate(0, 0, MinLeadDays)
	if eventDate.Before(minDate) {
		return validationErrorf("Delivery date must be at least %d days in the future", MinLeadDays)
	}

	if form.DeliveryOption == models.DeliveryOptionDelivery &&
		strings.TrimSpace(form.DeliveryAddress) == "" {
		return &ValidationError{Message: "Delivery address is required for delivery option"}
	}

	if !form.AgreeToTerms {
		return &ValidationError{Message: "You must agree to the terms and conditions"}
	}
	if !form.AgreeToRefundPolicy {
		return &ValidationError{Message: "You must agree to the refund policy"}
	}

	if strings.TrimSpace(form.CustomerName) == "" {
		return &ValidationError{Message: "Name is required"}
	}
	if strings.TrimSpace(form.ContactNumber) == "" {
		return &ValidationError{Message: "Contact number is required"}
	}

	if form.EventTime != "" {
		if err := validateEventTime(form.EventTime); err != nil {
			return err
		}
	}

	return nil
}

// The shop takes events between 9:00 AM and 8:00 PM.
func validateEventTime(value string) error {
	parts := strings.SplitN(value, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts) != 2 {
		return &ValidationError{Message: "Event time is not a valid time"}
	}
	if hour < 9 || hour >= 20 {
		return &ValidationError{Message: "Please select a time between 9:00 AM and 8:00 PM"}
	}
	return nil
}
