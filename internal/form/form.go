// Package form validates user input before it reaches the network.
//
// Validation mirrors the remote API's required fields: everything is checked
// client-side and a failed validation never produces a request.
package form

import (
	"time"

	"github.com/go-playground/validator/v10"

	"taskdeck/internal/service"
)

var validate = validator.New()

// TaskInput is the mutation form's content. DueDate is a calendar date in
// 2006-01-02 form. An empty ID means create; otherwise update.
type TaskInput struct {
	ID          string
	Title       string `validate:"required"`
	Description string `validate:"required"`
	DueDate     string `validate:"required,datetime=2006-01-02"`
	Status      string `validate:"required,oneof=Pending InProgress Completed"`
}

// Credentials is the login form's content.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Registration is the register form's content.
type Registration struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

// Errors maps field names to one human-readable message each.
type Errors map[string]string

// Get returns the message for a field, or "".
func (e Errors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Check validates any of the form structs above. A nil, empty result means
// the input is valid.
func Check(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if _, dup := out[fe.Field()]; dup {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

// message renders a field error the way the form shows it.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "datetime":
		return fe.Field() + " must be a date (YYYY-MM-DD)"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	}
	return fe.Field() + " is invalid"
}

// Task converts validated input into a service.Task. Call Check first;
// Task assumes the due date parses.
func (in TaskInput) Task() service.Task {
	due, _ := time.ParseInLocation("2006-01-02", in.DueDate, time.UTC)
	return service.Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     due,
		Status:      service.Status(in.Status),
	}
}

// FromTask seeds the form from an existing task, stripping the time-of-day
// from the due date.
func FromTask(t service.Task) TaskInput {
	return TaskInput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDateOnly(),
		Status:      string(t.Status),
	}
}
