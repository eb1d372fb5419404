// Package validation holds the declarative rules for user payloads. It is
// pure: no I/O, no globals, and a clock injectable for the age rule.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/userdash/user-dashboard/internal/core/domain"
)

const (
	minAge = 18
	maxAge = 100

	dateLayout = "2006-01-02"
)

var dobPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FieldErrors maps a json field name to a human-readable message. Every
// failing field is reported; within one field the first failing rule wins.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// UserPayload is the create request body. IsActive is a pointer so that an
// absent value can be defaulted to true during normalization.
type UserPayload struct {
	Email       string `json:"email"       validate:"required,email"`
	FirstName   string `json:"firstName"   validate:"required,min=2,max=50"`
	MiddleName  string `json:"middleName"  validate:"omitempty,max=50"`
	LastName    string `json:"lastName"    validate:"required,min=2,max=50"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,dob_date,dob_age"`
	RoleID      int    `json:"roleId"      validate:"required,gt=0"`
	IsActive    *bool  `json:"isActive"`
	Country     string `json:"country"     validate:"required,min=2,max=50"`
}

// Validator wraps go-playground/validator with the dashboard's custom date
// rules. Construct one per process; it is safe for concurrent use.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New returns a Validator using the wall clock for the age rule.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Validator computing ages against the given clock.
// Tests use a fixed clock to hit the 18 and 100 year boundaries exactly.
func NewWithClock(now func() time.Time) *Validator {
	uv := &Validator{v: validator.New(), now: now}

	// Report struct fields under their json names.
	uv.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// dob_date: literal YYYY-MM-DD shape and a real calendar date.
	// time.Parse rejects impossible dates such as 2023-02-30.
	uv.v.RegisterValidation("dob_date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !dobPattern.MatchString(s) {
			return false
		}
		_, err := time.Parse(dateLayout, s)
		return err == nil
	})

	// dob_age: computed age in [18,100], accounting for whether the
	// birthday has occurred this year. Runs after dob_date, so the value
	// is known to parse.
	uv.v.RegisterValidation("dob_age", func(fl validator.FieldLevel) bool {
		birth, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		age := ageAt(birth, uv.now())
		return age >= minAge && age <= maxAge
	})

	return uv
}

// ValidateNew checks a full create payload. On success it returns the
// normalized form data (isActive defaulted to true when absent) and a nil
// error map.
func (uv *Validator) ValidateNew(p UserPayload) (domain.UserFormData, FieldErrors) {
	if err := uv.v.Struct(p); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fe := make(FieldErrors, len(ve))
			for _, f := range ve {
				fe[f.Field()] = message(f.Field(), f.Tag(), f.Param())
			}
			return domain.UserFormData{}, fe
		}
		return domain.UserFormData{}, FieldErrors{"payload": err.Error()}
	}

	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return domain.UserFormData{
		Email:       p.Email,
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		RoleID:      p.RoleID,
		IsActive:    active,
		Country:     p.Country,
	}, nil
}

// ValidatePatch applies the same per-field rules to a partial payload, only
// for the fields actually present. A nil return means the patch is valid.
func (uv *Validator) ValidatePatch(p domain.UserUpdate) FieldErrors {
	fe := make(FieldErrors)

	if p.Email != nil {
		uv.check(fe, "email", *p.Email, "required,email")
	}
	if p.FirstName != nil {
		uv.check(fe, "firstName", *p.FirstName, "required,min=2,max=50")
	}
	if p.MiddleName != nil {
		uv.check(fe, "middleName", *p.MiddleName, "omitempty,max=50")
	}
	if p.LastName != nil {
		uv.check(fe, "lastName", *p.LastName, "required,min=2,max=50")
	}
	if p.DateOfBirth != nil {
		uv.check(fe, "dateOfBirth", *p.DateOfBirth, "required,dob_date,dob_age")
	}
	if p.RoleID != nil {
		uv.check(fe, "roleId", *p.RoleID, "required,gt=0")
	}
	if p.Country != nil {
		uv.check(fe, "country", *p.Country, "required,min=2,max=50")
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

// check runs a single-value rule chain and records the first failing tag.
func (uv *Validator) check(fe FieldErrors, field string, value any, tags string) {
	err := uv.v.Var(value, tags)
	if err == nil {
		return
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe[field] = message(field, ve[0].Tag(), ve[0].Param())
		return
	}
	fe[field] = fmt.Sprintf("%s failed validation", field)
}

// ageAt computes full years between birth and now, subtracting one when the
// birthday has not yet occurred this year.
func ageAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// message converts a (field, tag) pair into the dashboard's wording.
func message(field, tag, param string) string {
	switch field + "." + tag {
	case "email.required":
		return "Email is required"
	case "email.email":
		return "Please enter a valid email address"
	case "firstName.required":
		return "First name is required"
	case "firstName.min":
		return "First name must be at least 2 characters"
	case "firstName.max":
		return "First name must not exceed 50 characters"
	case "middleName.max":
		return "Middle name must not exceed 50 characters"
	case "lastName.required":
		return "Last name is required"
	case "lastName.min":
		return "Last name must be at least 2 characters"
	case "lastName.max":
		return "Last name must not exceed 50 characters"
	case "dateOfBirth.required":
		return "Date of birth is required"
	case "dateOfBirth.dob_date":
		return "Invalid date format. Must be in YYYY-MM-DD format"
	case "dateOfBirth.dob_age":
		return fmt.Sprintf("User must be between %d and %d years old", minAge, maxAge)
	case "roleId.required", "roleId.gt":
		return "Role ID must be a positive number"
	case "country.required":
		return "Country is required"
	case "country.min":
		return "Country must be at least 2 characters"
	case "country.max":
		return "Country must not exceed 50 characters"
	}
	if param != "" {
		return fmt.Sprintf("%s failed validation (%s=%s)", field, tag, param)
	}
	return fmt.Sprintf("%s failed validation (%s)", field, tag)
}
