// Package validation holds the two independent form policies of the roster
// screen: the edit dialog policy and the add dialog policy. Both report
// failures as inline, per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/csg33k/roster-admin/internal/domain"
)

// Errors maps a form field key to the message shown under that field.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, k+": "+e[k])
	}
	return strings.Join(msgs, "; ")
}

// Policy checks an employee before it is saved.
type Policy interface {
	Name() string
	Validate(e domain.Employee) Errors
}

var (
	looseEmailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	tenDigitsRe  = regexp.MustCompile(`^\d{10}$`)
)

// newValidator returns a validator that reports fields by their `form` tag
// and knows the roster-specific tags.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "ten_digits", func(fl validator.FieldLevel) bool {
		return tenDigitsRe.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// collect turns validator output into field messages using msgs, keyed by
// "<field>.<tag>".
func collect(err error, msgs map[string]string) Errors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"_": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		key := fe.Field()
		if msg, ok := msgs[key+"."+fe.Tag()]; ok {
			out[key] = msg
			continue
		}
		out[key] = "Invalid value"
	}
	return out
}
