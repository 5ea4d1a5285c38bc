package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrDuplicateID is reported when two entries share an identifier.
var ErrDuplicateID = errors.New("duplicate entry id")

// ErrInvalidEntry is reported when an entry fails field validation.
var ErrInvalidEntry = errors.New("invalid entry")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func v() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Report summarises a catalog check.
type Report struct {
	Entries  int
	Featured []string
}

// MultipleFeatured reports whether more than one entry carries the featured
// flag. Only the first of them is ever shown.
func (r Report) MultipleFeatured() bool {
	return len(r.Featured) > 1
}

// Validate checks entries before they become a catalog. Field problems and
// duplicate ids are errors; several featured entries are not.
func Validate(entries []Entry) (Report, error) {
	report := Report{Entries: len(entries)}
	var errs []error
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		if err := v().Struct(entry); err != nil {
			errs = append(errs, describeFieldErrors(i, entry, err))
		}
		if entry.ID != "" {
			if first, ok := seen[entry.ID]; ok {
				errs = append(errs, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateID, entry.ID, first, i))
			} else {
				seen[entry.ID] = i
			}
		}
		if entry.Featured {
			report.Featured = append(report.Featured, entry.ID)
		}
	}
	return report, errors.Join(errs...)
}

func describeFieldErrors(pos int, entry Entry, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w at position %d: %v", ErrInvalidEntry, pos, err)
	}
	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fe.Field()+" is required")
		case "gte":
			problems = append(problems, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		default:
			problems = append(problems, fe.Field()+" failed "+fe.Tag())
		}
	}
	label := entry.ID
	if label == "" {
		label = fmt.Sprintf("#%d", pos)
	}
	return fmt.Errorf("%w %s: %s", ErrInvalidEntry, label, strings.Join(problems, ", "))
}
