package calendar

import (
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

// NavigateWindowRequest carries the client's current window plus the
// navigation target. The transition is computed statelessly and the new
// window returned whole, so the client installs it as one snapshot.
type NavigateWindowRequest struct {
	StartDate     string  `json:"start_date"`
	ViewSpan      string  `json:"view_span"`
	LastNavigated *string `json:"last_navigated,omitempty"`
	TargetDate    string  `json:"target_date"`
}

func (r *NavigateWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.ViewSpan, ViewSpanValues) {
		errs = append(errs, validator.ValidationError{Field: "view_span", Message: "view_span must be one of day, week, biweek, month"})
	}
	if r.LastNavigated != nil {
		if _, ok := validator.IsValidDate(*r.LastNavigated); !ok {
			errs = append(errs, validator.ValidationError{Field: "last_navigated", Message: "last_navigated must be in YYYY-MM-DD format"})
		}
	}
	if _, ok := validator.IsValidDate(r.TargetDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "target_date", Message: "target_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
