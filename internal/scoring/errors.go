package scoring

import "errors"

// ErrMissingInput is returned when there is nothing to analyze: the resume or
// the job description is absent or carries no data at all. It is surfaced as a
// typed failure instead of an all-zero result that would look like a valid
// score.
var ErrMissingInput = errors.New("nothing to analyze: resume and job description are required")

// ErrComputationFault is returned when an internal invariant is violated,
// such as a weight table that does not sum to 1.0 or a negative years-of-
// experience value. Callers should treat it as a configuration or caller bug,
// not as a low score.
var ErrComputationFault = errors.New("computation fault")
