package domain

// Messages appended to a ValidationResult by the validators and the
// participation service. User facing; controllers pass them through verbatim.
const (
	MsgMissingOrBlank          = "One of the fields is missing or blank."
	MsgTimeInPast              = "Event time cannot be in the past."
	MsgEventInfoTooLong        = "Additional info is too long."
	MsgInfoTooLong             = "Additional info is longer than the allowed length."
	MsgInvalidCodeFormat       = "Code format is invalid."
	MsgEventNotFound           = "Event not found."
	MsgInvalidPayment          = "Invalid type of payment."
	MsgInvalidParticipantCount = "Number of participants is invalid."
	MsgParticipationNotFound   = "Participation not found."
	MsgEventSaveFailed         = "Failed to save event."
	MsgParticipationSaveFailed = "Failed to save participation."
)

// ValidationResult accumulates rule-violation messages for one validation
// pass. Empty means valid. A fresh result is built per call and returned to
// the caller regardless of outcome.
// swagger:model ValidationResult
type ValidationResult struct {
	Errors []string `json:"errors"`
}

// NewValidationResult returns an empty (valid) result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{Errors: []string{}}
}

// AddError appends a violation message.
func (r *ValidationResult) AddError(message string) {
	r.Errors = append(r.Errors, message)
}

// IsValid reports whether no rule was violated.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}
