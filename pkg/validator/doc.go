// Package validator provides declarative, schema-style validation for form
// submissions.
//
// Each check is expressed as a Rule bound to a named field. Apply runs the
// rules in order and gathers failures so that every invalid field surfaces
// exactly one message in a single pass:
//
//	err := validator.Apply(
//		validator.Required("name", req.Name).Msg("Name is required"),
//		validator.ValidEmail("email", req.Email).Msg("Please enter a valid email address"),
//		validator.MinLen("phone", req.Phone, 10).Msg("Phone number must be at least 10 digits"),
//	)
//	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
//		// errs.Messages() -> map[field]message for the failure response
//	}
//
// A field that fails stops accumulating further messages for itself, but
// validation continues for all other fields. Msg overrides the default
// message so schemas carry user-facing wording verbatim.
package validator
