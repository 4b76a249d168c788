// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitRequest: the questionnaire payload posted by the form

# Response Types

  - CheckIPResponse: alreadyAnswered
  - SubmitResponse: status, message
  - Report: aggregate statistics for the dashboard
  - ErrorResponse: error, message

# Domain Types

  - Response: one stored submission
  - OpenResponse: a free-text answer with its id and date

# Closed Choices

Every single-choice question has its own string type with a Valid method
implemented as an exhaustive switch, and an ordered member list used to
zero-fill reports:

	Sexe      SexeValues
	Usage     UsageValues
	Interest  InterestValues
	Culture   CultureValues
	Style     StyleValues
	Hook      HookValues

# Validation

	if err := models.ValidateSubmission(req); err != nil {
		// err is a *ValidationError, e.g. "Invalid age"
	}

Age must lie in [MinAge, MaxAge]. The form itself allows up to MaxAgeInput;
both bounds are kept on purpose.
*/
package models
