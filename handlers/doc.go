// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the hmonglove survey API.

# Handler Types

Each handler is a struct around a ResponseStore; StatsHandler also takes
the config for the admin password:

  - EligibilityHandler: Has this address already answered
  - SubmitHandler: Validation and storage of one questionnaire
  - StatsHandler: Password-protected aggregate report

Handlers are created via constructor functions:

	submitHandler := handlers.NewSubmitHandler(store)

ResponseStore is satisfied by *db.ResponseStore; tests substitute their own.

# Eligibility

	GET /api/check-ip → CheckIP ({"alreadyAnswered": bool})

The check is advisory. Storage errors answer false, and submissions are
never refused because an address has answered before.

# Submission

	POST /api/submit → Submit

Failures answer {"status":"error","message":...}: 400 for malformed JSON or
a rejected field, 500 when the store fails.

# Report

	GET /api/stats → GetStats

Requires Authorization: Bearer <admin password>. The report itself is
computed by Aggregate, which is pure:

	report := handlers.Aggregate(responses, filter)

Closed-choice counts always contain every choice, tag counts only contain
tags that were seen, and averageAge rounds half up (0 when empty).
*/
package handlers
