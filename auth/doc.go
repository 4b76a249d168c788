// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides IP fingerprinting and the shared-secret gate for the
statistics dashboard.

# IP Hashing

Submitters are identified only by a one-way hash of their address:

	hash := auth.HashIP(middleware.GetClientIP(r))

The result is the hex SHA-256 digest (64 chars). It is used for duplicate
detection and never exposed in JSON.

# Stats Access

The dashboard sends the admin password as a bearer token:

	Authorization: Bearer <ADMIN_PASSWORD>

	ok := auth.AuthorizeHeader(r.Header.Get("Authorization"), cfg.AdminPassword)

With no password configured every request is denied. Comparison is constant
time. There is no lockout or rate limiting.
*/
package auth
