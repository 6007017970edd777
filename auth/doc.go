// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential checking and session tokens for the
admin API, plus identifier generation for submissions.

# Admin Sessions

Admin passwords are stored as bcrypt hashes and compared in constant
time. A successful login issues a signed HS256 token carrying the admin
id, valid for 24 hours:

	token, err := auth.IssueToken(adminID, cfg.SessionSecret)
	adminID, err := auth.ValidateToken(token, cfg.SessionSecret)

Handlers behind middleware.RequireAdmin recover the acting admin with
AdminFromRequest, which reads the Authorization: Bearer header.

Possession of a valid token does not grant access to every poll:
mutations additionally check that the acting admin owns the poll.

# Submission Sessions

NewSessionID generates the opaque session identifier stamped on each
response row. It exists for audit display only; it is not a
one-submission-per-person guarantee.
*/
package auth
