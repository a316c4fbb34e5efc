// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate checks incoming payloads before any mutation happens.

Each function returns an Errors value, a list of field-level failures
that also implements error. An empty list means the payload is accepted;
a non-empty list rejects the whole operation.

Two layers of checks exist for submissions:

  - Response: structural shape of the payload (formId present, items
    well-formed), done before the form is loaded.
  - Submission: semantic checks against the form's element definitions
    (value shape per type, option membership, required completeness),
    done by the handler once elements are in hand.
*/
package validate
