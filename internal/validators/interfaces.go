// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the request models
// accepted by the service layer.
//
// A Validator checks a whole value or, when field names are given, only the
// named fields of it. Services receive validators by injection so transport
// and storage code stay free of validation rules.
package validators

import "context"

// Validator validates the provided input and optionally
// restricts validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
