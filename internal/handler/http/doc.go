// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the SkillSwap auth core.
//
// It wires the chi router, the authorization gate, and the handlers of the
// /api/auth and /api/admin routes. Every error body is a JSON object of the
// form {"message": "..."}; internal details are logged and never returned.
package http
