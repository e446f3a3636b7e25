// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the SkillSwap API.
//
// It owns the listener lifecycle: startup, cancellation through the
// caller's context, and graceful shutdown with a bounded drain period.
package server
