// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies the signed JWTs of the SkillSwap API.
//
// Access tokens carry the user ID in "sub" and the role in "isAdmin"; they
// are short-lived and never stored. Refresh tokens carry the user ID and a
// random "jti"; they are long-lived and honored only while the session
// store holds their hash. The two kinds are signed with distinct HS256
// secrets so one can never be accepted in place of the other.
package token
