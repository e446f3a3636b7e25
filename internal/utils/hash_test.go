// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("payload"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("payload", "key"))
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("token", "key"), HashString("token", "key"))
}

func TestHashString_DependsOnKeyAndData(t *testing.T) {
	base := HashString("token", "key")

	assert.NotEqual(t, base, HashString("token", "other-key"))
	assert.NotEqual(t, base, HashString("token2", "key"))
	assert.Len(t, base, sha256.Size*2)
}
