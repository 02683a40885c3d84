// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts. Longer passwords
// are rejected by [HashPassword], so callers validate the byte length first.
const MaxPasswordBytes = 72

// HashPassword hashes a plain-text password using the bcrypt algorithm.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// dummyHash is compared against when a user does not exist, so a failed
// login costs the same whether or not the username is known.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("heroes-timing-equaliser"), bcrypt.DefaultCost)

// CheckPasswordTiming performs a bcrypt comparison against a fixed hash and
// always reports false. Callers use it when the account lookup fails.
func CheckPasswordTiming(plainTextPassword string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plainTextPassword))
	return false
}
