// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch is returned by BcryptHasher.Verify when the
	// password does not match the stored digest.
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrPasswordTooLong is returned by BcryptHasher.Hash for passwords
	// longer than 72 bytes.
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// BcryptHasher hashes and verifies passwords with bcrypt.
// It holds no mutable state and is safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or [bcrypt.DefaultCost] when
// cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt digest of password.
func (b *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify compares password against digest. It returns [ErrPasswordMismatch]
// on mismatch and a wrapped error when digest is not a bcrypt hash.
func (b *BcryptHasher) Verify(digest, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error verifying password: %w", err)
	}
}
