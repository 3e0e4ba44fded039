package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	req := SignupRequest{
		Email:    "sample@gmail.com",
		Password: "samplepass123",
		Username: "sample",
		Address:  "Jakarta",
	}
	assert.Empty(t, req.Validate())
}

func TestSignupRequestValidateRequiredFields(t *testing.T) {
	errs := (&SignupRequest{}).Validate()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "address")
}

func TestSignupRequestValidateNoFormatRules(t *testing.T) {
	// Email shape and password strength are Firebase's concern.
	req := SignupRequest{
		Email:    "not-an-email",
		Password: "x",
		Username: "u",
		Address:  "a",
	}
	assert.Empty(t, req.Validate())
}
