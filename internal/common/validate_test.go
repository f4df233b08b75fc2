package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ContactInput {
	return &ContactInput{
		Name:    "Ana Torres",
		Email:   "ana@example.com",
		Phone:   "5551234567",
		Message: "Hello, I would like more information.",
		Captcha: "captcha-token",
	}
}

func TestValidateContact_Valid(t *testing.T) {
	in := validInput()
	require.NoError(t, ValidateContact(in))
}

func TestValidateContact_TrimsFields(t *testing.T) {
	in := validInput()
	in.Name = "  Ana Torres  "
	in.Email = " ana@example.com "
	in.Phone = " 5551234567 "
	in.Message = "  Hello, I would like more information. "

	require.NoError(t, ValidateContact(in))
	assert.Equal(t, "Ana Torres", in.Name)
	assert.Equal(t, "ana@example.com", in.Email)
	assert.Equal(t, "5551234567", in.Phone)
	assert.Equal(t, "Hello, I would like more information.", in.Message)
}

// Length bounds count characters, so accented text near a limit must be
// judged by its rune count, not its UTF-8 byte count.
func TestValidateContact_MultibyteLengthsCountCharacters(t *testing.T) {
	in := validInput()
	in.Name = "Ñña" // 3 characters, 5 bytes
	in.Message = strings.Repeat("á", 1000)
	require.NoError(t, ValidateContact(in))

	in = validInput()
	in.Message = strings.Repeat("á", 1001)
	err := ValidateContact(in)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "message", validationErr.Field)
}

func TestValidateContact_FirstFailureWins(t *testing.T) {
	in := validInput()
	in.Name = "ab"
	in.Email = "not-an-email"

	err := ValidateContact(in)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestValidateContact_FieldRules(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ContactInput)
		expectField string
	}{
		{
			name:        "name too short",
			mutate:      func(in *ContactInput) { in.Name = "ab" },
			expectField: "name",
		},
		{
			name:        "name too long",
			mutate:      func(in *ContactInput) { in.Name = strings.Repeat("a", 101) },
			expectField: "name",
		},
		{
			name:        "accented name of two characters",
			mutate:      func(in *ContactInput) { in.Name = "ñá" },
			expectField: "name",
		},
		{
			name:        "name only whitespace",
			mutate:      func(in *ContactInput) { in.Name = "   " },
			expectField: "name",
		},
		{
			name:        "email missing at sign",
			mutate:      func(in *ContactInput) { in.Email = "ana.example.com" },
			expectField: "email",
		},
		{
			name:        "email missing domain",
			mutate:      func(in *ContactInput) { in.Email = "ana@" },
			expectField: "email",
		},
		{
			name:        "phone too short",
			mutate:      func(in *ContactInput) { in.Phone = "123456" },
			expectField: "phone",
		},
		{
			name:        "phone too long",
			mutate:      func(in *ContactInput) { in.Phone = strings.Repeat("9", 21) },
			expectField: "phone",
		},
		{
			name:        "message too short",
			mutate:      func(in *ContactInput) { in.Message = "hey" },
			expectField: "message",
		},
		{
			name:        "message too long",
			mutate:      func(in *ContactInput) { in.Message = strings.Repeat("m", 1001) },
			expectField: "message",
		},
		{
			name:        "captcha missing",
			mutate:      func(in *ContactInput) { in.Captcha = "" },
			expectField: "captcha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := ValidateContact(in)
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectField, validationErr.Field)
		})
	}
}
