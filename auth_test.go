package soulspace_test

import (
	"testing"

	"github.com/fwojciec/soulspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("demo pair yields local part", func(t *testing.T) {
		t.Parallel()
		username, err := soulspace.DefaultCredentials.Authenticate("test@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "test", username)
	})

	t.Run("email is compared exactly", func(t *testing.T) {
		t.Parallel()
		username, err := soulspace.DefaultCredentials.Authenticate("  test@example.com ", "password123")
		assert.ErrorIs(t, err, soulspace.ErrInvalidCredentials)
		assert.Empty(t, username)
	})

	t.Run("empty local part never signs in", func(t *testing.T) {
		t.Parallel()
		c := soulspace.Credentials{Email: "@empresa.com", Password: "s3cret"}
		username, err := c.Authenticate("@empresa.com", "s3cret")
		assert.ErrorIs(t, err, soulspace.ErrInvalidCredentials)
		assert.Empty(t, username)
	})

	t.Run("configured pair", func(t *testing.T) {
		t.Parallel()
		c := soulspace.Credentials{Email: "ana@soulspace.app", Password: "s3cret"}
		username, err := c.Authenticate("ana@soulspace.app", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "ana", username)
	})

	t.Run("rejects mismatches", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			name, email, password string
		}{
			{"wrong password", "test@example.com", "nope"},
			{"wrong email", "other@example.com", "password123"},
			{"empty", "", ""},
			{"password whitespace matters", "test@example.com", " password123"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				username, err := soulspace.DefaultCredentials.Authenticate(tc.email, tc.password)
				assert.ErrorIs(t, err, soulspace.ErrInvalidCredentials)
				assert.Empty(t, username)
			})
		}
	})
}
