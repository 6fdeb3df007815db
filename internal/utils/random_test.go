package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)

	for _, r := range password {
		assert.Contains(t, string(letters), string(r))
	}

	assert.Empty(t, GenerateRandomPassword(0))
}

func TestGenerateUsernameFromFullName(t *testing.T) {
	for i := 0; i < 20; i++ {
		username := GenerateUsernameFromFullName("Dana Whitfield")
		assert.Equal(t, strings.ToLower(username), username)
		assert.True(t, strings.HasPrefix(username, "d"))
		assert.GreaterOrEqual(t, len(username), 3) // one rune per name part plus a digit
	}
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("hunter2hunter2", "oakmonthotel.test")
	require.NoError(t, err)

	assert.NotEmpty(t, user.FullName)
	assert.True(t, strings.HasSuffix(user.Email, "@oakmonthotel.test"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))
}

func TestGenerateRandomRoomNumber(t *testing.T) {
	for i := 0; i < 50; i++ {
		room := GenerateRandomRoomNumber()
		require.Len(t, room, 3)
		assert.GreaterOrEqual(t, room[0], byte('1'))
		assert.LessOrEqual(t, room[0], byte('4'))
	}
}

func TestGenerateRandomInitials(t *testing.T) {
	initials := GenerateRandomInitials()
	assert.Len(t, initials, 2)
	assert.Equal(t, strings.ToUpper(initials), initials)
}
