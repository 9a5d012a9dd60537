package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := utils.GenerateToken("u-1", entity.RoleManager, "India", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, entity.RoleManager, claims.Role)
	assert.Equal(t, "India", claims.Country)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tok, err := utils.GenerateToken("u-1", entity.RoleAdmin, "", "secret", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(tok, "other")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tok, err := utils.GenerateToken("u-1", entity.RoleMember, "India", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(tok, "secret")
	assert.Error(t, err)
}
