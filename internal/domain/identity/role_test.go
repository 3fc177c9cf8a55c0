package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles() {
		parsed, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRole("SUPERVISOR")
	assert.Error(t, err)

	_, err = ParseRole("admin")
	assert.Error(t, err, "role matching is case sensitive")
}

func TestAuthorize(t *testing.T) {
	t.Run("member of allowed set passes", func(t *testing.T) {
		assert.NoError(t, Authorize(RoleAuditorIPS, RoleAuditorIPS, RoleManagerIPS))
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		err := Authorize(RoleUserEPS, RoleAuditorIPS, RoleManagerIPS)
		assert.Error(t, err)
	})

	t.Run("admin passes every check", func(t *testing.T) {
		assert.NoError(t, Authorize(RoleAdmin, RoleAuditorEPS))
		assert.NoError(t, Authorize(RoleAdmin))
	})

	t.Run("empty allowed set forbids non-admin", func(t *testing.T) {
		assert.Error(t, Authorize(RoleBillerIPS))
	})
}
