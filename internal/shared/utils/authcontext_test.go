package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/subkeeper/internal/shared/authorization"
	"github.com/orris-inc/subkeeper/internal/shared/constants"
)

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set(constants.ContextKeyUserID, "7")
	_, ok = GetUserID(c)
	assert.False(t, ok, "non-uint values are rejected")

	c.Set(constants.ContextKeyUserID, uint(7))
	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
}

func TestGetUserRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, authorization.RoleUser, GetUserRole(c))

	c.Set(constants.ContextKeyUserRole, "admin")
	assert.Equal(t, authorization.RoleAdmin, GetUserRole(c))
}
