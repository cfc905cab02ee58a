package httpx

import (
	"net/http"
	"strconv"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/platform/policy"

	"github.com/gin-gonic/gin"
)

// Context keys written by the auth middleware.
const (
	CtxUserID   = "id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// CurrentActor reads the authenticated identity. ok is false when the auth middleware did not
// run or the values are malformed.
func CurrentActor(c *gin.Context) (policy.Actor, bool) {
	rawID, exists := c.Get(CtxUserID)
	if !exists {
		return policy.Actor{}, false
	}
	id, ok := rawID.(uint)
	if !ok || id == 0 {
		return policy.Actor{}, false
	}
	role, _ := c.Get(CtxRole)
	r, _ := role.(model.Role)
	if !r.Valid() {
		r = model.RoleUser
	}
	return policy.Actor{ID: id, Role: r}, true
}

// MustActor is CurrentActor that answers 401 itself.
func MustActor(c *gin.Context) (policy.Actor, bool) {
	actor, ok := CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return policy.Actor{}, false
	}
	return actor, true
}

// ParseIDParam parses a positive numeric path parameter and answers 400 otherwise.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
