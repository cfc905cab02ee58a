package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	"github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	CtxTokenID     = "jti"
	CtxTokenExpiry = "token_exp"
)

// roleCache keeps the current role of recently seen users.
// Key: userID (uint), Value: cachedRole
var roleCache sync.Map

const roleCacheTTL = 1 * time.Minute

type cachedRole struct {
	Role      model.Role
	ExpiresAt time.Time
}

// UserLookup is the part of the user store IdentityCheck needs.
type UserLookup interface {
	FindByID(id uint) (*model.User, error)
}

func roleKey(app *service.AppService, userID uint) string {
	return app.RedisKey("auth", "role", strconv.FormatUint(uint64(userID), 10))
}

// ClearIdentityCache forgets the cached role of a user. Call it after a role change or delete.
func ClearIdentityCache(app *service.AppService, userID uint) {
	roleCache.Delete(userID)

	if rdb := app.Redis(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = rdb.Del(ctx, roleKey(app, userID)).Err()
	}
}

// JWTAuth validates the bearer access token and stores the identity in the context.
func JWTAuth(app *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := utils.ParseAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}
		if app.IsTokenRevoked(c.Request.Context(), claims.RegisteredClaims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has been revoked"})
			return
		}

		c.Set(httpx.CtxUserID, claims.ID)
		c.Set(httpx.CtxUsername, claims.Username)
		c.Set(httpx.CtxRole, model.Role(claims.Role))
		c.Set(CtxTokenID, claims.RegisteredClaims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExpiry, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// IdentityCheck makes sure the token owner still exists and replaces the role from the token
// with the current one. Lookups go redis, then memory, then the database.
func IdentityCheck(app *service.AppService, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(httpx.CtxUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		uid, ok := userID.(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		role, found := lookupCachedRole(c.Request.Context(), app, uid)
		if !found {
			user, err := users.FindByID(uid)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
				return
			}
			role = user.Role
			storeCachedRole(c.Request.Context(), app, uid, role)
		}

		c.Set(httpx.CtxRole, role)
		c.Next()
	}
}

func lookupCachedRole(ctx context.Context, app *service.AppService, uid uint) (model.Role, bool) {
	if rdb := app.Redis(); rdb != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if v, err := rdb.Get(ctx, roleKey(app, uid)).Result(); err == nil {
			role := model.Role(v)
			if role.Valid() {
				roleCache.Store(uid, cachedRole{Role: role, ExpiresAt: time.Now().Add(roleCacheTTL)})
				return role, true
			}
		}
	}

	if val, ok := roleCache.Load(uid); ok {
		if cached, ok := val.(cachedRole); ok && time.Now().Before(cached.ExpiresAt) {
			return cached.Role, true
		}
		roleCache.Delete(uid)
	}
	return "", false
}

func storeCachedRole(ctx context.Context, app *service.AppService, uid uint, role model.Role) {
	roleCache.Store(uid, cachedRole{Role: role, ExpiresAt: time.Now().Add(roleCacheTTL)})

	if rdb := app.Redis(); rdb != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = rdb.Set(ctx, roleKey(app, uid), string(role), roleCacheTTL).Err()
	}
}

// RequireRoles lets the request through only for the listed roles.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, _ := c.Get(httpx.CtxRole)
		current, _ := value.(model.Role)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operation not permitted"})
	}
}
