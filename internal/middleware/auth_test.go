package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dishalex/PhotoShare/internal/model"
	"github.com/Dishalex/PhotoShare/internal/modules/common/httpx"
	"github.com/Dishalex/PhotoShare/internal/testutils"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type dbUsers struct {
	db    *gorm.DB
	calls int
}

func (u *dbUsers) FindByID(id uint) (*model.User, error) {
	u.calls++
	var user model.User
	if err := u.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func TestJWTAuth_MissingHeaderUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.GET("/x", JWTAuth(testService), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_ValidTokenSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	withJWTSecret(t)

	r := gin.New()
	r.GET("/x", JWTAuth(testService), func(c *gin.Context) {
		actor, ok := httpx.CurrentActor(c)
		username, _ := c.Get(httpx.CtxUsername)
		if !ok || actor.ID != 1 || actor.Role != model.RoleModerator || username != "alice" {
			c.JSON(http.StatusInternalServerError, gin.H{"bad": true})
			return
		}
		c.Status(http.StatusOK)
	})

	token, err := utils.GenerateAccessToken(1, "alice", string(model.RoleModerator), time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestJWTAuth_RejectsRefreshAndRevokedTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	withJWTSecret(t)

	r := gin.New()
	r.GET("/x", JWTAuth(testService), func(c *gin.Context) { c.Status(http.StatusOK) })

	refresh, _ := utils.GenerateRefreshToken(1, "alice", "user", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token must not authenticate, got %d", w.Code)
	}

	access, _ := utils.GenerateAccessToken(1, "alice", "user", time.Hour)
	claims, _ := utils.ParseAccessToken(access)
	testService.RevokeToken(context.Background(), claims.RegisteredClaims.ID, claims.ExpiresAt.Time)

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token must not authenticate, got %d", w.Code)
	}
}

func TestIdentityCheck_UsesCurrentRoleAndCaches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	resetRoleCache()

	u := testutils.CreateUser(t, gdb, "alice", model.RoleAdmin)
	users := &dbUsers{db: gdb}

	r := gin.New()
	r.GET("/x",
		func(c *gin.Context) {
			c.Set(httpx.CtxUserID, u.ID)
			c.Set(httpx.CtxRole, model.RoleUser)
			c.Next()
		},
		IdentityCheck(testService, users),
		func(c *gin.Context) {
			actor, _ := httpx.CurrentActor(c)
			c.String(http.StatusOK, string(actor.Role))
		},
	)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK || w.Body.String() != "admin" {
			t.Fatalf("expected admin from store, got %d %q", w.Code, w.Body.String())
		}
	}
	if users.calls != 1 {
		t.Fatalf("expected one store lookup, got %d", users.calls)
	}

	ClearIdentityCache(testService, u.ID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if users.calls != 2 {
		t.Fatalf("expected lookup after cache clear, got %d", users.calls)
	}
}

func TestIdentityCheck_DeletedUserUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	resetRoleCache()

	r := gin.New()
	r.GET("/x",
		func(c *gin.Context) { c.Set(httpx.CtxUserID, uint(999)); c.Next() },
		IdentityCheck(testService, &dbUsers{db: gdb}),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestIdentityCheck_MissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.GET("/x", IdentityCheck(testService, failingUsers{}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

type failingUsers struct{}

func (failingUsers) FindByID(uint) (*model.User, error) { return nil, errors.New("boom") }

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		role model.Role
		want int
	}{
		{model.RoleAdmin, http.StatusOK},
		{model.RoleModerator, http.StatusOK},
		{model.RoleUser, http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range cases {
		r := gin.New()
		r.GET("/x",
			func(c *gin.Context) {
				if tc.role != "" {
					c.Set(httpx.CtxRole, tc.role)
				}
				c.Next()
			},
			RequireRoles(model.RoleModerator, model.RoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != tc.want {
			t.Fatalf("role %q: expected %d, got %d", tc.role, tc.want, w.Code)
		}
	}
}
