package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"
	"ecotrack/pkg/token"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, generic.ErrNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, generic.ErrNotFound
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]*model.User, error) { return nil, nil }

func (s *stubUserRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.User, error) {
	return nil, generic.ErrNotFound
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newAuthRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth(testSecret, repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID.Hex()})
	})
	r.GET("/admin", RequireAuth(testSecret, repo), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthLoadsUser(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Role: model.RoleUser}
	r := newAuthRouter(&stubUserRepo{user: user})

	signed, err := token.Sign(testSecret, user.ID, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	w := get(r, "/me", "Bearer "+signed)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthRejects(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Role: model.RoleUser}
	repo := &stubUserRepo{user: user}
	r := newAuthRouter(repo)

	valid, _ := token.Sign(testSecret, user.ID, time.Hour)
	expired, _ := token.Sign(testSecret, user.ID, -time.Minute)
	wrongSecret, _ := token.Sign("other", user.ID, time.Hour)
	vanished, _ := token.Sign(testSecret, primitive.NewObjectID(), time.Hour)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", valid},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + wrongSecret},
		{"vanished user", "Bearer " + vanished},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := get(r, "/me", tc.header); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Role: model.RoleUser}
	repo := &stubUserRepo{user: user}
	r := newAuthRouter(repo)
	signed, _ := token.Sign(testSecret, user.ID, time.Hour)

	if w := get(r, "/admin", "Bearer "+signed); w.Code != http.StatusForbidden {
		t.Errorf("status for non-admin = %d, want 403", w.Code)
	}

	user.Role = model.RoleAdmin
	if w := get(r, "/admin", "Bearer "+signed); w.Code != http.StatusOK {
		t.Errorf("status for admin = %d, want 200", w.Code)
	}
}
