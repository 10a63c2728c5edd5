package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"joyit/internal/domain"
	"joyit/internal/middleware"
	"joyit/internal/pkg/jwt"
	"joyit/internal/repository"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Company{}, &domain.User{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db, repository.NewUserRepository(db), jwt.New("test-secret", time.Hour)), db
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		CompanyName: "Acme GmbH",
		Industry:    "Software",
		Email:       "HR@Acme.example",
		Password:    "s3cret-pass",
		Name:        "Acme HR",
	}
}

func TestRegisterCreatesCompanyAndAdmin(t *testing.T) {
	svc, db := setupTestService(t)

	res, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
	if res.User.Role != domain.RoleMember {
		t.Fatalf("expected member role for self-registered user, got %s", res.User.Role)
	}
	if res.User.Email != "hr@acme.example" {
		t.Fatalf("expected normalized email, got %s", res.User.Email)
	}
	if res.User.CompanyID == nil || *res.User.CompanyID != res.Company.ID {
		t.Fatalf("expected user linked to company %d", res.Company.ID)
	}

	var companies, users int64
	db.Model(&domain.Company{}).Count(&companies)
	db.Model(&domain.User{}).Count(&users)
	if companies != 1 || users != 1 {
		t.Fatalf("expected 1 company and 1 user, got %d and %d", companies, users)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := svc.Register(ctx, registerRequest())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The failed registration must not leave an orphaned company behind.
	var companies int64
	db.Model(&domain.Company{}).Count(&companies)
	if companies != 1 {
		t.Fatalf("expected 1 company after rollback, got %d", companies)
	}
}

func TestLoginAndMe(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	res, err := svc.Login(ctx, LoginRequest{Email: "hr@acme.example", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
	if res.Company == nil || res.Company.Name != "Acme GmbH" {
		t.Fatalf("expected company preloaded on login")
	}

	me, err := svc.Me(ctx, res.User.ID)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if me.Email != "hr@acme.example" {
		t.Fatalf("unexpected profile email %s", me.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(ctx, LoginRequest{Email: "hr@acme.example", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisteredUserCannotReachAdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := setupTestService(t)

	res, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tokens := jwt.New("test-secret", time.Hour)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(middleware.Auth(tokens), middleware.RequireRole(string(domain.RoleAdmin)))
	admin.POST("/credit/grant", func(c *gin.Context) {
		c.String(http.StatusOK, "granted")
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/credit/grant", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a self-registered user on an admin route, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@acme.example", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
