package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tomatoplanet/leads-go/config"
	"github.com/tomatoplanet/leads-go/db"
	"github.com/tomatoplanet/leads-go/internal/testutils"
	"github.com/tomatoplanet/leads-go/middleware"
	"github.com/tomatoplanet/leads-go/models"
	"github.com/tomatoplanet/leads-go/routes"

	_ "github.com/lib/pq"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	seedAdminForTests("admin", "hunter2")

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, nil)

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func seedAdminForTests(username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.DB.Create(&models.AdminUser{Username: username, PasswordHash: string(hash)}).Error; err != nil {
		log.Fatal(err)
	}
}

func loginForTests(t *testing.T) string {
	w := doRequest(t, "POST", "/api/admin/login", "",
		map[string]string{"username": "admin", "password": "hunter2"}, http.StatusOK)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}
