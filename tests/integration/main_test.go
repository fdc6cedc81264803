package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vendorlynx/vendorlynx-go/internal/api/middleware"
	"github.com/vendorlynx/vendorlynx-go/internal/config"
	"github.com/vendorlynx/vendorlynx-go/internal/config/db"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/account"
	domainapp "github.com/vendorlynx/vendorlynx-go/internal/domain/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/project"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/vendor"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/workorder"
	"github.com/vendorlynx/vendorlynx-go/internal/testutils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
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

	if err := gormDB.AutoMigrate(
		&account.Account{},
		&vendor.Store{},
		&project.Project{},
		&domainapp.ProjectApplication{},
		&workorder.WorkOrder{},
		&workorder.Log{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	router = testutils.SetupRouter(gormDB)

	registerForTests("pm1", "propertyManager")
	registerForTests("pm2", "propertyManager")
	registerForTests("vendor1", "vendor")
	registerForTests("vendor2", "vendor")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest makes an HTTP request against the in-process router.
// Supports:
// - body as url.Values -> form-urlencoded
// - body as any other struct/map -> JSON
// - nil body -> GET/DELETE with query parameters included in path
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request

	switch v := body.(type) {
	case url.Values:
		req = httptest.NewRequest(method, path, strings.NewReader(v.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	case nil:
		req = httptest.NewRequest(method, path, nil)
	default:
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

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerForTests(username, role string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(
		`{"username":%q,"password":"secret123","email":"%s@example.com","companyName":"%s inc","role":%q}`,
		username, username, username, role)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		log.Fatalf("failed to register %s: %d %s", username, w.Code, w.Body.String())
	}
}

func loginForTests(t *testing.T, username string) (string, uint) {
	t.Helper()
	w := doRequest(t, "POST", "/login", "",
		map[string]string{"username": username, "password": "secret123"},
		http.StatusOK)

	var resp struct {
		Token     string `json:"token"`
		AccountID uint   `json:"account_id"`
	}
	parseJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.AccountID
}

func createProjectForTests(t *testing.T, token, name string) uint {
	t.Helper()
	w := doRequest(t, "POST", "/projects", token, map[string]string{
		"name": name,
		"city": "Waterloo",
	}, http.StatusCreated)

	var p struct {
		ID uint `json:"id"`
	}
	parseJSON(t, w, &p)
	require.NotZero(t, p.ID)
	return p.ID
}

func createWorkOrderForTests(t *testing.T, token string, projectID, vendorID uint, name string) uint {
	t.Helper()
	w := doRequest(t, "POST", fmt.Sprintf("/work-orders/property-manager/%d", projectID), token,
		map[string]interface{}{
			"name":          name,
			"startDateTime": "2026-09-01T09:00:00Z",
			"endDateTime":   "2026-09-01T17:00:00Z",
			"vendor":        vendorID,
		}, http.StatusCreated)

	var view struct {
		ID uint `json:"id"`
	}
	parseJSON(t, w, &view)
	require.NotZero(t, view.ID)
	return view.ID
}
