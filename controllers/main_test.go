package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fuadnh/catatan-api/config"
	"github.com/fuadnh/catatan-api/routes"
	"github.com/fuadnh/catatan-api/utils"
)

var testDBCounter atomic.Int64

type noteItem struct {
	ID        int64     `json:"id"`
	Person    string    `json:"person"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	token  string
}

// newTestServer membangun router lengkap di atas database SQLite in-memory
// yang terisolasi per test.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	cfg := &config.Config{
		AccessCode: "kode-rahasia",
		JWTSecret:  []byte("test-signing-key"),
		Port:       "8080",
	}

	token, err := utils.GenerateToken(cfg.JWTSecret, "notes")
	require.NoError(t, err)

	r := routes.SetupRouter(gin.New(), db, cfg)
	return &testServer{router: r, db: db, cfg: cfg, token: token}
}

func (s *testServer) request(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) listNotes(t *testing.T) []noteItem {
	t.Helper()
	w := s.request(t, http.MethodGet, "/api/notes", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []noteItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Items
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}
