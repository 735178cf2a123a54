package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"whisper-vault/internal/api/v1/routes"
	"whisper-vault/internal/api/v1/services"
	"whisper-vault/internal/app/testutil"
	"whisper-vault/internal/config"
)

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)

	dao := testutil.NewMockTranscriptionDAO()
	uploadCfg := config.Default().Upload
	uploadCfg.TempDir = t.TempDir()

	container := &routes.ServiceContainer{
		UploadService:   services.NewUploadService(testutil.NewMockObjectStore(), dao, testutil.NewMockTranscriber(), uploadCfg, zap.NewNop()),
		DownloadService: services.NewDownloadService(dao, zap.NewNop()),
		MaxFileSize:     uploadCfg.MaxFileSize,
	}
	return NewServer(config.Default().Server, container, zap.NewNop())
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestServer_Health(t *testing.T) {
	w := serve(newTestServer(t), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)
	serve(s, http.MethodGet, "/api/download-transcriptions?userId=u1")

	w := serve(s, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "whisper_vault_http_requests_total")
	assert.Contains(t, w.Body.String(), "whisper_vault_archives_total")
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/upload-and-transcribe"},
		{http.MethodPut, "/api/upload-and-transcribe"},
		{http.MethodPost, "/api/download-transcriptions"},
		{http.MethodDelete, "/api/download-transcriptions"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(s, tt.method, tt.target)
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, `{"success":false,"error":"Method not allowed"}`, w.Body.String())
		})
	}
}

func TestServer_NotFound(t *testing.T) {
	w := serve(newTestServer(t), http.MethodGet, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, w.Body.String())
}

func TestServer_Swagger(t *testing.T) {
	w := serve(newTestServer(t), http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/upload-and-transcribe")
}
