package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard
	log.SetOutput(io.Discard)
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeParser map[string]*session.Session

func (f fakeParser) Parse(_ context.Context, raw string) (*session.Session, error) {
	if s, ok := f[raw]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: bad token", apperr.ErrUnauthorized)
}

func newRouter() *gin.Engine {
	p := fakeParser{
		"store": {ID: "s1", UserID: "5", Role: pedido.RoleStore, BackendToken: "bt-store"},
		"admin": {ID: "s2", UserID: "1", Role: pedido.RoleAdmin},
	}
	r := gin.New()
	r.Use(RequestID(), Logger())
	api := r.Group("/api", Auth(p))
	api.GET("/me", func(c *gin.Context) {
		s, _ := session.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"role": s.Role, "bt": s.BackendToken})
	})
	api.GET("/admin", RequireRole(pedido.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/me", "nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/me", "store")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"role":"loja","bt":"bt-store"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequireRole(t *testing.T) {
	r := newRouter()
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/admin", "store").Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/api/admin", "admin").Code)
}

func TestRequestIDIsKept(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("X-Request-ID", "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{apperr.Invalid("valor", "O valor não pode ser negativo"), http.StatusBadRequest},
		{apperr.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("x: %w", apperr.ErrForbidden), http.StatusForbidden},
		{apperr.ErrNotFound, http.StatusNotFound},
		{apperr.ErrInvalidTransition, http.StatusConflict},
		{apperr.ErrNetwork, http.StatusBadGateway},
		{apperr.ErrServer, http.StatusBadGateway},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		WriteError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	WriteError(c, apperr.Invalid("valor", "O valor não pode ser negativo"))
	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, HTTPError{Error: "O valor não pode ser negativo", Field: "valor"}, body)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://portal.vidros.pt"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://portal.vidros.pt")
	req.Header.Set("Access-Control-Request-Method", "GET")
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://portal.vidros.pt", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://portal.vidros.pt")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portal.vidros.pt", w.Header().Get("Access-Control-Allow-Origin"))
}
