package ez

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/domain"
)

func newRig() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r, r.Group("/v1")
}

func TestRegisterJSONAction(t *testing.T) {
	r, g := newRig()
	type in struct {
		Name string `json:"name" binding:"required"`
	}
	type out struct {
		Greeting string `json:"greeting"`
	}
	Register(g, Action[in, out]{
		Method: "POST", Path: "/hello", Binder: BindJSON,
		Handler: func(c *gin.Context, in *in) (out, error) {
			return out{Greeting: "hi " + in.Name}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/hello", strings.NewReader(`{"name":"ada"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "hi ada") {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	// 缺少必填字段走 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/v1/hello", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing field: status = %d, want 400", w.Code)
	}
}

func TestRegisterMapsDomainErrors(t *testing.T) {
	r, g := newRig()
	cases := []struct {
		path string
		err  error
		want int
	}{
		{"/invalid", domain.Invalid("bad"), http.StatusBadRequest},
		{"/unauth", domain.Unauthenticated("who"), http.StatusUnauthorized},
		{"/forbidden", domain.Forbidden("no"), http.StatusForbidden},
		{"/missing", domain.NotFound("gone"), http.StatusNotFound},
		{"/conflict", domain.Conflict("dup"), http.StatusConflict},
		{"/boom", domain.Internal("boom", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := tc.err
		Register(g, Action[struct{}, struct{}]{
			Method: "GET", Path: tc.path, Binder: BindNone,
			Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
				return struct{}{}, err
			},
		})
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/v1"+tc.path, nil))
		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.path, w.Code, tc.want)
		}
	}
}

func TestRegisterRunsMiddlewareFirst(t *testing.T) {
	r, g := newRig()
	block := func(c *gin.Context) { c.AbortWithStatus(http.StatusTeapot) }
	called := false
	Register(g, Action[struct{}, struct{}]{
		Method: "GET", Path: "/guarded", Binder: BindNone,
		Middleware: []gin.HandlerFunc{block},
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			called = true
			return struct{}{}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/guarded", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want middleware verdict", w.Code)
	}
	if called {
		t.Fatal("handler must not run after the chain aborts")
	}
}
