package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/portfolio-api/internal/contact"
	"github.com/artfolio/portfolio-api/internal/contact/repository"
	"github.com/artfolio/portfolio-api/internal/contact/service"
	"github.com/artfolio/portfolio-api/internal/database"
)

func newEngine(repo repository.DocumentStore, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterContactRoutes(g, service.New(repo), mw...)
	return g
}

func post(g *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestContact_OK(t *testing.T) {
	repo := repository.NewMemoryRepo()
	g := newEngine(repo)

	w := post(g, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
	require.NotEmpty(t, resp["id"])

	rec, ok := repo.Get(contact.CollectionName, resp["id"])
	require.True(t, ok)
	msg := rec.(*contact.ContactMessage)
	require.Equal(t, "Ada", msg.Name)
	require.Nil(t, msg.Subject)
}

func TestContact_OptionalFields(t *testing.T) {
	repo := repository.NewMemoryRepo()
	g := newEngine(repo)

	w := post(g, `{"name":"Ada","email":"ada@example.com","message":"Hello","subject":"Commission","phone":"+44 20 0000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, repo.Count(contact.CollectionName))
}

func TestContact_MissingFieldNeverReachesStore(t *testing.T) {
	repo := repository.NewMemoryRepo()
	g := newEngine(repo)

	w := post(g, `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, 0, repo.Count(contact.CollectionName))

	var resp struct {
		Detail []struct {
			Loc  []string `json:"loc"`
			Msg  string   `json:"msg"`
			Type string   `json:"type"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Detail, 1)
	require.Equal(t, []string{"body", "message"}, resp.Detail[0].Loc)
	require.Equal(t, "value_error.missing", resp.Detail[0].Type)
}

func TestContact_MalformedBodies(t *testing.T) {
	repo := repository.NewMemoryRepo()
	g := newEngine(repo)

	bodies := []string{
		``,
		`not json`,
		`{"name":42,"email":"ada@example.com","message":"Hello"}`,
		`{"name":"Ada","email":"not-an-email","message":"Hello"}`,
		`{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("x", 5001) + `"}`,
		`{"name":"Ada","email":"ada@example.com","message":"Hi"} trailing`,
		`{"name":"Ada","email":"ada@example.com","message":"Hi"}{"name":"Bob"}`,
	}
	for _, b := range bodies {
		w := post(g, b)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "body %q", b)
		require.Contains(t, w.Body.String(), `"detail"`)
	}
	require.Equal(t, 0, repo.Count(contact.CollectionName))
}

func TestContact_TrailingDataDetail(t *testing.T) {
	repo := repository.NewMemoryRepo()
	g := newEngine(repo)

	w := post(g, `{"name":"Ada","email":"ada@example.com","message":"Hi"} trailing`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "value_error.jsondecode")

	// surrounding whitespace is still a single document
	w = post(g, "\n  {\"name\":\"Ada\",\"email\":\"ada@example.com\",\"message\":\"Hi\"}\n\n")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, repo.Count(contact.CollectionName))
}

func TestContact_StoreErrorIs500(t *testing.T) {
	repo := repository.NewMemoryRepo()
	repo.Err = errors.New("write concern timeout")
	g := newEngine(repo)

	w := post(g, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "write concern timeout", resp["detail"])

	// the engine keeps serving after a failure
	repo.Err = nil
	w = post(g, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestContact_NoDatabase(t *testing.T) {
	g := newEngine(repository.NewUnavailableStore(database.ErrNotConfigured))

	w := post(g, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "database not configured")
}

func TestContact_MiddlewareRunsFirst(t *testing.T) {
	repo := repository.NewMemoryRepo()
	block := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
	}
	g := newEngine(repo, block)

	w := post(g, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, 0, repo.Count(contact.CollectionName))
}
