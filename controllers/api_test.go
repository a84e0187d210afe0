package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contoso/socialfeed/config"
	"github.com/contoso/socialfeed/models"
	"github.com/contoso/socialfeed/routes"
	"github.com/contoso/socialfeed/utils"
)

func TestMain(m *testing.M) {
	if err := utils.InitLogger(config.Get()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := config.OpenDatabase(
		filepath.Join(t.TempDir(), "api.db"),
		&models.Post{}, &models.Comment{}, &models.Like{},
	)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return routes.SetupRouter(db)
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestUnknownRoute(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.CodeNotFound, decode(t, w)["error"])
}

func TestPostLifecycleScenario(t *testing.T) {
	r := setupAPI(t)

	// create a post
	w := doJSON(r, http.MethodPost, "/api/posts", `{"username":"alice","content":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	post := decode(t, w)
	postID, _ := post["id"].(string)
	require.NotEmpty(t, postID)
	assert.Equal(t, "alice", post["username"])
	assert.Equal(t, "hi", post["content"])
	assert.EqualValues(t, 0, post["likesCount"])
	assert.EqualValues(t, 0, post["commentsCount"])
	createdAt, _ := post["createdAt"].(string)
	assert.True(t, strings.HasSuffix(createdAt, "Z"), "timestamps are UTC with Z suffix, got %q", createdAt)
	assert.Equal(t, post["createdAt"], post["updatedAt"])

	// comment on it
	w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/comments", `{"username":"bob","content":"nice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	comment := decode(t, w)
	commentID, _ := comment["id"].(string)
	require.NotEmpty(t, commentID)
	assert.Equal(t, postID, comment["postId"])

	w = doJSON(r, http.MethodGet, "/api/posts/"+postID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["commentsCount"])

	// like twice: both succeed, one row stored
	w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/likes", `{"username":"carol"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	like := decode(t, w)
	assert.Equal(t, postID, like["postId"])
	assert.Equal(t, "carol", like["username"])
	w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/likes", `{"username":"carol"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/posts/"+postID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["likesCount"])

	// only the author may update
	w = doJSON(r, http.MethodPatch, "/api/posts/"+postID, `{"username":"bob","content":"hijack"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeOwnershipMismatch, decode(t, w)["error"])

	// delete cascades
	w = doJSON(r, http.MethodDelete, "/api/posts/"+postID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/posts/"+postID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodGet, "/api/posts/"+postID+"/comments/"+commentID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostValidation(t *testing.T) {
	r := setupAPI(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"content":"hi"}`},
		{"empty username", `{"username":"","content":"hi"}`},
		{"username too long", fmt.Sprintf(`{"username":%q,"content":"hi"}`, strings.Repeat("a", 51))},
		{"missing content", `{"username":"alice"}`},
		{"content too long", fmt.Sprintf(`{"username":"alice","content":%q}`, strings.Repeat("x", 2001))},
		{"not json", `not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/posts", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, utils.CodeValidationError, decode(t, w)["error"])
		})
	}
}

func TestCommentValidation(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/api/posts", `{"username":"alice","content":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	postID, _ := decode(t, w)["id"].(string)

	// comment content cap is tighter than the post's
	body := fmt.Sprintf(`{"username":"bob","content":%q}`, strings.Repeat("x", 1001))
	w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/comments", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// 404 for a missing parent post beats nothing: validation is checked first
	w = doJSON(r, http.MethodPost, "/api/posts/missing/comments", `{"username":"bob","content":"hi"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentUpdateAndDelete(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/api/posts", `{"username":"alice","content":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	postID, _ := decode(t, w)["id"].(string)

	w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/comments", `{"username":"bob","content":"first"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	commentID, _ := decode(t, w)["id"].(string)

	w = doJSON(r, http.MethodPatch, "/api/posts/"+postID+"/comments/"+commentID, `{"username":"mallory","content":"mine now"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.CodeOwnershipMismatch, decode(t, w)["error"])

	w = doJSON(r, http.MethodPatch, "/api/posts/"+postID+"/comments/"+commentID, `{"username":"bob","content":"edited"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "edited", decode(t, w)["content"])

	w = doJSON(r, http.MethodDelete, "/api/posts/"+postID+"/comments/"+commentID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/posts/"+postID+"/comments/"+commentID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentListOrder(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/api/posts", `{"username":"alice","content":"thread"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	postID, _ := decode(t, w)["id"].(string)

	var wantOrder []string
	for _, text := range []string{"one", "two", "three"} {
		w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/comments", fmt.Sprintf(`{"username":"bob","content":%q}`, text))
		require.Equal(t, http.StatusCreated, w.Code)
		wantOrder = append(wantOrder, decode(t, w)["id"].(string))
	}

	w = doJSON(r, http.MethodGet, "/api/posts/"+postID+"/comments", "")
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, wantOrder[i], c["id"])
	}
}

func TestUnlikeVariants(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/api/posts", `{"username":"alice","content":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	postID, _ := decode(t, w)["id"].(string)

	for _, u := range []string{"carol", "dave"} {
		w = doJSON(r, http.MethodPost, "/api/posts/"+postID+"/likes", fmt.Sprintf(`{"username":%q}`, u))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// targeted unlike removes only carol's like
	w = doJSON(r, http.MethodDelete, "/api/posts/"+postID+"/likes", `{"username":"carol"}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodGet, "/api/posts/"+postID, "")
	assert.EqualValues(t, 1, decode(t, w)["likesCount"])

	// no body clears every remaining like
	w = doJSON(r, http.MethodDelete, "/api/posts/"+postID+"/likes", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodGet, "/api/posts/"+postID, "")
	assert.EqualValues(t, 0, decode(t, w)["likesCount"])

	// unliking a missing post is the one unlike failure
	w = doJSON(r, http.MethodDelete, "/api/posts/missing/likes", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPostsNewestFirst(t *testing.T) {
	r := setupAPI(t)

	var created []string
	for _, text := range []string{"first", "second", "third"} {
		w := doJSON(r, http.MethodPost, "/api/posts", fmt.Sprintf(`{"username":"alice","content":%q}`, text))
		require.Equal(t, http.StatusCreated, w.Code)
		created = append(created, decode(t, w)["id"].(string))
	}

	w := doJSON(r, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 3)
	for i, p := range posts {
		assert.Equal(t, created[len(created)-1-i], p["id"])
	}
}
