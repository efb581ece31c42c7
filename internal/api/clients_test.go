package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

// recordedRequest captures what the backend saw for assertions.
type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
	header http.Header
}

func newBackend(t *testing.T, statusCode int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.header = r.Header.Clone()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		rec.body = body
		w.WriteHeader(statusCode)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestAuth_Login_FormEncoded(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"access_token":"T1","token_type":"bearer"}`)
	auth := NewAuth(newTestPipeline(t, srv.URL))

	tok, err := auth.Login(context.Background(), "a@b.c", "secret pw")
	require.NoError(t, err)
	assert.Equal(t, "T1", tok)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/auth/login", rec.path)
	assert.Equal(t, "application/x-www-form-urlencoded", rec.header.Get("Content-Type"))
	assert.Equal(t, "password=secret+pw&username=a%40b.c", string(rec.body))
}

func TestAuth_Login_BadCredentials(t *testing.T) {
	srv, _ := newBackend(t, http.StatusUnauthorized, `{"detail":"Incorrect email or password"}`)
	auth := NewAuth(newTestPipeline(t, srv.URL))

	_, err := auth.Login(context.Background(), "a@b.c", "wrong")

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindUnauthorized, apiErr.Kind)
}

func TestAuth_Register(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":2,"email":"new@example.com","role":"user"}`)
	auth := NewAuth(newTestPipeline(t, srv.URL))

	profile, err := auth.Register(context.Background(), "new@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.ID)
	assert.Equal(t, model.RoleUser, profile.Role)

	assert.Equal(t, "/auth/register", rec.path)
	assert.Equal(t, "application/json", rec.header.Get("Content-Type"))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.body, &payload))
	assert.Equal(t, "new@example.com", payload["email"])
	assert.Equal(t, "pw", payload["password"])
}

func TestFeedback_MineQueryParams(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"items":[],"total":0,"page":2,"page_size":50}`)
	feedback := NewFeedback(newTestPipeline(t, srv.URL))

	list, err := feedback.Mine(context.Background(), ListFilter{
		Status:   model.StatusResolved,
		Page:     2,
		PageSize: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page)

	assert.Equal(t, "/feedback/mine", rec.path)
	assert.Equal(t, "page=2&page_size=50&status=resolved", rec.query)
}

func TestFeedback_Create(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":7,"title":"Dark mode","status":"new"}`)
	feedback := NewFeedback(newTestPipeline(t, srv.URL))

	created, err := feedback.Create(context.Background(), FeedbackCreate{
		Title:   "Dark mode",
		Content: "Please add a dark theme",
		TagIDs:  []int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, model.StatusNew, created.Status)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/feedback/", rec.path)
	assert.JSONEq(t, `{"title":"Dark mode","content":"Please add a dark theme","tag_ids":[1,2]}`, string(rec.body))
}

func TestFeedback_GetDetail(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":7,"title":"Dark mode","admin_responses":[{"id":1,"feedback_id":7,"admin_id":3,"message":"on it"}],"status_events":[]}`)
	feedback := NewFeedback(newTestPipeline(t, srv.URL))

	detail, err := feedback.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/feedback/7", rec.path)
	require.Len(t, detail.AdminResponses, 1)
	assert.Equal(t, "on it", detail.AdminResponses[0].Message)
}

func TestAdmin_UpdateStatus(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":7,"status":"triaged"}`)
	admin := NewAdmin(newTestPipeline(t, srv.URL))

	updated, err := admin.UpdateStatus(context.Background(), 7, model.StatusTriaged)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTriaged, updated.Status)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/admin/feedback/7/status", rec.path)
	assert.JSONEq(t, `{"status":"triaged"}`, string(rec.body))
}

func TestAdmin_Respond(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":9,"feedback_id":7,"admin_id":1,"message":"fixed in 1.2"}`)
	admin := NewAdmin(newTestPipeline(t, srv.URL))

	resp, err := admin.Respond(context.Background(), 7, "fixed in 1.2")
	require.NoError(t, err)
	assert.Equal(t, "fixed in 1.2", resp.Message)
	assert.Equal(t, "/admin/feedback/7/respond", rec.path)
}

func TestCategories_CRUDPaths(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":3,"name":"UX"}`)
	categories := NewCategories(newTestPipeline(t, srv.URL))

	created, err := categories.Create(context.Background(), "UX")
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, "/categories/", rec.path)

	_, err = categories.Update(context.Background(), 3, "User Experience")
	require.NoError(t, err)
	assert.Equal(t, "/categories/3", rec.path)
	assert.Equal(t, http.MethodPut, rec.method)

	require.NoError(t, categories.Delete(context.Background(), 3))
	assert.Equal(t, http.MethodDelete, rec.method)
}

func TestTags_List(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `[{"id":1,"name":"bug"},{"id":2,"name":"feature"}]`)
	tags := NewTags(newTestPipeline(t, srv.URL))

	list, err := tags.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bug", list[0].Name)
	assert.Equal(t, "/tags/", rec.path)
}

func TestAnalytics_QueryParams(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"data":[{"date":"2026-08-01","count":4}]}`)
	analytics := NewAnalytics(newTestPipeline(t, srv.URL))

	points, err := analytics.Timeseries(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 4, points[0].Count)
	assert.Equal(t, "/analytics/timeseries", rec.path)
	assert.Equal(t, "days=30", rec.query)

	_, err = analytics.TopTags(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "/analytics/top-tags", rec.path)
	assert.Equal(t, "limit=10", rec.query)
}

func TestAnalytics_Topics(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"clusters":[{"cluster_id":0,"label":"performance","keywords":["slow","lag"],"count":12}]}`)
	analytics := NewAnalytics(newTestPipeline(t, srv.URL))

	clusters, err := analytics.Topics(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, "performance", clusters[0].Label)
	assert.Equal(t, "k=5", rec.query)
}
