package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/submission-admin/internal/config"
	"github.com/fadilmartias/submission-admin/internal/domain/fiber/handler"
	"github.com/fadilmartias/submission-admin/internal/filter"
	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/repository/repositorytest"
	"github.com/fadilmartias/submission-admin/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type testServer struct {
	app         *fiber.App
	submissions *repositorytest.SubmissionRepository
	filters     *repositorytest.FilterRepository
}

func newTestServer(t *testing.T, subs ...model.Submission) *testServer {
	t.Helper()
	s := &testServer{
		app:         fiber.New(),
		submissions: repositorytest.NewSubmissionRepository(subs...),
		filters:     repositorytest.NewFilterRepository(),
	}
	ranker := filter.NewRanker(config.DefaultEducationLevels)
	submissionUC := usecase.NewSubmissionUsecase(s.submissions, s.filters, filter.NewPipeline(ranker))
	filterUC := usecase.NewFilterUsecase(s.filters, ranker)

	api := s.app.Group("/api")
	handler.NewSubmissionHandler(submissionUC).RegisterRoutes(api)
	handler.NewFilterHandler(filterUC).RegisterRoutes(api)
	handler.NewUploadHandler(submissionUC, 1024*1024, 100).RegisterRoutes(api)
	return s
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, gjson.Result) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, gjson.ParseBytes(body)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func seed(n int) []model.Submission {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	subs := make([]model.Submission, 0, n)
	for i := 1; i <= n; i++ {
		loc := "Boston"
		if i%5 == 0 {
			loc = "Austin"
		}
		subs = append(subs, model.Submission{
			ID:          uint(i),
			Name:        fmt.Sprintf("candidate %d", i),
			Location:    loc,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return subs
}

func TestListSubmissions_Pagination(t *testing.T) {
	s := newTestServer(t, seed(25)...)

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions?page=2&pageSize=10", nil))
	require.Equal(t, http.StatusOK, code)

	assert.True(t, body.Get("success").Bool())
	assert.Equal(t, int64(10), body.Get("data.submissions.#").Int())
	assert.Equal(t, int64(15), body.Get("data.submissions.0.id").Int())
	assert.Equal(t, int64(25), body.Get("data.pagination.total").Int())
	assert.Equal(t, int64(3), body.Get("data.pagination.totalPages").Int())
	assert.Equal(t, int64(2), body.Get("data.pagination.currentPage").Int())
	assert.Equal(t, int64(10), body.Get("data.pagination.pageSize").Int())
}

func TestListSubmissions_OutOfRangeAndDefaults(t *testing.T) {
	s := newTestServer(t, seed(25)...)

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions?page=4&pageSize=10", nil))
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Get("data.submissions").IsArray())
	assert.Equal(t, int64(0), body.Get("data.submissions.#").Int())
	assert.Equal(t, int64(3), body.Get("data.pagination.totalPages").Int())

	code, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions?page=abc&pageSize=0", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Get("data.pagination.currentPage").Int())
	assert.Equal(t, int64(10), body.Get("data.pagination.pageSize").Int())
}

func TestListSubmissions_WithFilter(t *testing.T) {
	s := newTestServer(t, seed(25)...)

	code, body := s.do(t, jsonRequest(http.MethodPost, "/api/submissions/filters", `{"name": "austin", "location": "Austin"}`))
	require.Equal(t, http.StatusCreated, code)
	id := body.Get("data.id").Int()

	code, body = s.do(t, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/submissions?filter=%d", id), nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(5), body.Get("data.pagination.total").Int())
	for _, loc := range body.Get("data.submissions.#.location").Array() {
		assert.Equal(t, "Austin", loc.String())
	}
}

func TestListSubmissions_UnknownFilter(t *testing.T) {
	s := newTestServer(t, seed(3)...)

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions?filter=77", nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Get("success").Bool())
	assert.Equal(t, "Failed to fetch submissions", body.Get("message").String())

	code, _ = s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions?filter=abc", nil))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListSubmissions_StoreError(t *testing.T) {
	s := newTestServer(t)
	s.submissions.Err = errors.New("db down")

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, body.Get("success").Bool())
}

func TestCountSubmissions(t *testing.T) {
	s := newTestServer(t, seed(4)...)

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions/count", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(4), body.Get("data.count").Int())
}

func TestFilterCRUD(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, jsonRequest(http.MethodPost, "/api/submissions/filters",
		`{"name": "go devs", "minSalary": 90000, "workAvailability": ["Remote"], "skills": ["Go"], "minEducation": ""}`))
	require.Equal(t, http.StatusCreated, code)
	id := body.Get("data.id").Int()
	assert.Equal(t, int64(90000), body.Get("data.minSalary").Int())
	assert.Equal(t, gjson.Null, body.Get("data.minEducation").Type)

	code, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions/filters", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Get("data.#").Int())

	code, body = s.do(t, jsonRequest(http.MethodPut, fmt.Sprintf("/api/submissions/filters/%d", id), `{"name": "renamed"}`))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "renamed", body.Get("data.name").String())

	code, body = s.do(t, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/submissions/filters/%d", id), nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "renamed", body.Get("data.name").String())
	assert.Equal(t, "Go", body.Get("data.skills.0").String(), "absent keys keep their value")
	assert.Equal(t, int64(90000), body.Get("data.minSalary").Int())

	code, body = s.do(t, jsonRequest(http.MethodPut, fmt.Sprintf("/api/submissions/filters/%d", id), `{"minSalary": null, "skills": []}`))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "renamed", body.Get("data.name").String())
	assert.Equal(t, gjson.Null, body.Get("data.minSalary").Type)
	assert.Equal(t, int64(0), body.Get("data.skills.#").Int())
	assert.Equal(t, "Remote", body.Get("data.workAvailability.0").String())

	code, _ = s.do(t, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/submissions/filters/%d", id), nil))
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/submissions/filters/%d", id), nil))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateFilter_Invalid(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, jsonRequest(http.MethodPost, "/api/submissions/filters", `{"name": "", "minEducation": "PhD"}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Get("success").Bool())
	assert.True(t, body.Get("details.name").Exists())
	assert.True(t, body.Get("details.minEducation").Exists())

	code, _ = s.do(t, jsonRequest(http.MethodPost, "/api/submissions/filters", `{"name": `))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUpload(t *testing.T) {
	s := newTestServer(t)
	file := `[
		{"name": "", "phone": null, "submitted_at": "2025-06-01T00:00:00Z",
		 "work_experiences": [], "education": {"highest_level": "Doctorate", "degrees": [{}]}, "skills": ["Go"]},
		{"name": "B", "submitted_at": "2025-06-02T00:00:00Z", "work_experiences": [], "skills": []}
	]`

	code, body := s.do(t, uploadRequest(t, "subs.json", file))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), body.Get("data.count").Int())
	assert.Equal(t, "File processed successfully", body.Get("data.message").String())
	assert.NotEmpty(t, body.Get("data.batchId").String())

	code, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/submissions", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "B", body.Get("data.submissions.0.name").String())
	assert.Equal(t, "N/A", body.Get("data.submissions.1.name").String())
	assert.Equal(t, "N/A", body.Get("data.submissions.1.phone").String())
	assert.False(t, body.Get("data.submissions.1.education.degrees.0.isTop50").Bool())
}

func TestUpload_Errors(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, jsonRequest(http.MethodPost, "/api/upload", `[]`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No file provided", body.Get("message").String())

	code, _ = s.do(t, uploadRequest(t, "subs.json", `[{"submitted_at": "2025-06-01", "skills": []}]`))
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, uploadRequest(t, "subs.csv", `name,email`))
	assert.Equal(t, http.StatusBadRequest, code)

	n, err := s.submissions.Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, n)
}
