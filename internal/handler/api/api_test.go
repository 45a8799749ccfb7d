// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/auth"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/cache"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/service"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store/filestore"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/testutil"
)

const testSecret = "4f9d1c7e8b2a6d3f5c0e9a8b7d6c5f4e"

type testEnv struct {
	ts     *httptest.Server
	st     *filestore.Store
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := testutil.NewLogger()
	st := testutil.OpenFileStore(t)

	uploadsDir := t.TempDir()
	media, err := service.NewMediaService(st, uploadsDir, logger)
	require.NoError(t, err)

	tokens := auth.NewTokenManager(testSecret)
	c := cache.NewMemoryCache(cache.MemoryCacheOptions{})
	t.Cleanup(func() { _ = c.Close() })
	h := NewHandler(st, tokens, media, c, logger)
	ts := httptest.NewServer(NewRouter(h, RouterOptions{
		UploadsDir: uploadsDir,
		LoginRPS:   1000,
		LoginBurst: 1000,
	}))
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, st: st, tokens: tokens}
}

// seedUser creates an account directly in the store and returns it with a
// valid session token.
func (e *testEnv) seedUser(t *testing.T, email, role, password string) (*model.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.st.CreateUser(t.Context(), user))

	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	return user, token
}

// doJSON performs a request and returns the status code and raw body.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeData[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var env struct {
		Data T     `json:"data"`
		Meta *Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	return env.Data
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var env ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &env))
	return env.Error.Code
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	status, raw := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":     "mentee@example.org",
		"password":  "long-enough-password",
		"firstName": "Amina",
		"lastName":  "Khan",
	})
	require.Equal(t, http.StatusCreated, status)
	session := decodeData[sessionResponse](t, raw)
	assert.NotEmpty(t, session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, model.RoleMentee, session.User.Role)

	// Same email again, regardless of case.
	status, raw = env.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "MENTEE@example.org",
		"password": "long-enough-password",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email_taken", errorCode(t, raw))

	status, raw = env.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "mentee@example.org",
		"password": "long-enough-password",
	})
	require.Equal(t, http.StatusOK, status)
	session = decodeData[sessionResponse](t, raw)
	assert.NotEmpty(t, session.Token)

	// Wrong password and unknown email are indistinguishable.
	status, raw = env.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "mentee@example.org", "password": "wrong-password!",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_credentials", errorCode(t, raw))

	status, raw = env.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "nobody@example.org", "password": "wrong-password!",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_credentials", errorCode(t, raw))
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "not-an-email", "password": "long-enough-password",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "ok@example.org", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAuthMe(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.seedUser(t, "me@example.org", model.RoleMentor, "long-enough-password")

	status, raw := env.doJSON(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	got := decodeData[*model.User](t, raw)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, model.RoleMentor, got.Role)

	status, _ = env.doJSON(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestContentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")
	_, menteeToken := env.seedUser(t, "mentee@example.org", model.RoleMentee, "long-enough-password")

	page := map[string]any{
		"pageName": "About",
		"sections": []map[string]any{
			{"id": "intro", "type": "text", "title": "Who we are", "content": "We **mentor** researchers."},
		},
	}

	status, _ := env.doJSON(t, http.MethodPut, "/api/v1/content/about", menteeToken, page)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = env.doJSON(t, http.MethodPut, "/api/v1/content/Bad_Slug", adminToken, page)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw := env.doJSON(t, http.MethodPut, "/api/v1/content/about", adminToken, page)
	require.Equal(t, http.StatusOK, status)
	saved := decodeData[*model.PageContent](t, raw)
	assert.Equal(t, "about", saved.ID)

	// Public read, no token.
	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/content/about", "", nil)
	require.Equal(t, http.StatusOK, status)
	got := decodeData[*model.PageContent](t, raw)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Who we are", got.Sections[0].Title)

	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/content/about/rendered", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "<strong>mentor</strong>")

	status, _ = env.doJSON(t, http.MethodGet, "/api/v1/content/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.doJSON(t, http.MethodDelete, "/api/v1/content/about", adminToken, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = env.doJSON(t, http.MethodGet, "/api/v1/content/about", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestContentSaveStripsDangerousMarkup(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")

	page := map[string]any{
		"pageName": "Home <script>alert(1)</script>",
		"sections": []map[string]any{
			{
				"id":      "hero",
				"type":    "hero",
				"title":   `Welcome <img src=x onerror="alert(1)">`,
				"content": "Join us. <script>alert(1)</script><b>Apply now.</b>",
			},
		},
	}

	status, raw := env.doJSON(t, http.MethodPut, "/api/v1/content/home", adminToken, page)
	require.Equal(t, http.StatusOK, status)
	saved := decodeData[*model.PageContent](t, raw)
	assert.NotContains(t, saved.Name, "<script>")
	assert.NotContains(t, saved.Sections[0].Title, "onerror")

	// The stored record must not round-trip the markup either.
	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/content/home", "", nil)
	require.Equal(t, http.StatusOK, status)
	got := decodeData[*model.PageContent](t, raw)
	require.Len(t, got.Sections, 1)
	assert.NotContains(t, got.Name, "<script>")
	assert.NotContains(t, got.Sections[0].Title, "<img")
	assert.NotContains(t, got.Sections[0].Content, "<script>")
	// Safe inline markup survives.
	assert.Contains(t, got.Sections[0].Content, "<b>Apply now.</b>")
}

func TestSettingsLogoSelfInit(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")

	// First public read creates the default logo record.
	status, raw := env.doJSON(t, http.MethodGet, "/api/v1/settings/logo", "", nil)
	require.Equal(t, http.StatusOK, status)
	logo := decodeData[*model.Setting](t, raw)
	assert.Equal(t, model.SettingKeyLogo, logo.Key)
	assert.Contains(t, string(logo.Value), "logo-default.svg")

	// Admin overrides it; subsequent reads return the override.
	status, _ = env.doJSON(t, http.MethodPut, "/api/v1/settings/logo", adminToken, map[string]any{
		"settingValue": map[string]string{"url": "/uploads/logo.png", "alt": "Custom"},
	})
	require.Equal(t, http.StatusOK, status)

	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/settings/logo", "", nil)
	require.Equal(t, http.StatusOK, status)
	logo = decodeData[*model.Setting](t, raw)
	assert.Contains(t, string(logo.Value), "logo.png")

	// Only well-formed payloads are accepted.
	req, err := http.NewRequest(http.MethodPut, env.ts.URL+"/api/v1/settings/theme",
		strings.NewReader(`{"settingValue": {"broken"`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := env.ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsersAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")
	_, menteeToken := env.seedUser(t, "mentee@example.org", model.RoleMentee, "long-enough-password")

	status, _ := env.doJSON(t, http.MethodGet, "/api/v1/users", menteeToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := env.doJSON(t, http.MethodPost, "/api/v1/users", adminToken, map[string]string{
		"email": "mentor@example.org", "password": "long-enough-password",
		"role": model.RoleMentor, "firstName": "Rafael", "lastName": "Ortiz",
	})
	require.Equal(t, http.StatusCreated, status)
	mentor := decodeData[*model.User](t, raw)
	assert.Equal(t, model.RoleMentor, mentor.Role)

	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/users", adminToken, map[string]string{
		"email": "x@example.org", "password": "long-enough-password", "role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/users", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	users := decodeData[[]*model.User](t, raw)
	assert.Len(t, users, 3)

	// Role change via partial update.
	status, raw = env.doJSON(t, http.MethodPut, "/api/v1/users/"+mentor.ID, adminToken, map[string]string{
		"firstName": "Rafa",
	})
	require.Equal(t, http.StatusOK, status)
	updated := decodeData[*model.User](t, raw)
	assert.Equal(t, "Rafa", updated.FirstName)
	assert.Equal(t, "mentor@example.org", updated.Email)

	// Admins cannot delete their own account.
	status, _ = env.doJSON(t, http.MethodDelete, "/api/v1/users/"+admin.ID, adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.doJSON(t, http.MethodDelete, "/api/v1/users/"+mentor.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestFeedbackFlow(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")
	mentee, menteeToken := env.seedUser(t, "mentee@example.org", model.RoleMentee, "long-enough-password")

	status, raw := env.doJSON(t, http.MethodPost, "/api/v1/feedback-forms", adminToken, map[string]any{
		"title": "Webinar feedback",
		"questions": []map[string]any{
			{"id": "rating", "kind": "rating", "label": "Overall rating", "required": true},
			{"id": "comments", "kind": "textarea", "label": "Comments"},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	form := decodeData[*model.FeedbackForm](t, raw)
	assert.True(t, form.IsActive)

	// Inactive form for contrast.
	inactive := false
	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/feedback-forms", adminToken, map[string]any{
		"title": "Draft form", "isActive": inactive, "questions": []map[string]any{},
	})
	require.Equal(t, http.StatusCreated, status)

	// Mentees only see active forms.
	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/feedback-forms", menteeToken, nil)
	require.Equal(t, http.StatusOK, status)
	forms := decodeData[[]*model.FeedbackForm](t, raw)
	require.Len(t, forms, 1)
	assert.Equal(t, form.ID, forms[0].ID)

	// Missing required answer.
	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/feedback-forms/"+form.ID+"/responses", menteeToken, map[string]any{
		"answers": map[string]any{"comments": "Great session"},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Answer for a question the form does not have.
	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/feedback-forms/"+form.ID+"/responses", menteeToken, map[string]any{
		"answers": map[string]any{"rating": 5, "bogus": "x"},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.doJSON(t, http.MethodPost, "/api/v1/feedback-forms/"+form.ID+"/responses", menteeToken, map[string]any{
		"answers": map[string]any{"rating": 5, "comments": "Great session"},
	})
	require.Equal(t, http.StatusCreated, status)
	resp := decodeData[*model.FeedbackResponse](t, raw)
	assert.Equal(t, mentee.ID, resp.RespondentID)

	// Responses are admin-only.
	status, _ = env.doJSON(t, http.MethodGet, "/api/v1/feedback-forms/"+form.ID+"/responses", menteeToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/feedback-forms/"+form.ID+"/responses", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	responses := decodeData[[]*model.FeedbackResponse](t, raw)
	require.Len(t, responses, 1)
	assert.Equal(t, resp.ID, responses[0].ID)
}

func TestProjectsScoping(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")
	mentor, _ := env.seedUser(t, "mentor@example.org", model.RoleMentor, "long-enough-password")
	mentee, menteeToken := env.seedUser(t, "mentee@example.org", model.RoleMentee, "long-enough-password")
	_, strangerToken := env.seedUser(t, "stranger@example.org", model.RoleMentee, "long-enough-password")

	status, raw := env.doJSON(t, http.MethodPost, "/api/v1/projects", adminToken, map[string]string{
		"title": "Colonoscopy outcomes study", "mentorId": mentor.ID, "menteeId": mentee.ID,
	})
	require.Equal(t, http.StatusCreated, status)
	project := decodeData[*model.Project](t, raw)
	assert.Equal(t, model.ProjectActive, project.Status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/projects", adminToken, map[string]string{
		"title": "Orphan project", "mentorId": mentor.ID, "menteeId": "no-such-user",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Members see the project, strangers get a 404.
	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/projects", menteeToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]*model.Project](t, raw), 1)

	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/projects", strangerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decodeData[[]*model.Project](t, raw))

	status, _ = env.doJSON(t, http.MethodGet, "/api/v1/projects/"+project.ID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Tasks are managed by members.
	status, raw = env.doJSON(t, http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks", menteeToken, map[string]string{
		"title": "Draft study protocol",
	})
	require.Equal(t, http.StatusCreated, status)
	task := decodeData[*model.Task](t, raw)
	assert.Equal(t, model.TaskTodo, task.Status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks", menteeToken, map[string]string{
		"title": "Bad status", "status": "blocked",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = env.doJSON(t, http.MethodPut, "/api/v1/projects/"+project.ID+"/tasks/"+task.ID, menteeToken, map[string]string{
		"status": model.TaskInProgress,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, model.TaskInProgress, decodeData[*model.Task](t, raw).Status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/projects/"+project.ID+"/tasks", strangerToken, map[string]string{
		"title": "Sneaky task",
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.doJSON(t, http.MethodDelete, "/api/v1/projects/"+project.ID+"/tasks/"+task.ID, menteeToken, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestWebinarsPublic(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")

	now := time.Now().UTC()
	status, _ := env.doJSON(t, http.MethodPost, "/api/v1/webinars", adminToken, map[string]any{
		"title": "Grant writing basics", "speaker": "Dr. Rivera",
		"scheduledAt": now.Add(-48 * time.Hour), "durationMinutes": 60, "status": model.WebinarCompleted,
	})
	require.Equal(t, http.StatusCreated, status)

	status, raw := env.doJSON(t, http.MethodPost, "/api/v1/webinars", adminToken, map[string]any{
		"title": "Abstract writing workshop", "speaker": "Dr. Chen",
		"scheduledAt": now.Add(72 * time.Hour), "durationMinutes": 90,
	})
	require.Equal(t, http.StatusCreated, status)
	upcoming := decodeData[*model.Webinar](t, raw)
	assert.Equal(t, model.WebinarScheduled, upcoming.Status)

	status, _ = env.doJSON(t, http.MethodPost, "/api/v1/webinars", adminToken, map[string]any{
		"title": "No time", "speaker": "X", "durationMinutes": 30,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Public, no token.
	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/webinars", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]*model.Webinar](t, raw), 2)

	status, raw = env.doJSON(t, http.MethodGet, "/api/v1/webinars?upcoming=true", "", nil)
	require.Equal(t, http.StatusOK, status)
	list := decodeData[[]*model.Webinar](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, upcoming.ID, list[0].ID)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename, mimeType string, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestMediaUpload(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.org", model.RoleAdmin, "long-enough-password")

	body, contentType := multipartUpload(t, "Team Photo.PNG", "image/png", pngBytes(t))
	req, err := http.NewRequest(http.MethodPost, env.ts.URL+"/api/v1/media", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := env.ts.Client().Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	media := decodeData[*model.Media](t, raw)
	assert.Equal(t, 640, media.Width)
	assert.NotEmpty(t, media.ThumbnailURL)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/"))

	// The stored file is served back through the static route.
	fileResp, err := env.ts.Client().Get(env.ts.URL + media.URL)
	require.NoError(t, err)
	fileResp.Body.Close()
	assert.Equal(t, http.StatusOK, fileResp.StatusCode)

	// Unsupported type.
	body, contentType = multipartUpload(t, "notes.txt", "text/plain", []byte("hello"))
	req, err = http.NewRequest(http.MethodPost, env.ts.URL+"/api/v1/media", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = env.ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	// Alt text edit.
	status, raw := env.doJSON(t, http.MethodPut, "/api/v1/media/"+media.ID, adminToken, map[string]string{
		"alt": "The 2026 cohort",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "The 2026 cohort", decodeData[*model.Media](t, raw).Alt)

	status, _ = env.doJSON(t, http.MethodDelete, "/api/v1/media/"+media.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = env.doJSON(t, http.MethodGet, "/api/v1/media/"+media.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	status, raw := env.doJSON(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), `"status":"ok"`)
}
