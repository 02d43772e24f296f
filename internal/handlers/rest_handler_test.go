package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"socketBoard/internal/errs"
	"socketBoard/internal/interfaces/mocks"
	"socketBoard/internal/models"
	"socketBoard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type restFixture struct {
	users       *mocks.UserStore
	whiteboards *mocks.WhiteboardStore
	sessions    *mocks.SessionStore
	router      *gin.Engine
}

func newRestFixture() *restFixture {
	gin.SetMode(gin.TestMode)
	f := &restFixture{
		users:       new(mocks.UserStore),
		whiteboards: new(mocks.WhiteboardStore),
		sessions:    new(mocks.SessionStore),
	}
	restHandler := NewRestHandler(
		services.NewUserService(f.users),
		services.NewWhiteboardService(f.whiteboards, f.sessions),
		zap.NewNop(),
	)
	f.router = gin.New()
	f.router.POST("/api/users", restHandler.CreateUser)
	f.router.GET("/api/whiteboards", restHandler.GetAllWhiteboards)
	f.router.GET("/api/whiteboards/:id", restHandler.GetWhiteboard)
	f.router.GET("/api/whiteboards/:id/sessions", restHandler.GetWhiteboardSessions)
	return f
}

func (f *restFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRestHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setupMock  func(*mocks.UserStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: map[string]string{"email": "a@x.com", "name": "A"},
			setupMock: func(m *mocks.UserStore) {
				m.On("Create", mock.Anything, "a@x.com", "A").Return(&models.User{ID: "u1", Email: "a@x.com", Name: "A"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing email",
			body:       map[string]string{"name": "A"},
			setupMock:  func(m *mocks.UserStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"User creation failed"}`,
		},
		{
			name: "duplicate email",
			body: map[string]string{"email": "a@x.com", "name": "A"},
			setupMock: func(m *mocks.UserStore) {
				m.On("Create", mock.Anything, "a@x.com", "A").Return(nil, errs.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"User creation failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRestFixture()
			tt.setupMock(f.users)

			w := f.do(http.MethodPost, "/api/users", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				var user models.User
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
				assert.Equal(t, "u1", user.ID)
			}
		})
	}
}

func TestRestHandler_GetAllWhiteboards(t *testing.T) {
	f := newRestFixture()
	f.whiteboards.On("FindAllWithOwner", mock.Anything).Return([]models.Whiteboard{
		{ID: "r1", Name: "Whiteboard r1", User: &models.User{Name: "Alice"}},
	}, nil)

	w := f.do(http.MethodGet, "/api/whiteboards", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "r1", body[0]["id"])
	assert.Equal(t, map[string]any{"name": "Alice"}, body[0]["user"])
	assert.NotContains(t, body[0], "imageData")
}

func TestRestHandler_GetWhiteboard(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newRestFixture()
		f.whiteboards.On("FindByIDWithOwner", mock.Anything, "r1").
			Return(&models.Whiteboard{ID: "r1", ImageData: "data", User: &models.User{ID: "u1", Name: "A"}}, nil)

		w := f.do(http.MethodGet, "/api/whiteboards/r1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var whiteboard models.Whiteboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &whiteboard))
		assert.Equal(t, "data", whiteboard.ImageData)
		assert.Equal(t, "A", whiteboard.User.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRestFixture()
		f.whiteboards.On("FindByIDWithOwner", mock.Anything, "nope").Return(nil, errs.ErrWhiteboardNotFound)

		w := f.do(http.MethodGet, "/api/whiteboards/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Whiteboard not found"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newRestFixture()
		f.whiteboards.On("FindByIDWithOwner", mock.Anything, "r1").Return(nil, errors.New("db down"))

		w := f.do(http.MethodGet, "/api/whiteboards/r1", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRestHandler_GetWhiteboardSessions(t *testing.T) {
	f := newRestFixture()
	f.whiteboards.On("FindByID", mock.Anything, "r1").Return(&models.Whiteboard{ID: "r1"}, nil)
	f.sessions.On("FindByWhiteboard", mock.Anything, "r1").Return([]models.WhiteboardSession{
		{ID: "s1", WhiteboardID: "r1", UserID: "u1"},
	}, nil)

	w := f.do(http.MethodGet, "/api/whiteboards/r1/sessions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var sessions []models.WhiteboardSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, "u1", sessions[0].UserID)
}

