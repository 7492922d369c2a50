package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-tweet-studio/internal/jwt"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]interface{}
		expectCookie bool
	}{
		{
			name:     "success regular user",
			username: "alice",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret").
					Return("token123", &models.UserDB{ID: 2, Username: "alice"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{"success": true, "message": "Login successful"},
			expectCookie: true,
		},
		{
			name:     "success admin",
			username: "admin",
			password: "admin123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "admin", "admin123").
					Return("token456", &models.UserDB{ID: 1, Username: "admin", IsAdmin: true}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{"success": true, "message": "Login successful", "is_admin": true},
			expectCookie: true,
		},
		{
			name:     "invalid credentials",
			username: "alice",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{"success": false, "message": "Invalid credentials"},
		},
		{
			name:     "internal server error",
			username: "alice",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret").
					Return("", nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]interface{}{"success": false, "message": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc, time.Hour)

			bodyBytes, _ := json.Marshal(LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]interface{}
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)

			var sessionCookie *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == jwt.SessionCookieName {
					sessionCookie = c
				}
			}
			if tt.expectCookie {
				assert.NotNil(t, sessionCookie)
				assert.NotEmpty(t, sessionCookie.Value)
				assert.True(t, sessionCookie.HttpOnly)
			} else {
				assert.Nil(t, sessionCookie)
			}
		})
	}
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLoginHandler(NewMockLoginer(ctrl), time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{invalid json}"))
	rr := httptest.NewRecorder()

	handler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}
