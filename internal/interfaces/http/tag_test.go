package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"centavo/internal/domain/tag"
	"centavo/internal/shared/middleware"
)

// MockTagRepo implements tag.Repository for testing
type MockTagRepo struct {
	CreateFunc  func(ctx context.Context, userID string, params tag.CreateParams) (*tag.Tag, error)
	GetByIDFunc func(ctx context.Context, userID, id string) (*tag.Tag, error)
	ListFunc    func(ctx context.Context, userID string) ([]*tag.Tag, error)
	UpdateFunc  func(ctx context.Context, userID, id string, params tag.UpdateParams) (*tag.Tag, error)
	DeleteFunc  func(ctx context.Context, userID, id string) error
}

func (m *MockTagRepo) Create(ctx context.Context, userID string, params tag.CreateParams) (*tag.Tag, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockTagRepo) GetByID(ctx context.Context, userID, id string) (*tag.Tag, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *MockTagRepo) List(ctx context.Context, userID string) ([]*tag.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTagRepo) Update(ctx context.Context, userID, id string, params tag.UpdateParams) (*tag.Tag, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, params)
	}
	return nil, nil
}

func (m *MockTagRepo) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, target, body)
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "user-1")
	return req.WithContext(ctx)
}

func TestHandleTags_ListTags(t *testing.T) {
	tests := []struct {
		name           string
		mockRepo       func() *MockTagRepo
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "Success",
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					ListFunc: func(ctx context.Context, userID string) ([]*tag.Tag, error) {
						return []*tag.Tag{
							{ID: "tag-1", Name: "work"},
							{ID: "tag-2", Name: "travel"},
						}, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "Empty List",
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					ListFunc: func(ctx context.Context, userID string) ([]*tag.Tag, error) {
						return nil, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name: "Repository Error",
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					ListFunc: func(ctx context.Context, userID string) ([]*tag.Tag, error) {
						return nil, errors.New("db error")
					},
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.mockRepo())

			req := authedRequest(http.MethodGet, "/api/tags", nil)
			rr := httptest.NewRecorder()
			handler.HandleTags(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				var tags []tag.Tag
				json.NewDecoder(rr.Body).Decode(&tags)
				if len(tags) != tt.expectedLen {
					t.Errorf("response length = %d, want %d", len(tags), tt.expectedLen)
				}
			}
		})
	}
}

func TestHandleTags_CreateTag(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockRepo       func() *MockTagRepo
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]interface{}{"name": "work"},
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					CreateFunc: func(ctx context.Context, userID string, params tag.CreateParams) (*tag.Tag, error) {
						return &tag.Tag{ID: "tag-1", Name: params.Name}, nil
					},
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Name",
			body: map[string]interface{}{},
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid JSON",
			body: nil,
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Repository Error",
			body: map[string]interface{}{"name": "work"},
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					CreateFunc: func(ctx context.Context, userID string, params tag.CreateParams) (*tag.Tag, error) {
						return nil, errors.New("db error")
					},
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.mockRepo())

			var body *bytes.Buffer
			if tt.body != nil {
				bodyBytes, _ := json.Marshal(tt.body)
				body = bytes.NewBuffer(bodyBytes)
			} else {
				body = bytes.NewBuffer([]byte("invalid json{"))
			}

			req := authedRequest(http.MethodPost, "/api/tags", body)
			rr := httptest.NewRecorder()
			handler.HandleTags(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestHandleTags_MethodNotAllowed(t *testing.T) {
	handler := NewTagHandler(&MockTagRepo{})

	req := authedRequest(http.MethodDelete, "/api/tags", nil)
	rr := httptest.NewRecorder()
	handler.HandleTags(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleTags_Unauthorized(t *testing.T) {
	handler := NewTagHandler(&MockTagRepo{})

	req, _ := http.NewRequest(http.MethodGet, "/api/tags", nil)
	rr := httptest.NewRecorder()
	handler.HandleTags(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestHandleTagByID_UpdateTag(t *testing.T) {
	tests := []struct {
		name           string
		tagID          string
		body           map[string]interface{}
		mockRepo       func() *MockTagRepo
		expectedStatus int
	}{
		{
			name:  "Success",
			tagID: "tag-1",
			body:  map[string]interface{}{"name": "updated"},
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					UpdateFunc: func(ctx context.Context, userID, id string, params tag.UpdateParams) (*tag.Tag, error) {
						return &tag.Tag{ID: id, Name: *params.Name}, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Not Found",
			tagID: "missing",
			body:  map[string]interface{}{"name": "updated"},
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					UpdateFunc: func(ctx context.Context, userID, id string, params tag.UpdateParams) (*tag.Tag, error) {
						return nil, tag.ErrTagNotFound
					},
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "Empty Name",
			tagID: "tag-1",
			body:  map[string]interface{}{"name": ""},
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing ID",
			tagID:          "",
			body:           map[string]interface{}{"name": "updated"},
			mockRepo:       func() *MockTagRepo { return &MockTagRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.mockRepo())

			bodyBytes, _ := json.Marshal(tt.body)
			req := authedRequest(http.MethodPut, "/api/tags/"+tt.tagID, bytes.NewBuffer(bodyBytes))
			req.SetPathValue("id", tt.tagID)

			rr := httptest.NewRecorder()
			handler.HandleTagByID(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestHandleTagByID_DeleteTag(t *testing.T) {
	tests := []struct {
		name           string
		mockRepo       func() *MockTagRepo
		expectedStatus int
	}{
		{
			name: "Success",
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					DeleteFunc: func(ctx context.Context, userID, id string) error {
						return nil
					},
				}
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Not Found",
			mockRepo: func() *MockTagRepo {
				return &MockTagRepo{
					DeleteFunc: func(ctx context.Context, userID, id string) error {
						return tag.ErrTagNotFound
					},
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.mockRepo())

			req := authedRequest(http.MethodDelete, "/api/tags/tag-1", nil)
			req.SetPathValue("id", "tag-1")

			rr := httptest.NewRecorder()
			handler.HandleTagByID(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}
