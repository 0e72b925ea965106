package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-records-api/internal/application/ports"
	domain "user-records-api/internal/domain/user"
	jwtSvc "user-records-api/internal/infrastructure/jwt"
	"user-records-api/internal/interface/api/rest/dto/user"
	"user-records-api/internal/interface/api/rest/middleware"
)

type FakeUserService struct {
	RegisterFunc     func(ctx context.Context, input domain.Registration) (*domain.User, error)
	FindByUUIDFunc   func(ctx context.Context, id domain.UUID) (*domain.User, error)
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc  func(ctx context.Context, phone string) (*domain.User, error)
	FindByNameFunc   func(ctx context.Context, name string) (domain.Users, error)
	FindByStatusFunc func(ctx context.Context, active bool) (domain.Users, error)
	FindAllFunc      func(ctx context.Context) (domain.Users, error)
	UpdateFunc       func(ctx context.Context, id domain.UUID, upd domain.Update) (*domain.User, error)
	ReplaceFunc      func(ctx context.Context, id domain.UUID, input domain.Registration) (*domain.User, error)
	DeleteFunc       func(ctx context.Context, id domain.UUID) error
	SetStatusFunc    func(ctx context.Context, id domain.UUID, active bool) (*domain.User, error)
	AuthenticateFunc func(ctx context.Context, email, secret string) (*domain.User, error)
}

func (f *FakeUserService) Register(ctx context.Context, input domain.Registration) (*domain.User, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, input)
}
func (f *FakeUserService) FindByUUID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.FindByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByUUIDFunc(ctx, id)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if f.FindByPhoneFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByPhoneFunc(ctx, phone)
}
func (f *FakeUserService) FindByName(ctx context.Context, name string) (domain.Users, error) {
	if f.FindByNameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByNameFunc(ctx, name)
}
func (f *FakeUserService) FindByStatus(ctx context.Context, active bool) (domain.Users, error) {
	if f.FindByStatusFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByStatusFunc(ctx, active)
}
func (f *FakeUserService) FindAll(ctx context.Context) (domain.Users, error) {
	if f.FindAllFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindAllFunc(ctx)
}
func (f *FakeUserService) Update(ctx context.Context, id domain.UUID, upd domain.Update) (*domain.User, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, upd)
}
func (f *FakeUserService) Replace(ctx context.Context, id domain.UUID, input domain.Registration) (*domain.User, error) {
	if f.ReplaceFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ReplaceFunc(ctx, id, input)
}
func (f *FakeUserService) Delete(ctx context.Context, id domain.UUID) error {
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeUserService) SetStatus(ctx context.Context, id domain.UUID, active bool) (*domain.User, error) {
	if f.SetStatusFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SetStatusFunc(ctx, id, active)
}
func (f *FakeUserService) Authenticate(ctx context.Context, email, secret string) (*domain.User, error) {
	if f.AuthenticateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.AuthenticateFunc(ctx, email, secret)
}

func setupRouter(t *testing.T, us ports.UserService, withJWT bool) (*gin.Engine, *UserController, *jwtSvc.Service, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	secret := "test-secret"
	j := jwtSvc.New(secret)

	uc := &UserController{
		userService: us,
		logger:      logger,
	}

	r.POST(RouteUsers, uc.RegisterUserHandler)
	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUserByID, uc.GetUserByIDHandler)
	r.GET(RouteUserByEmail, uc.GetUserByEmailHandler)
	r.GET(RouteUserByPhone, uc.GetUserByPhoneHandler)
	r.GET(RouteUsersByName, uc.GetUsersByNameHandler)
	r.GET(RouteUsersByStatus, uc.GetUsersByStatusHandler)
	if withJWT {
		r.PUT(RouteUser, middleware.AuthMiddleware(j), uc.UpdateUserHandler)
		r.PUT(RouteUserReplace, middleware.AuthMiddleware(j), uc.ReplaceUserHandler)
		r.PATCH(RouteUserStatus, middleware.AuthMiddleware(j), uc.SetUserStatusHandler)
		r.DELETE(RouteUser, middleware.AuthMiddleware(j), uc.DeleteUserHandler)
	} else {
		r.PUT(RouteUser, uc.UpdateUserHandler)
		r.PUT(RouteUserReplace, uc.ReplaceUserHandler)
		r.PATCH(RouteUserStatus, uc.SetUserStatusHandler)
		r.DELETE(RouteUser, uc.DeleteUserHandler)
	}

	return r, uc, j, secret
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validUserRequest() user.Request {
	return user.Request{
		Name:      "John",
		LastNames: "Doe Smith",
		Email:     "john.doe@example.com",
		Secret:    "password123",
		Phone:     "12345678901",
		Address:   "1 Main St",
	}
}

func validUpdateRequest() user.UpdateRequest {
	return user.UpdateRequest{
		Name:      "Johnny",
		LastNames: "Doe",
		Phone:     "12345678901",
		Address:   "2 Side St",
		Role:      "EMPLOYEE",
	}
}

func someDomainUser() *domain.User {
	hash := "$2a$10$hash"
	return &domain.User{
		UUID:       uuid.New(),
		Name:       "John",
		LastNames:  "Doe Smith",
		Email:      "john.doe@example.com",
		SecretHash: &hash,
		Phone:      "12345678901",
		Address:    "1 Main St",
		Role:       domain.RoleUser,
		Active:     true,
	}
}

func SignJWT(secret, userID, role string, exp time.Duration) (string, error) {
	type Claims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func authHeader(t *testing.T) map[string]string {
	t.Helper()
	tok, err := SignJWT("test-secret", uuid.NewString(), "ADMIN", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestUserController_GetUsersHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name: "500 when service fails",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindAllFunc: func(ctx context.Context) (domain.Users, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get users",
		},
		{
			name: "200 success",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindAllFunc: func(ctx context.Context) (domain.Users, error) {
						return domain.Users{someDomainUser()}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), false)
			rr := doReq(t, r, http.MethodGet, RouteUsers, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_GetUserByIDHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		userID     string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid uuid",
			userID:     "not-a-uuid",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:   "500 service error",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindByUUIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get a user",
		},
		{
			name:   "404 not found",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindByUUIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						return nil, domain.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:   "200 success",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.UUID = okID
				return &FakeUserService{
					FindByUUIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						assert.Equal(t, okID, id)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), false)
			rr := doReq(t, r, http.MethodGet, RouteUsers+"/id/"+tt.userID, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_GetUserByEmailHandler(t *testing.T) {
	t.Run("404 not found", func(t *testing.T) {
		us := &FakeUserService{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		}
		r, _, _, _ := setupRouter(t, us, false)
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/email/nobody@example.com", nil, nil)
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("200 success hides the secret hash", func(t *testing.T) {
		us := &FakeUserService{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				assert.Equal(t, "john.doe@example.com", email)
				return someDomainUser(), nil
			},
		}
		r, _, _, _ := setupRouter(t, us, false)
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/email/john.doe@example.com", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "john.doe@example.com", resp["email"])
		assert.NotContains(t, resp, "secret")
		assert.NotContains(t, resp, "secret_hash")
	})
}

func TestUserController_GetUserByPhoneHandler(t *testing.T) {
	t.Run("200 success", func(t *testing.T) {
		us := &FakeUserService{
			FindByPhoneFunc: func(ctx context.Context, phone string) (*domain.User, error) {
				assert.Equal(t, "12345678901", phone)
				return someDomainUser(), nil
			},
		}
		r, _, _, _ := setupRouter(t, us, false)
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/phone/12345678901", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("404 not found", func(t *testing.T) {
		us := &FakeUserService{
			FindByPhoneFunc: func(ctx context.Context, phone string) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		}
		r, _, _, _ := setupRouter(t, us, false)
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/phone/00000000000", nil, nil)
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUserController_GetUsersByNameHandler(t *testing.T) {
	t.Run("200 empty match is a valid response", func(t *testing.T) {
		us := &FakeUserService{
			FindByNameFunc: func(ctx context.Context, name string) (domain.Users, error) {
				return domain.Users{}, nil
			},
		}
		r, _, _, _ := setupRouter(t, us, false)
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/name/Nobody", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data []any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data)
	})

	t.Run("200 with matches", func(t *testing.T) {
		us := &FakeUserService{
			FindByNameFunc: func(ctx context.Context, name string) (domain.Users, error) {
				assert.Equal(t, "John", name)
				return domain.Users{someDomainUser()}, nil
			},
		}
		r, _, _, _ := setupRouter(t, us, false)
		rr := doReq(t, r, http.MethodGet, RouteUsers+"/name/John", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUserController_GetUsersByStatusHandler(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 unparsable status",
			status:     "maybe",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "status must be true or false",
		},
		{
			name:   "200 active",
			status: "true",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindByStatusFunc: func(ctx context.Context, active bool) (domain.Users, error) {
						assert.True(t, active)
						return domain.Users{someDomainUser()}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "200 inactive",
			status: "false",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindByStatusFunc: func(ctx context.Context, active bool) (domain.Users, error) {
						assert.False(t, active)
						return domain.Users{}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), false)
			rr := doReq(t, r, http.MethodGet, RouteUsers+"/status/"+tt.status, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_RegisterUserHandler(t *testing.T) {
	validReq := validUserRequest()

	tests := []struct {
		name       string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid JSON",
			body:       "{bad json",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "400 validation error",
			body: user.Request{
				Name:   "",
				Email:  "bad",
				Secret: "short",
				Phone:  "123",
				Role:   "KING",
			},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "409 email already exists",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, input domain.Registration) (*domain.User, error) {
						return nil, domain.ErrAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "409 phone conflict surfaces as a logic error",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, input domain.Registration) (*domain.User, error) {
						return nil, domain.NewLogicError("register", domain.ErrUniqueViolation)
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "500 service error",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, input domain.Registration) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to register a user",
		},
		{
			name: "201 success",
			body: validReq,
			mockUS: func() ports.UserService {
				u := someDomainUser()
				return &FakeUserService{
					RegisterFunc: func(ctx context.Context, input domain.Registration) (*domain.User, error) {
						assert.Equal(t, validReq.Email, input.Email)
						assert.Equal(t, validReq.Secret, input.Secret)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), false)
			rr := doReq(t, r, http.MethodPost, RouteUsers, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_UpdateUserHandler(t *testing.T) {
	id := uuid.New()
	validReq := validUpdateRequest()

	tests := []struct {
		name       string
		userID     string
		headers    map[string]string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			userID:     id.String(),
			headers:    nil,
			body:       validReq,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:   "401 invalid token signature",
			userID: id.String(),
			headers: func() map[string]string {
				tok, _ := SignJWT("other-secret", "123", "ADMIN", time.Hour)
				return map[string]string{"Authorization": "Bearer " + tok}
			}(),
			body:       validReq,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token",
		},
		{
			name:       "400 invalid uuid",
			userID:     "not-uuid",
			headers:    authHeader(t),
			body:       validReq,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:       "400 invalid JSON",
			userID:     id.String(),
			headers:    authHeader(t),
			body:       "{bad json",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "400 validation error",
			userID:  id.String(),
			headers: authHeader(t),
			body: user.UpdateRequest{
				Name:  "",
				Phone: "123",
				Role:  "KING",
			},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "404 not found",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateFunc: func(ctx context.Context, uid domain.UUID, upd domain.Update) (*domain.User, error) {
						return nil, domain.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "409 phone already in use",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateFunc: func(ctx context.Context, uid domain.UUID, upd domain.Update) (*domain.User, error) {
						return nil, domain.NewLogicError("update", domain.ErrPhoneInUse)
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "500 service error",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateFunc: func(ctx context.Context, uid domain.UUID, upd domain.Update) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to update a user",
		},
		{
			name:    "200 success",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.UUID = id
				return &FakeUserService{
					UpdateFunc: func(ctx context.Context, uid domain.UUID, upd domain.Update) (*domain.User, error) {
						assert.Equal(t, id, uid)
						assert.Equal(t, validReq.Name, upd.Name)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), true)
			rr := doReq(t, r, http.MethodPut, RouteUsers+"/"+tt.userID, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_ReplaceUserHandler(t *testing.T) {
	id := uuid.New()
	validReq := validUserRequest()

	tests := []struct {
		name       string
		userID     string
		headers    map[string]string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			userID:     id.String(),
			headers:    nil,
			body:       validReq,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 invalid uuid",
			userID:     "not-uuid",
			headers:    authHeader(t),
			body:       validReq,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:    "404 not found",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					ReplaceFunc: func(ctx context.Context, uid domain.UUID, input domain.Registration) (*domain.User, error) {
						return nil, domain.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "409 email belongs to another user",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					ReplaceFunc: func(ctx context.Context, uid domain.UUID, input domain.Registration) (*domain.User, error) {
						return nil, domain.ErrAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "200 blank secret keeps the stored hash",
			userID:  id.String(),
			headers: authHeader(t),
			body: func() user.Request {
				r := validUserRequest()
				r.Secret = ""
				return r
			}(),
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.UUID = id
				return &FakeUserService{
					ReplaceFunc: func(ctx context.Context, uid domain.UUID, input domain.Registration) (*domain.User, error) {
						assert.Equal(t, id, uid)
						assert.Empty(t, input.Secret)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "200 success",
			userID:  id.String(),
			headers: authHeader(t),
			body:    validReq,
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.UUID = id
				return &FakeUserService{
					ReplaceFunc: func(ctx context.Context, uid domain.UUID, input domain.Registration) (*domain.User, error) {
						assert.Equal(t, validReq.Email, input.Email)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), true)
			rr := doReq(t, r, http.MethodPut, RouteUsers+"/"+tt.userID+"/replace", tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_SetUserStatusHandler(t *testing.T) {
	id := uuid.New()
	active := true

	tests := []struct {
		name       string
		userID     string
		headers    map[string]string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			userID:     id.String(),
			headers:    nil,
			body:       user.StatusRequest{Active: &active},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 missing active flag",
			userID:     id.String(),
			headers:    authHeader(t),
			body:       user.StatusRequest{},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "body must carry an active flag",
		},
		{
			name:    "404 not found",
			userID:  id.String(),
			headers: authHeader(t),
			body:    user.StatusRequest{Active: &active},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					SetStatusFunc: func(ctx context.Context, uid domain.UUID, a bool) (*domain.User, error) {
						return nil, domain.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "200 success",
			userID:  id.String(),
			headers: authHeader(t),
			body:    user.StatusRequest{Active: &active},
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.UUID = id
				return &FakeUserService{
					SetStatusFunc: func(ctx context.Context, uid domain.UUID, a bool) (*domain.User, error) {
						assert.Equal(t, id, uid)
						assert.True(t, a)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), true)
			rr := doReq(t, r, http.MethodPatch, RouteUsers+"/"+tt.userID+"/status", tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_DeleteUserHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		userID     string
		headers    map[string]string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			userID:     id.String(),
			headers:    nil,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 invalid uuid",
			userID:     "not-uuid",
			headers:    authHeader(t),
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:    "404 not found",
			userID:  id.String(),
			headers: authHeader(t),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					DeleteFunc: func(ctx context.Context, uid domain.UUID) error {
						return domain.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "500 service error",
			userID:  id.String(),
			headers: authHeader(t),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					DeleteFunc: func(ctx context.Context, uid domain.UUID) error {
						return errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to delete user",
		},
		{
			name:    "204 success",
			userID:  id.String(),
			headers: authHeader(t),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					DeleteFunc: func(ctx context.Context, uid domain.UUID) error { return nil },
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := setupRouter(t, tt.mockUS(), true)
			rr := doReq(t, r, http.MethodDelete, RouteUsers+"/"+tt.userID, nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}
