package routers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"symptomix-service/internal/app/config"
	"symptomix-service/internal/app/delivery/http/controllers"
	"symptomix-service/internal/app/delivery/http/middlewares"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/dto/requests"
	"symptomix-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) Assess(ctx context.Context, request *requests.AssessSymptoms) (*models.AssessmentResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentResult), args.Error(1)
}

func (m *MockAssessmentUsecase) GetAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentResult), args.Error(1)
}

func (m *MockAssessmentUsecase) GetUserHistory(ctx context.Context, userID string) ([]*models.Assessment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Assessment), args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserUsecase) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(assessBurst int, assessmentUsecase *MockAssessmentUsecase, userUsecase *MockUserUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Timezone:                   "UTC",
			MaxRequests:                1000,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
			AssessRequestsPerMinute:    60,
			AssessBurst:                assessBurst,
			AssessBlockTimeInSeconds:   60,
		},
	}
	requestLogger := logrus.New()
	requestLogger.SetOutput(io.Discard)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		requestLogger,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewAssessmentController(logger, assessmentUsecase, internalConfig.App.RequestTimeoutInSeconds),
		controllers.NewUserController(logger, userUsecase, internalConfig.App.RequestTimeoutInSeconds),
		controllers.NewHealthController(),
	)
	return router
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var env envelope
	json.Unmarshal(rr.Body.Bytes(), &env)
	return rr, env
}

func TestSymptomRoutes(t *testing.T) {
	t.Run("Assess Returns Result Envelope", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))

		result := &models.AssessmentResult{
			ID:               "assessment-1",
			UserID:           "user-1",
			PrimaryDiagnosis: "Common Cold",
			Confidence:       1.0,
			Urgency:          "low",
		}
		assessmentUsecase.On("Assess", mock.Anything, mock.MatchedBy(func(r *requests.AssessSymptoms) bool {
			return r.UserID == "user-1" && len(r.Answers) == 2
		})).Return(result, nil).Once()

		rr, env := serve(router, http.MethodPost, "/api/symptoms/assess",
			`{"userId":"user-1","answers":{"primary_symptoms":["Cough","Runny nose"],"duration":"3-7 days"}}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, env.Success)
		assert.Equal(t, constvars.AssessSymptomsSuccessMessage, env.Message)

		var got models.AssessmentResult
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "assessment-1", got.ID)
		assert.Equal(t, "Common Cold", got.PrimaryDiagnosis)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		assessmentUsecase.AssertExpectations(t)
	})

	t.Run("Assess Rejects Malformed Body", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))

		rr, env := serve(router, http.MethodPost, "/api/symptoms/assess", `{"answers":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, env.Success)
		assessmentUsecase.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything)
	})

	t.Run("Assess Without Answers Is Reported By Usecase", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))

		assessmentUsecase.On("Assess", mock.Anything, mock.MatchedBy(func(r *requests.AssessSymptoms) bool {
			return r.Answers == nil
		})).Return(nil, exceptions.ErrAnswersRequired(nil)).Once()

		rr, env := serve(router, http.MethodPost, "/api/symptoms/assess", `{"userId":"user-1"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrClientAnswersRequired, env.Message)
	})

	t.Run("Assess Is Rate Limited", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(1, assessmentUsecase, new(MockUserUsecase))
		assessmentUsecase.On("Assess", mock.Anything, mock.Anything).Return(&models.AssessmentResult{ID: "a"}, nil).Once()

		first, _ := serve(router, http.MethodPost, "/api/symptoms/assess", `{"answers":{"severity":"Mild"}}`)
		second, _ := serve(router, http.MethodPost, "/api/symptoms/assess", `{"answers":{"severity":"Mild"}}`)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("Assess Aliases Share One Quota", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(1, assessmentUsecase, new(MockUserUsecase))
		assessmentUsecase.On("Assess", mock.Anything, mock.Anything).Return(&models.AssessmentResult{ID: "a"}, nil).Once()

		first, _ := serve(router, http.MethodPost, "/api/symptoms/assess", `{"answers":{"severity":"Mild"}}`)
		second, _ := serve(router, http.MethodPost, "/api/assessments/analyze", `{"answers":{"severity":"Mild"}}`)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assessmentUsecase.AssertNumberOfCalls(t, "Assess", 1)
	})

	t.Run("Get Assessment Not Found", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))
		assessmentUsecase.On("GetAssessment", mock.Anything, "missing").
			Return(nil, exceptions.ErrAssessmentNotFound(nil, "missing")).Once()

		rr, env := serve(router, http.MethodGet, "/api/symptoms/assessment/missing", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, constvars.ErrClientAssessmentNotFound, env.Message)
	})

	t.Run("Legacy Paths Reach The Same Handlers", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))
		assessmentUsecase.On("GetAssessment", mock.Anything, "assessment-1").
			Return(&models.AssessmentResult{ID: "assessment-1"}, nil).Once()
		assessmentUsecase.On("GetUserHistory", mock.Anything, "user-1").
			Return([]*models.Assessment{}, nil).Once()

		byID, _ := serve(router, http.MethodGet, "/api/assessments/assessment-1", "")
		history, _ := serve(router, http.MethodGet, "/api/assessments/history/user-1", "")

		assert.Equal(t, http.StatusOK, byID.Code)
		assert.Equal(t, http.StatusOK, history.Code)
		assessmentUsecase.AssertExpectations(t)
	})

	t.Run("History Returns Records", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))
		history := []*models.Assessment{
			{ID: "a2", UserID: "user-1", Diagnosis: "Migraine"},
			{ID: "a1", UserID: "user-1", Diagnosis: "Common Cold"},
		}
		assessmentUsecase.On("GetUserHistory", mock.Anything, "user-1").Return(history, nil).Once()

		rr, env := serve(router, http.MethodGet, "/api/symptoms/history/user-1", "")

		require.Equal(t, http.StatusOK, rr.Code)
		var got []models.Assessment
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "a2", got[0].ID)
	})

	t.Run("Usecase Deadline Maps To Gateway Timeout", func(t *testing.T) {
		assessmentUsecase := new(MockAssessmentUsecase)
		router := newTestRouter(10, assessmentUsecase, new(MockUserUsecase))
		assessmentUsecase.On("GetUserHistory", mock.Anything, "user-1").Return(nil, context.DeadlineExceeded).Once()

		rr, _ := serve(router, http.MethodGet, "/api/symptoms/history/user-1", "")

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("Create User", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		router := newTestRouter(10, new(MockAssessmentUsecase), userUsecase)
		userUsecase.On("CreateUser", mock.Anything, mock.MatchedBy(func(r *requests.CreateUser) bool {
			return r.Name == "Ana"
		})).Return(&models.User{ID: "user-1", Name: "Ana"}, nil).Once()

		rr, env := serve(router, http.MethodPost, "/api/users", `{"name":"Ana","email":"ana@example.com"}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, constvars.CreateUserSuccessMessage, env.Message)
	})

	t.Run("Create User Requires Name", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		router := newTestRouter(10, new(MockAssessmentUsecase), userUsecase)

		rr, _ := serve(router, http.MethodPost, "/api/users", `{"email":"ana@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		userUsecase.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Get User By Email", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		router := newTestRouter(10, new(MockAssessmentUsecase), userUsecase)
		userUsecase.On("GetUserByEmail", mock.Anything, "ana@example.com").
			Return(&models.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}, nil).Once()

		rr, _ := serve(router, http.MethodGet, "/api/users?email=ana@example.com", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		userUsecase.AssertExpectations(t)
	})

	t.Run("Get User By Email Requires Email", func(t *testing.T) {
		router := newTestRouter(10, new(MockAssessmentUsecase), new(MockUserUsecase))

		rr, _ := serve(router, http.MethodGet, "/api/users", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Update Missing User", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		router := newTestRouter(10, new(MockAssessmentUsecase), userUsecase)
		userUsecase.On("UpdateUser", mock.Anything, "missing", mock.Anything).
			Return(nil, exceptions.ErrUserNotFound(nil, "missing")).Once()

		rr, env := serve(router, http.MethodPut, "/api/users/missing", `{"name":"Ana"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, constvars.ErrClientUserNotFound, env.Message)
	})

	t.Run("Delete User", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		router := newTestRouter(10, new(MockAssessmentUsecase), userUsecase)
		userUsecase.On("DeleteUser", mock.Anything, "user-1").Return(nil).Once()
		userUsecase.On("GetUser", mock.Anything, "user-1").Return(nil, errors.New("store offline")).Once()

		deleted, _ := serve(router, http.MethodDelete, "/api/users/user-1", "")
		fetched, _ := serve(router, http.MethodGet, "/api/users/user-1", "")

		assert.Equal(t, http.StatusOK, deleted.Code)
		assert.Equal(t, http.StatusInternalServerError, fetched.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(10, new(MockAssessmentUsecase), new(MockUserUsecase))

	rr, env := serve(router, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var health struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, constvars.ResponseHealthy, health.Status)
	assert.False(t, health.Timestamp.IsZero())
}
