package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/controllers"
	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/entities"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type fakeJobService struct {
	job *entities.Job
	err error
}

func (s *fakeJobService) GetJobs(_ context.Context, _ map[string]string) ([]entities.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []entities.Job{*s.job}, nil
}

func (s *fakeJobService) FindJob(_ context.Context, _ uint64) (*entities.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.job, nil
}

func (s *fakeJobService) CreateJob(_ context.Context, payload dto.CreateJobDTO) (*entities.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	job := &entities.Job{
		ID:        1,
		Quantity:  *payload.Quantity,
		Unit:      payload.Unit,
		UnitPrice: *payload.UnitPrice,
	}
	job.TotalPrice = null.Float64From(job.Quantity * job.UnitPrice)
	return job, nil
}

func (s *fakeJobService) UpdateJob(_ context.Context, _ uint64, _ dto.UpdateJobDTO) (*entities.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.job, nil
}

func (s *fakeJobService) DeleteJob(_ context.Context, _ uint64) error {
	return s.err
}

func newJobTestEcho(svc *fakeJobService) *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	ctrl := controllers.NewJobController(svc, zap.NewNop())
	e.GET("/isler", ctrl.GetJobs)
	e.GET("/isler/:id", ctrl.FindJob)
	e.POST("/isler", ctrl.CreateJob)
	e.PUT("/isler/:id", ctrl.UpdateJob)
	e.DELETE("/isler/:id", ctrl.DeleteJob)
	return e
}

func TestCreateJobEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored job with derived total", func(t *testing.T) {
		t.Parallel()
		e := newJobTestEcho(&fakeJobService{})

		body := `{"date":"2024-05-01","quantity":12,"unit":"m2","unit_price":150}`
		req := httptest.NewRequest(http.MethodPost, "/isler", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var job map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
		assert.InEpsilon(t, 1800.0, job["total_price"].(float64), 1e-9)
	})

	t.Run("missing quantity answers 400", func(t *testing.T) {
		t.Parallel()
		e := newJobTestEcho(&fakeJobService{})

		body := `{"date":"2024-05-01","unit":"m2","unit_price":150}`
		req := httptest.NewRequest(http.MethodPost, "/isler", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFindJobEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		t.Parallel()
		e := newJobTestEcho(&fakeJobService{})

		req := httptest.NewRequest(http.MethodGet, "/isler/abc", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing job answers 404 with message envelope", func(t *testing.T) {
		t.Parallel()
		e := newJobTestEcho(&fakeJobService{err: apperrors.ErrNotFound})

		req := httptest.NewRequest(http.MethodGet, "/isler/404", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp, "message")
	})
}

func TestDeleteJobEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("answers 204 with empty body", func(t *testing.T) {
		t.Parallel()
		e := newJobTestEcho(&fakeJobService{})

		req := httptest.NewRequest(http.MethodDelete, "/isler/3", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing job answers 404, never 204", func(t *testing.T) {
		t.Parallel()
		e := newJobTestEcho(&fakeJobService{err: apperrors.ErrNotFound})

		req := httptest.NewRequest(http.MethodDelete, "/isler/404", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
