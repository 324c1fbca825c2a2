package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shelfmate/shelfmate/config"
	"github.com/shelfmate/shelfmate/internal/model"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.BackendHTTP
}

func NewService(log *zap.Logger, cfg config.Config) *Service { //nolint:gocritic
	return &Service{
		log:    log.Named("reservation"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.Backend,
	}
}

const (
	XUserName  = "X-User-Name"
	XRequestID = "X-Request-Id"
)

func (s *Service) url(path string) string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), path)
}

func (s *Service) List(ctx context.Context, username string) ([]model.Reservation, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url("/api/v1/reservations"), http.NoBody)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	s.setHeaders(req, username)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, decodeError(resp)
	}
	var rsv []model.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&rsv); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return rsv, resp.StatusCode, nil
}

type createRequest struct {
	BookID int `json:"bookId"`
}

func (s *Service) Reserve(ctx context.Context, username string, bookID int) (model.Reservation, int, error) {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(createRequest{BookID: bookID}); err != nil {
		return model.Reservation{}, http.StatusBadRequest, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url("/api/v1/reservations"), b)
	if err != nil {
		return model.Reservation{}, http.StatusBadRequest, err
	}
	s.setHeaders(req, username)
	return s.do(req)
}

func (s *Service) Take(ctx context.Context, username string, reservationID int) (model.Reservation, int, error) {
	return s.post(ctx, username, fmt.Sprintf("/api/v1/reservations/%d/take", reservationID))
}

func (s *Service) Return(ctx context.Context, username string, reservationID int) (model.Reservation, int, error) {
	return s.post(ctx, username, fmt.Sprintf("/api/v1/reservations/%d/return", reservationID))
}

func (s *Service) Cancel(ctx context.Context, username string, reservationID int) (model.Reservation, int, error) {
	return s.post(ctx, username, fmt.Sprintf("/api/v1/reservations/%d/cancel", reservationID))
}

func (s *Service) post(ctx context.Context, username, path string) (model.Reservation, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url(path), http.NoBody)
	if err != nil {
		return model.Reservation{}, http.StatusBadRequest, err
	}
	s.setHeaders(req, username)
	return s.do(req)
}

func (s *Service) do(req *http.Request) (model.Reservation, int, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return model.Reservation{}, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return model.Reservation{}, resp.StatusCode, decodeError(resp)
	}
	var rsv model.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&rsv); err != nil {
		return model.Reservation{}, http.StatusBadRequest, err
	}
	return rsv, resp.StatusCode, nil
}

func (s *Service) setHeaders(req *http.Request, username string) {
	req.Header.Set(XUserName, username)
	req.Header.Set(XRequestID, uuid.NewString())
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
}

func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return errors.Errorf("backend status %d", resp.StatusCode)
	}
	return errors.New(body.Message)
}
