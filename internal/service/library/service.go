package library

import (
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
		log:    log.Named("library"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.Backend,
	}
}

func (s *Service) url(path string) string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), path)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url("/api/v1/books"), http.NoBody)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	s.setHeaders(req)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, errors.Errorf("backend status %d", resp.StatusCode)
	}
	var books []model.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return books, resp.StatusCode, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(fmt.Sprintf("/api/v1/books/%d", id)), http.NoBody)
	if err != nil {
		return model.Book{}, http.StatusBadRequest, err
	}
	s.setHeaders(req)
	resp, err := s.client.Do(req)
	if err != nil {
		return model.Book{}, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Book{}, resp.StatusCode, errors.Errorf("book %d not found", id)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return model.Book{}, resp.StatusCode, errors.Errorf("backend status %d", resp.StatusCode)
	}
	var book model.Book
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return model.Book{}, http.StatusBadRequest, err
	}
	return book, resp.StatusCode, nil
}

func (s *Service) setHeaders(req *http.Request) {
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
}
