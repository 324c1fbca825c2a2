package notification

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
		log:    log.Named("notification"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.Backend,
	}
}

// UnreadCount reads the authoritative unread notification count.
func (s *Service) UnreadCount(ctx context.Context, username string) (int, int, error) {
	url := fmt.Sprintf("http://%s/api/v1/notifications/unread", net.JoinHostPort(s.cfg.Host, s.cfg.Port))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, http.StatusBadRequest, err
	}
	req.Header.Set("X-User-Name", username)
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return 0, resp.StatusCode, errors.Errorf("backend status %d", resp.StatusCode)
	}
	var count model.UnreadCount
	if err := json.NewDecoder(resp.Body).Decode(&count); err != nil {
		return 0, http.StatusBadRequest, err
	}
	return count.Count, resp.StatusCode, nil
}
