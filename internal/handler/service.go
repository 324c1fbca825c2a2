package handler

import (
	"context"

	"github.com/shelfmate/shelfmate/internal/model"
	"github.com/shelfmate/shelfmate/internal/service/shelf"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ ShelfService = (*shelf.Service)(nil)

type ShelfService interface {
	MyBooks(ctx context.Context, username string) ([]model.MyBook, error)
	Books(ctx context.Context) ([]model.Book, error)
	Unread(ctx context.Context, username string) (int, error)
	Reserve(ctx context.Context, username string, bookID int) (model.Reservation, error)
	Take(ctx context.Context, username string, reservationID int) (model.Reservation, error)
	Return(ctx context.Context, username string, reservationID int) (model.Reservation, error)
	Cancel(ctx context.Context, username string, reservationID int) (model.Reservation, error)
}
