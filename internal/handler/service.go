package handler

import (
	"context"

	"github.com/pageturner/pageturner-service/internal/model"
	"github.com/pageturner/pageturner-service/internal/service"
	"github.com/pageturner/pageturner-service/internal/session"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)
	CreateReview(ctx context.Context, bookID, userID string, rating int, content string) (model.Review, error)
	ListShelves(ctx context.Context, userID string) ([]model.Shelf, error)
	AddBookToShelf(ctx context.Context, userID, bookID string, shelfType model.ShelfType) (model.Shelf, error)
	ListBookClubs(ctx context.Context) ([]model.BookClub, error)
	GetBookClub(ctx context.Context, id string) (model.BookClub, error)
	ListClubMembers(ctx context.Context, clubID string) ([]model.ClubMember, error)
	JoinBookClub(ctx context.Context, clubID, userID string) (model.BookClub, error)
	ListClubMessages(ctx context.Context, clubID string) ([]model.Message, error)
	SendMessage(ctx context.Context, clubID, userID, content string) (model.Message, error)
}

type SessionService interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, name, email, password string) (model.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (model.User, error)
}

var _ CatalogService = (*service.Service)(nil)
var _ SessionService = (*session.Manager)(nil)
