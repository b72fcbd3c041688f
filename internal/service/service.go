package service

import (
	"context"

	"github.com/pageturner/pageturner-service/internal/model"
	catalogRepo "github.com/pageturner/pageturner-service/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo catalogRepo.Repository
}

func NewService(repo catalogRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	return s.repo.ListReviews(ctx, bookID)
}

func (s *Service) CreateReview(ctx context.Context, bookID, userID string, rating int, content string) (model.Review, error) {
	return s.repo.CreateReview(ctx, bookID, userID, rating, content)
}

func (s *Service) ListShelves(ctx context.Context, userID string) ([]model.Shelf, error) {
	return s.repo.ListShelves(ctx, userID)
}

func (s *Service) AddBookToShelf(ctx context.Context, userID, bookID string, shelfType model.ShelfType) (model.Shelf, error) {
	return s.repo.AddBookToShelf(ctx, userID, bookID, shelfType)
}

func (s *Service) ListBookClubs(ctx context.Context) ([]model.BookClub, error) {
	return s.repo.ListBookClubs(ctx)
}

func (s *Service) GetBookClub(ctx context.Context, id string) (model.BookClub, error) {
	return s.repo.GetBookClub(ctx, id)
}

func (s *Service) ListClubMembers(ctx context.Context, clubID string) ([]model.ClubMember, error) {
	return s.repo.ListClubMembers(ctx, clubID)
}

func (s *Service) JoinBookClub(ctx context.Context, clubID, userID string) (model.BookClub, error) {
	return s.repo.JoinBookClub(ctx, clubID, userID)
}

func (s *Service) ListClubMessages(ctx context.Context, clubID string) ([]model.Message, error) {
	return s.repo.ListClubMessages(ctx, clubID)
}

func (s *Service) SendMessage(ctx context.Context, clubID, userID, content string) (model.Message, error) {
	return s.repo.SendMessage(ctx, clubID, userID, content)
}
