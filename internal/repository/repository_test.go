package repository_test

import (
	"context"
	"testing"

	"github.com/pageturner/pageturner-service/config"
	"github.com/pageturner/pageturner-service/internal/errs"
	"github.com/pageturner/pageturner-service/internal/model"
	"github.com/pageturner/pageturner-service/internal/repository"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	return repository.New(config.Store{}, repository.Fixtures(), zap.NewNop())
}

func TestRepository_GetBook(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	book, err := repo.GetBook(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, "3", book.ID)
	require.Equal(t, "1984", book.Title)

	_, err = repo.GetBook(ctx, "no-such-book")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRepository_ListBooks(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	books, err := repo.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 6)
	require.Equal(t, "Pride and Prejudice", books[0].Title)

	// returned slice is a snapshot, not the store's backing array
	books[0].Title = "mutated"
	again, err := repo.ListBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Pride and Prejudice", again[0].Title)
}

func TestRepository_AddBookToShelf_Idempotent(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	// reading shelf starts with The Hobbit (id 5)
	shelf, err := repo.AddBookToShelf(ctx, "1", "2", model.ShelfTypeReading)
	require.NoError(t, err)
	require.Len(t, shelf.Books, 2)
	require.Equal(t, "5", shelf.Books[0].ID)
	require.Equal(t, "2", shelf.Books[1].ID)

	shelf, err = repo.AddBookToShelf(ctx, "1", "2", model.ShelfTypeReading)
	require.NoError(t, err)
	require.Len(t, shelf.Books, 2)
	require.Equal(t, []string{"5", "2"}, bookIDs(shelf.Books))
}

func TestRepository_AddBookToShelf_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	// user 2 owns no shelves
	_, err := repo.AddBookToShelf(ctx, "2", "1", model.ShelfTypeReading)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = repo.AddBookToShelf(ctx, "1", "no-such-book", model.ShelfTypeReading)
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRepository_ListShelves(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	shelves, err := repo.ListShelves(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, shelves, 3)

	shelves, err = repo.ListShelves(context.Background(), "3")
	require.NoError(t, err)
	require.Empty(t, shelves)
}

func TestRepository_JoinBookClub_Idempotent(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	club, err := repo.GetBookClub(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 2, club.MemberCount)

	club, err = repo.JoinBookClub(ctx, "1", "3")
	require.NoError(t, err)
	require.Equal(t, 3, club.MemberCount)

	club, err = repo.JoinBookClub(ctx, "1", "3")
	require.NoError(t, err)
	require.Equal(t, 3, club.MemberCount)

	members, err := repo.ListClubMembers(ctx, "1")
	require.NoError(t, err)
	require.Len(t, members, 3)
}

func TestRepository_JoinBookClub_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.JoinBookClub(ctx, "no-such-club", "1")
	require.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = repo.JoinBookClub(ctx, "1", "no-such-user")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRepository_MemberCountDerived(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	clubs, err := repo.ListBookClubs(context.Background())
	require.NoError(t, err)
	require.Len(t, clubs, 3)
	require.Equal(t, 2, clubs[0].MemberCount)
	require.Equal(t, 1, clubs[1].MemberCount)
	require.Equal(t, 0, clubs[2].MemberCount)
}

func TestRepository_CreateReview(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	review, err := repo.CreateReview(ctx, "2", "2", 3, "Slow start, strong finish.")
	require.NoError(t, err)
	require.Equal(t, "5", review.ID)
	require.Equal(t, "2", review.BookID)
	require.Equal(t, 3, review.Rating)
	require.Equal(t, "Ernest Hemingway", review.User.Name)
	require.False(t, review.CreatedAt.IsZero())

	reviews, err := repo.ListReviews(ctx, "2")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, review.Content, reviews[1].Content)
	require.Equal(t, review.Rating, reviews[1].Rating)
}

func TestRepository_CreateReview_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.CreateReview(ctx, "1", "no-such-user", 5, "hi")
	require.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = repo.CreateReview(ctx, "no-such-book", "1", 5, "hi")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRepository_SendMessage(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	msg, err := repo.SendMessage(ctx, "2", "1", "Starting the next chapter tonight.")
	require.NoError(t, err)
	require.Equal(t, "4", msg.ID)
	require.Equal(t, "Jane Austen", msg.User.Name)

	messages, err := repo.ListClubMessages(ctx, "2")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, msg.Content, messages[0].Content)

	_, err = repo.SendMessage(ctx, "no-such-club", "1", "hello?")
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRepository_Users(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	user, err := repo.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	require.True(t, errors.Is(err, errs.ErrNotFound))

	created, err := repo.CreateUser(ctx, "Leo Tolstoy", "leo@example.com")
	require.NoError(t, err)
	require.Equal(t, "4", created.ID)
	require.NotEmpty(t, created.Avatar)

	found, err := repo.GetUserByEmail(ctx, "leo@example.com")
	require.NoError(t, err)
	require.Equal(t, created, found)

	first, err := repo.FirstUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", first.ID)
}

func bookIDs(books []model.Book) []string {
	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}
