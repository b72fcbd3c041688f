package repository

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/pageturner/pageturner-service/config"
	"github.com/pageturner/pageturner-service/internal/errs"
	"github.com/pageturner/pageturner-service/internal/model"
	"go.uber.org/zap"
)

type Repository interface {
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

	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, name, email string) (model.User, error)
	FirstUser(ctx context.Context) (model.User, error)
}

// Data is the fixture set the store is seeded with.
type Data struct {
	Users    []model.User
	Books    []model.Book
	Shelves  []model.Shelf
	Reviews  []model.Review
	Clubs    []model.BookClub
	Members  []model.ClubMember
	Messages []model.Message
}

type repository struct {
	mu       sync.RWMutex
	users    []model.User
	books    []model.Book
	shelves  []model.Shelf
	reviews  []model.Review
	clubs    []model.BookClub
	members  []model.ClubMember
	messages []model.Message

	cfg config.Store
	log *zap.Logger
	now func() time.Time
}

func New(cfg config.Store, data Data, log *zap.Logger) *repository {
	return &repository{
		users:    data.Users,
		books:    data.Books,
		shelves:  data.Shelves,
		reviews:  data.Reviews,
		clubs:    data.Clubs,
		members:  data.Members,
		messages: data.Messages,
		cfg:      cfg,
		log:      log.Named("repo"),
		now:      time.Now,
	}
}

// simulateLatency mimics the upstream's network delay. A started operation
// always runs to completion, so the delay does not observe ctx cancellation.
func (r *repository) simulateLatency() {
	if r.cfg.LatencyMax <= 0 {
		return
	}
	d := r.cfg.LatencyMin
	if jitter := r.cfg.LatencyMax - r.cfg.LatencyMin; jitter > 0 {
		d += time.Duration(rand.Int63n(int64(jitter)))
	}
	time.Sleep(d)
}

func (r *repository) ListBooks(_ context.Context) ([]model.Book, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, len(r.books))
	copy(books, r.books)
	return books, nil
}

func (r *repository) GetBook(_ context.Context, id string) (model.Book, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Book{}, errs.ErrNotFound
}

func (r *repository) ListReviews(_ context.Context, bookID string) ([]model.Review, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []model.Review
	for _, rv := range r.reviews {
		if rv.BookID == bookID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

func (r *repository) CreateReview(_ context.Context, bookID, userID string, rating int, content string) (model.Review, error) {
	r.simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findBook(bookID); !ok {
		return model.Review{}, errs.ErrNotFound
	}
	user, ok := r.findUser(userID)
	if !ok {
		return model.Review{}, errs.ErrNotFound
	}

	review := model.Review{
		ID:        strconv.Itoa(len(r.reviews) + 1),
		BookID:    bookID,
		UserID:    userID,
		User:      user,
		Rating:    rating,
		Content:   content,
		CreatedAt: r.now().UTC(),
	}
	r.reviews = append(r.reviews, review)
	r.log.Debug("review created", zap.String("id", review.ID), zap.String("bookId", bookID))
	return review, nil
}

func (r *repository) ListShelves(_ context.Context, userID string) ([]model.Shelf, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shelves []model.Shelf
	for _, s := range r.shelves {
		if s.UserID == userID {
			shelves = append(shelves, copyShelf(s))
		}
	}
	return shelves, nil
}

func (r *repository) AddBookToShelf(_ context.Context, userID, bookID string, shelfType model.ShelfType) (model.Shelf, error) {
	r.simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()

	var shelf *model.Shelf
	for i := range r.shelves {
		if r.shelves[i].UserID == userID && r.shelves[i].Type == shelfType {
			shelf = &r.shelves[i]
			break
		}
	}
	if shelf == nil {
		return model.Shelf{}, errs.ErrNotFound
	}
	book, ok := r.findBook(bookID)
	if !ok {
		return model.Shelf{}, errs.ErrNotFound
	}

	// idempotent per book id, insertion order preserved
	exists := false
	for _, b := range shelf.Books {
		if b.ID == bookID {
			exists = true
			break
		}
	}
	if !exists {
		shelf.Books = append(shelf.Books, book)
	}
	return copyShelf(*shelf), nil
}

func (r *repository) ListBookClubs(_ context.Context) ([]model.BookClub, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	clubs := make([]model.BookClub, 0, len(r.clubs))
	for _, c := range r.clubs {
		clubs = append(clubs, r.clubWithCount(c))
	}
	return clubs, nil
}

func (r *repository) GetBookClub(_ context.Context, id string) (model.BookClub, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clubs {
		if c.ID == id {
			return r.clubWithCount(c), nil
		}
	}
	return model.BookClub{}, errs.ErrNotFound
}

func (r *repository) ListClubMembers(_ context.Context, clubID string) ([]model.ClubMember, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []model.ClubMember
	for _, m := range r.members {
		if m.ClubID == clubID {
			members = append(members, m)
		}
	}
	return members, nil
}

func (r *repository) JoinBookClub(_ context.Context, clubID, userID string) (model.BookClub, error) {
	r.simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()

	var club *model.BookClub
	for i := range r.clubs {
		if r.clubs[i].ID == clubID {
			club = &r.clubs[i]
			break
		}
	}
	if club == nil {
		return model.BookClub{}, errs.ErrNotFound
	}
	if _, ok := r.findUser(userID); !ok {
		return model.BookClub{}, errs.ErrNotFound
	}

	isMember := false
	for _, m := range r.members {
		if m.ClubID == clubID && m.UserID == userID {
			isMember = true
			break
		}
	}
	if !isMember {
		r.members = append(r.members, model.ClubMember{
			ID:     strconv.Itoa(len(r.members) + 1),
			ClubID: clubID,
			UserID: userID,
		})
	}
	return r.clubWithCount(*club), nil
}

func (r *repository) ListClubMessages(_ context.Context, clubID string) ([]model.Message, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var messages []model.Message
	for _, m := range r.messages {
		if m.ClubID == clubID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (r *repository) SendMessage(_ context.Context, clubID, userID, content string) (model.Message, error) {
	r.simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()

	clubExists := false
	for _, c := range r.clubs {
		if c.ID == clubID {
			clubExists = true
			break
		}
	}
	if !clubExists {
		return model.Message{}, errs.ErrNotFound
	}
	user, ok := r.findUser(userID)
	if !ok {
		return model.Message{}, errs.ErrNotFound
	}

	msg := model.Message{
		ID:        strconv.Itoa(len(r.messages) + 1),
		ClubID:    clubID,
		UserID:    userID,
		User:      user,
		Content:   content,
		CreatedAt: r.now().UTC(),
	}
	r.messages = append(r.messages, msg)
	r.log.Debug("message sent", zap.String("id", msg.ID), zap.String("clubId", clubID))
	return msg, nil
}

func (r *repository) GetUser(_ context.Context, id string) (model.User, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.findUser(id)
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return user, nil
}

func (r *repository) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, errs.ErrNotFound
}

const defaultAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=100&h=100&auto=format&fit=crop"

func (r *repository) CreateUser(_ context.Context, name, email string) (model.User, error) {
	r.simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()

	user := model.User{
		ID:        strconv.Itoa(len(r.users) + 1),
		Name:      name,
		Email:     email,
		Avatar:    defaultAvatar,
		CreatedAt: r.now().UTC(),
	}
	r.users = append(r.users, user)
	r.log.Debug("user created", zap.String("id", user.ID))
	return user, nil
}

func (r *repository) FirstUser(_ context.Context) (model.User, error) {
	r.simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.users) == 0 {
		return model.User{}, errs.ErrNotFound
	}
	return r.users[0], nil
}

// callers hold r.mu
func (r *repository) findUser(id string) (model.User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// callers hold r.mu
func (r *repository) findBook(id string) (model.Book, bool) {
	for _, b := range r.books {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}

// callers hold r.mu
func (r *repository) clubWithCount(c model.BookClub) model.BookClub {
	count := 0
	for _, m := range r.members {
		if m.ClubID == c.ID {
			count++
		}
	}
	c.MemberCount = count
	return c
}

func copyShelf(s model.Shelf) model.Shelf {
	books := make([]model.Book, len(s.Books))
	copy(books, s.Books)
	s.Books = books
	return s
}
