package model

import (
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	CoverImage    string   `json:"coverImage"`
	Description   string   `json:"description"`
	Genres        []string `json:"genres"`
	PublishedDate string   `json:"publishedDate"`
	AvgRating     float64  `json:"avgRating"`
	PageCount     int      `json:"pageCount"`
}

type ShelfType string

const (
	ShelfTypeRead       ShelfType = "read"
	ShelfTypeReading    ShelfType = "reading"
	ShelfTypeWantToRead ShelfType = "want-to-read"
)

// Shelf books keep insertion order; one shelf exists per (user, type).
type Shelf struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Type   ShelfType `json:"type"`
	Books  []Book    `json:"books"`
}

// Review.User is a snapshot of the author taken at creation time.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookClub.MemberCount is derived from membership rows at read time.
type BookClub struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	MemberCount int       `json:"memberCount"`
	CurrentBook *Book     `json:"currentBook,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ClubMember struct {
	ID     string `json:"id"`
	ClubID string `json:"clubId"`
	UserID string `json:"userId"`
}

// Message.User is a snapshot of the author taken at creation time.
type Message struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"clubId"`
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required"`
}

type AddBookToShelfRequest struct {
	BookID    string    `json:"bookId" validate:"required"`
	ShelfType ShelfType `json:"shelfType" validate:"required,oneof=read reading want-to-read"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	User        User   `json:"user"`
}
