package repository

import (
	"time"

	"github.com/pageturner/pageturner-service/internal/model"
)

// Fixtures returns the seed dataset the store starts from. Collections are
// process-lifetime state; a restart resets them to exactly this.
func Fixtures() Data {
	users := []model.User{
		{
			ID:        "1",
			Name:      "Jane Austen",
			Email:     "jane@example.com",
			Avatar:    "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=100&h=100&auto=format&fit=crop",
			Bio:       "Avid reader of classic literature and sci-fi novels.",
			CreatedAt: time.Date(2023, time.January, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Ernest Hemingway",
			Email:     "ernest@example.com",
			Avatar:    "https://images.unsplash.com/photo-1633332755192-727a05c4013d?q=80&w=100&h=100&auto=format&fit=crop",
			Bio:       "Book collector and coffee enthusiast.",
			CreatedAt: time.Date(2023, time.February, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Name:      "Virginia Woolf",
			Email:     "virginia@example.com",
			Avatar:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=100&h=100&auto=format&fit=crop",
			Bio:       "Fantasy and mystery lover. Always looking for new worlds to explore.",
			CreatedAt: time.Date(2023, time.March, 5, 14, 45, 0, 0, time.UTC),
		},
	}

	books := []model.Book{
		{
			ID:            "1",
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			CoverImage:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=300&auto=format&fit=crop",
			Description:   "Pride and Prejudice follows the turbulent relationship between Elizabeth Bennet, the daughter of a country gentleman, and Fitzwilliam Darcy, a rich aristocratic landowner. They must overcome the titular sins of pride and prejudice in order to fall in love and marry.",
			Genres:        []string{"Classic", "Romance"},
			PublishedDate: "1813-01-28",
			AvgRating:     4.7,
			PageCount:     279,
		},
		{
			ID:            "2",
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			CoverImage:    "https://images.unsplash.com/photo-1541963463532-d68292c34b19?q=80&w=300&auto=format&fit=crop",
			Description:   "To Kill a Mockingbird is a novel by Harper Lee published in 1960. It was immediately successful, winning the Pulitzer Prize, and has become a classic of modern American literature.",
			Genres:        []string{"Classic", "Historical Fiction"},
			PublishedDate: "1960-07-11",
			AvgRating:     4.8,
			PageCount:     324,
		},
		{
			ID:            "3",
			Title:         "1984",
			Author:        "George Orwell",
			CoverImage:    "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?q=80&w=300&auto=format&fit=crop",
			Description:   "1984 is a dystopian novel by George Orwell published in 1949. The novel is set in Airstrip One, a province of the superstate Oceania in a world of perpetual war, omnipresent government surveillance, and public manipulation.",
			Genres:        []string{"Dystopian", "Political Fiction"},
			PublishedDate: "1949-06-08",
			AvgRating:     4.6,
			PageCount:     328,
		},
		{
			ID:            "4",
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			CoverImage:    "https://images.unsplash.com/photo-1518744386442-2d48ac47a7eb?q=80&w=300&auto=format&fit=crop",
			Description:   "The Great Gatsby is a 1925 novel by American writer F. Scott Fitzgerald. Set in the Jazz Age on Long Island, the novel depicts narrator Nick Carraway's interactions with mysterious millionaire Jay Gatsby and Gatsby's obsession to reunite with his former lover, Daisy Buchanan.",
			Genres:        []string{"Classic", "Literary Fiction"},
			PublishedDate: "1925-04-10",
			AvgRating:     4.5,
			PageCount:     180,
		},
		{
			ID:            "5",
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			CoverImage:    "https://images.unsplash.com/photo-1629992101753-56d196c8aabb?q=80&w=300&auto=format&fit=crop",
			Description:   "The Hobbit, or There and Back Again is a children's fantasy novel by English author J. R. R. Tolkien. It was published on 21 September 1937 to wide critical acclaim, being nominated for the Carnegie Medal and awarded a prize from the New York Herald Tribune for best juvenile fiction.",
			Genres:        []string{"Fantasy", "Adventure"},
			PublishedDate: "1937-09-21",
			AvgRating:     4.9,
			PageCount:     310,
		},
		{
			ID:            "6",
			Title:         "Harry Potter and the Philosopher's Stone",
			Author:        "J.K. Rowling",
			CoverImage:    "https://images.unsplash.com/photo-1626618012641-bfbca5a31239?q=80&w=300&auto=format&fit=crop",
			Description:   "Harry Potter and the Philosopher's Stone is a fantasy novel written by British author J. K. Rowling. The first novel in the Harry Potter series and Rowling's debut novel, it follows Harry Potter, a young wizard who discovers his magical heritage on his eleventh birthday.",
			Genres:        []string{"Fantasy", "Young Adult"},
			PublishedDate: "1997-06-26",
			AvgRating:     4.8,
			PageCount:     223,
		},
	}

	shelves := []model.Shelf{
		{ID: "1", UserID: "1", Type: model.ShelfTypeRead, Books: []model.Book{books[0], books[2]}},
		{ID: "2", UserID: "1", Type: model.ShelfTypeReading, Books: []model.Book{books[4]}},
		{ID: "3", UserID: "1", Type: model.ShelfTypeWantToRead, Books: []model.Book{books[3], books[5]}},
	}

	reviews := []model.Review{
		{
			ID: "1", BookID: "1", UserID: "1", User: users[0], Rating: 5,
			Content:   "A timeless classic that never gets old. The character development is superb!",
			CreatedAt: time.Date(2023, time.April, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID: "2", BookID: "1", UserID: "2", User: users[1], Rating: 4,
			Content:   "I enjoyed the subtle humor and social commentary throughout the book.",
			CreatedAt: time.Date(2023, time.April, 18, 14, 20, 0, 0, time.UTC),
		},
		{
			ID: "3", BookID: "2", UserID: "3", User: users[2], Rating: 5,
			Content:   "A powerful story that addresses important themes of racial injustice and moral growth.",
			CreatedAt: time.Date(2023, time.April, 20, 9, 15, 0, 0, time.UTC),
		},
		{
			ID: "4", BookID: "3", UserID: "1", User: users[0], Rating: 4,
			Content:   "A chilling portrayal of totalitarianism that remains relevant today.",
			CreatedAt: time.Date(2023, time.April, 22, 16, 40, 0, 0, time.UTC),
		},
	}

	clubs := []model.BookClub{
		{
			ID:          "1",
			Name:        "Classic Literature Lovers",
			Description: "A club dedicated to reading and discussing the greatest works of classic literature.",
			CoverImage:  "https://images.unsplash.com/photo-1526243741027-444d633d7365?q=80&w=300&auto=format&fit=crop",
			CurrentBook: &books[0],
			CreatedAt:   time.Date(2023, time.January, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Science Fiction Explorers",
			Description: "Journey through space, time, and alternate realities with fellow sci-fi enthusiasts.",
			CoverImage:  "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?q=80&w=300&auto=format&fit=crop",
			CurrentBook: &books[5],
			CreatedAt:   time.Date(2023, time.February, 5, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Mystery & Thriller Fanatics",
			Description: "For those who enjoy solving puzzles and experiencing suspense in their reading.",
			CoverImage:  "https://images.unsplash.com/photo-1546395224-7db7ded27571?q=80&w=300&auto=format&fit=crop",
			CreatedAt:   time.Date(2023, time.March, 15, 13, 45, 0, 0, time.UTC),
		},
	}

	members := []model.ClubMember{
		{ID: "1", ClubID: "1", UserID: "1"},
		{ID: "2", ClubID: "1", UserID: "2"},
		{ID: "3", ClubID: "2", UserID: "1"},
	}

	messages := []model.Message{
		{
			ID: "1", ClubID: "1", UserID: "1", User: users[0],
			Content:   "What did everyone think about Elizabeth's character development throughout the novel?",
			CreatedAt: time.Date(2023, time.May, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", ClubID: "1", UserID: "2", User: users[1],
			Content:   "I was impressed by how she overcame her own prejudices by the end of the story.",
			CreatedAt: time.Date(2023, time.May, 10, 9, 15, 0, 0, time.UTC),
		},
		{
			ID: "3", ClubID: "1", UserID: "3", User: users[2],
			Content:   "The dialogue between Elizabeth and Mr. Darcy was my favorite part of the book!",
			CreatedAt: time.Date(2023, time.May, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	return Data{
		Users:    users,
		Books:    books,
		Shelves:  shelves,
		Reviews:  reviews,
		Clubs:    clubs,
		Members:  members,
		Messages: messages,
	}
}
