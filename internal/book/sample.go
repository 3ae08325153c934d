package book

// SampleBooks returns the built-in catalog used when no backend is
// reachable and by cmd/seed. The values are frozen: tests and the
// degraded-mode UI both rely on them.
func SampleBooks() []Book {
	return []Book{
		{
			BookID:         1,
			Title:          "Clean Code",
			Author:         "Robert C. Martin",
			Publisher:      "Prentice Hall",
			ISBN:           "978-0132350884",
			Classification: ClassNonFiction,
			Category:       "Software",
			PageCount:      464,
			Price:          39.99,
		},
		{
			BookID:         2,
			Title:          "Design Patterns",
			Author:         "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides",
			Publisher:      "Addison-Wesley",
			ISBN:           "978-0201633610",
			Classification: ClassNonFiction,
			Category:       "Software",
			PageCount:      395,
			Price:          49.99,
		},
		{
			BookID:         3,
			Title:          "The Pragmatic Programmer",
			Author:         "Andrew Hunt, David Thomas",
			Publisher:      "Addison-Wesley",
			ISBN:           "978-0201616224",
			Classification: ClassNonFiction,
			Category:       "Software",
			PageCount:      352,
			Price:          39.95,
		},
		{
			BookID:         4,
			Title:          "Steve Jobs",
			Author:         "Walter Isaacson",
			Publisher:      "Simon & Schuster",
			ISBN:           "978-1451648539",
			Classification: ClassNonFiction,
			Category:       "Biography",
			PageCount:      656,
			Price:          35.00,
		},
		{
			BookID:         5,
			Title:          "Becoming",
			Author:         "Michelle Obama",
			Publisher:      "Crown",
			ISBN:           "978-1524763138",
			Classification: ClassNonFiction,
			Category:       "Biography",
			PageCount:      448,
			Price:          32.50,
		},
		{
			BookID:         6,
			Title:          "Atomic Habits",
			Author:         "James Clear",
			Publisher:      "Penguin Random House",
			ISBN:           "978-0735211292",
			Classification: ClassNonFiction,
			Category:       "Self-Help",
			PageCount:      320,
			Price:          27.00,
		},
		{
			BookID:         7,
			Title:          "The 7 Habits of Highly Effective People",
			Author:         "Stephen R. Covey",
			Publisher:      "Free Press",
			ISBN:           "978-0743269513",
			Classification: ClassNonFiction,
			Category:       "Self-Help",
			PageCount:      432,
			Price:          30.00,
		},
		{
			BookID:         8,
			Title:          "To Kill a Mockingbird",
			Author:         "Harper Lee",
			Publisher:      "Harper Perennial",
			ISBN:           "978-0060935467",
			Classification: ClassFiction,
			Category:       "Classic",
			PageCount:      336,
			Price:          15.99,
		},
		{
			BookID:         9,
			Title:          "Pride and Prejudice",
			Author:         "Jane Austen",
			Publisher:      "Penguin Classics",
			ISBN:           "978-0141439518",
			Classification: ClassFiction,
			Category:       "Classic",
			PageCount:      480,
			Price:          9.99,
		},
		{
			BookID:         10,
			Title:          "The Great Gatsby",
			Author:         "F. Scott Fitzgerald",
			Publisher:      "Scribner",
			ISBN:           "978-0743273565",
			Classification: ClassFiction,
			Category:       "Classic",
			PageCount:      180,
			Price:          17.00,
		},
	}
}
