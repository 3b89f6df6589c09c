package domain

import "time"

// Review is a customer review of a vendor's product. A vendor may post
// one public reply.
type Review struct {
	ID        string
	VendorID  string
	ProductID string
	OrderID   string
	Customer  string
	Rating    int
	Title     string
	Body      string
	Reply     string
	RepliedAt *time.Time
	CreatedAt time.Time
}

// HasReply reports whether the vendor already replied.
func (r *Review) HasReply() bool {
	return r.Reply != ""
}

// ValidateRating bounds ratings to 1..5.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// Question is a pre-sale customer question on a product.
type Question struct {
	ID         string
	VendorID   string
	ProductID  string
	Customer   string
	Body       string
	Answer     string
	AnsweredAt *time.Time
	CreatedAt  time.Time
}

// IsAnswered reports whether the vendor answered the question.
func (q *Question) IsAnswered() bool {
	return q.Answer != ""
}
