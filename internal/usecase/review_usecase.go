package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/oyedot/vendorhub/internal/domain"
)

// ReviewUseCase handles product reviews and pre-sale questions.
type ReviewUseCase struct {
	reviewRepo   ReviewRepository
	questionRepo QuestionRepository
	now          func() time.Time
}

// NewReviewUseCase creates a new ReviewUseCase.
func NewReviewUseCase(reviewRepo ReviewRepository, questionRepo QuestionRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:   reviewRepo,
		questionRepo: questionRepo,
		now:          time.Now,
	}
}

// ListReviews lists the vendor's product reviews with pagination.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, vendorID string, limit, offset int) ([]domain.Review, error) {
	return uc.reviewRepo.ListByVendor(ctx, vendorID, clampLimit(limit, defaultPageSize), offset)
}

// ReplyToReview posts the vendor's single public reply on a review.
func (uc *ReviewUseCase) ReplyToReview(ctx context.Context, vendorID, reviewID, reply string) (*domain.Review, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, domain.ErrEmptyBody
	}

	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.VendorID != vendorID {
		return nil, domain.ErrReviewNotFound
	}
	if review.HasReply() {
		return nil, domain.ErrReviewAlreadyReplied
	}

	now := uc.now().UTC()
	if err := uc.reviewRepo.SaveReply(ctx, reviewID, reply, now); err != nil {
		return nil, err
	}

	review.Reply = reply
	review.RepliedAt = &now

	return review, nil
}

// ListQuestions lists the vendor's product questions with pagination.
func (uc *ReviewUseCase) ListQuestions(ctx context.Context, vendorID string, limit, offset int) ([]domain.Question, error) {
	return uc.questionRepo.ListByVendor(ctx, vendorID, clampLimit(limit, defaultPageSize), offset)
}

// AnswerQuestion posts or replaces the vendor's answer to a question.
func (uc *ReviewUseCase) AnswerQuestion(ctx context.Context, vendorID, questionID, answer string) (*domain.Question, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, domain.ErrEmptyBody
	}

	question, err := uc.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.VendorID != vendorID {
		return nil, domain.ErrQuestionNotFound
	}

	now := uc.now().UTC()
	if err := uc.questionRepo.SaveAnswer(ctx, questionID, answer, now); err != nil {
		return nil, err
	}

	question.Answer = answer
	question.AnsweredAt = &now

	return question, nil
}
