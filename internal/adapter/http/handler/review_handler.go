package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// ReviewHandler handles review and question HTTP requests.
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewUC *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// ListReviews lists reviews on the vendor's products.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	reviews, err := h.reviewUC.ListReviews(r.Context(), id, parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reviews", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReviewsFromDomain(reviews))
}

// Reply posts the vendor's one-time reply to a review.
func (h *ReviewHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		writeError(w, http.StatusBadRequest, "missing review ID", "")
		return
	}

	var req dto.ReplyToReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	review, err := h.reviewUC.ReplyToReview(r.Context(), id, reviewID, req.Reply)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reply to review", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ReviewFromDomain(review))
}

// ListQuestions lists buyer questions on the vendor's products.
func (h *ReviewHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	questions, err := h.reviewUC.ListQuestions(r.Context(), id, parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list questions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.QuestionsFromDomain(questions))
}

// Answer posts the vendor's answer to a buyer question.
func (h *ReviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	questionID := chi.URLParam(r, "id")
	if questionID == "" {
		writeError(w, http.StatusBadRequest, "missing question ID", "")
		return
	}

	var req dto.AnswerQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	question, err := h.reviewUC.AnswerQuestion(r.Context(), id, questionID, req.Answer)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to answer question", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.QuestionFromDomain(question))
}
