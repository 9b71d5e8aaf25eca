package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/storage"
)

var (
	ErrReviewNotAllowed = errors.New("only delivered orders can be reviewed")
	ErrInvalidReview    = errors.New("review requires a rating between 1 and 5 and a non-empty text")
	ErrInvalidFeedback  = errors.New("feedback message must not be empty")
)

// Service persists post-delivery reviews and contact feedback messages.
type Service struct {
	reviews  storage.Collection[domain.Review]
	feedback storage.Collection[domain.Feedback]
	orders   interfaces.OrderService
	logger   logger.Logger
}

func NewService(store storage.Store, orders interfaces.OrderService, log logger.Logger) *Service {
	return &Service{
		reviews:  storage.NewCollection[domain.Review](store, storage.KeyReviews, log),
		feedback: storage.NewCollection[domain.Feedback](store, storage.KeyFeedback, log),
		orders:   orders,
		logger:   log,
	}
}

// SubmitReview attaches a review to one of the caller's delivered orders.
func (s *Service) SubmitReview(ctx context.Context, email, orderID string, rating int, text string) (*domain.Review, error) {
	if rating < 1 || rating > 5 || strings.TrimSpace(text) == "" {
		return nil, ErrInvalidReview
	}

	order, ok := s.orders.Get(ctx, orderID)
	if !ok || order.CustomerEmail != email {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusDone {
		return nil, ErrReviewNotAllowed
	}

	review := domain.Review{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Author:    email,
		Rating:    rating,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now(),
	}

	all := s.reviews.Load(ctx)
	all = append(all, review)
	if err := s.reviews.Save(ctx, all); err != nil {
		return nil, err
	}
	s.logger.Debug("review_submitted", "Review saved", "", map[string]interface{}{"order_id": orderID, "rating": rating})
	return &review, nil
}

func (s *Service) ListReviews(ctx context.Context) []domain.Review {
	return s.reviews.Load(ctx)
}

// SubmitFeedback stores a contact message.
func (s *Service) SubmitFeedback(ctx context.Context, name, email, message string) (*domain.Feedback, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrInvalidFeedback
	}

	fb := domain.Feedback{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now(),
	}

	all := s.feedback.Load(ctx)
	all = append(all, fb)
	if err := s.feedback.Save(ctx, all); err != nil {
		return nil, err
	}
	return &fb, nil
}
