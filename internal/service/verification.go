package service

import (
	"context"
	"fmt"
	"time"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/model"
	"trading-signal-bot/internal/repository"
	"trading-signal-bot/pkg/logger"

	"github.com/google/uuid"
)

const (
	msgPaymentApproved = "✅ پرداخت شما تایید شد! ثبت‌نام تکمیل گردید."
	msgPaymentRejected = "❌ پرداخت شما رد شد. لطفاً با پشتیبانی تماس بگیرید."
)

// UserNotifier delivers a plain message to a chat. Satisfied by the
// rate-limited telegram sender.
type UserNotifier interface {
	SendMessageUser(ctx context.Context, message string, chatID int64, opts ...interface{}) error
}

type VerificationService interface {
	SubmitRegistration(ctx context.Context, userID int64, phone, fullName, nationalID, paymentPhotoID string) (*model.PendingVerification, error)
	Approve(ctx context.Context, userID int64) (*model.VerifiedUser, error)
	Reject(ctx context.Context, userID int64) (bool, error)
}

type verificationService struct {
	cfg          *config.Config
	log          *logger.Logger
	verifiedRepo repository.VerifiedUserRepository
	pendingRepo  repository.PendingVerificationRepository
	notifier     UserNotifier
}

func NewVerificationService(
	cfg *config.Config,
	log *logger.Logger,
	verifiedRepo repository.VerifiedUserRepository,
	pendingRepo repository.PendingVerificationRepository,
	notifier UserNotifier,
) VerificationService {
	return &verificationService{
		cfg:          cfg,
		log:          log,
		verifiedRepo: verifiedRepo,
		pendingRepo:  pendingRepo,
		notifier:     notifier,
	}
}

// SubmitRegistration stores a completed registration form together with the
// payment proof, waiting for the admin decision.
func (s *verificationService) SubmitRegistration(ctx context.Context, userID int64, phone, fullName, nationalID, paymentPhotoID string) (*model.PendingVerification, error) {
	pending := &model.PendingVerification{
		ID:             uuid.NewString(),
		UserID:         userID,
		Phone:          phone,
		FullName:       fullName,
		NationalID:     nationalID,
		PaymentPhotoID: paymentPhotoID,
		SubmittedAt:    time.Now(),
	}

	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		s.log.ErrorContext(ctx, "Failed to create pending verification",
			logger.ErrorField(err),
			logger.Int64Field("user_id", userID),
		)
		return nil, fmt.Errorf("failed to create pending verification: %w", err)
	}

	return pending, nil
}

// Approve consumes the pending record for the user: the verified row is
// upserted first, then the pending row removed, then the submitter notified.
// The notification is retried once; a notify failure never rolls back the
// storage mutation.
func (s *verificationService) Approve(ctx context.Context, userID int64) (*model.VerifiedUser, error) {
	pending, err := s.pendingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending verification: %w", err)
	}
	if pending == nil {
		return nil, nil
	}

	user := &model.VerifiedUser{
		UserID:       pending.UserID,
		Phone:        pending.Phone,
		FullName:     pending.FullName,
		NationalID:   pending.NationalID,
		RegisteredAt: time.Now(),
	}

	if err := s.verifiedRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert verified user: %w", err)
	}

	if err := s.pendingRepo.DeleteByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete pending verification: %w", err)
	}

	s.notifyWithRetry(ctx, userID, msgPaymentApproved)

	return user, nil
}

// Reject removes the pending record and notifies the submitter. Returns false
// when no pending record exists for the user.
func (s *verificationService) Reject(ctx context.Context, userID int64) (bool, error) {
	pending, err := s.pendingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get pending verification: %w", err)
	}
	if pending == nil {
		return false, nil
	}

	if err := s.pendingRepo.DeleteByUserID(ctx, userID); err != nil {
		return false, fmt.Errorf("failed to delete pending verification: %w", err)
	}

	s.notifyWithRetry(ctx, userID, msgPaymentRejected)

	return true, nil
}

func (s *verificationService) notifyWithRetry(ctx context.Context, userID int64, message string) {
	err := s.notifier.SendMessageUser(ctx, message, userID)
	if err == nil {
		return
	}
	s.log.WarnContext(ctx, "Failed to notify submitter, retrying once",
		logger.ErrorField(err),
		logger.Int64Field("user_id", userID),
	)
	if err := s.notifier.SendMessageUser(ctx, message, userID); err != nil {
		s.log.ErrorContext(ctx, "Failed to notify submitter",
			logger.ErrorField(err),
			logger.Int64Field("user_id", userID),
		)
	}
}
