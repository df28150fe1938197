package service

import (
	"context"
	"errors"
	"testing"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/model"
	"trading-signal-bot/pkg/logger"
	"trading-signal-bot/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeVerifiedUserRepo struct {
	users     map[int64]model.VerifiedUser
	upsertErr error
	listErr   error
}

func newFakeVerifiedUserRepo() *fakeVerifiedUserRepo {
	return &fakeVerifiedUserRepo{users: make(map[int64]model.VerifiedUser)}
}

func (f *fakeVerifiedUserRepo) Upsert(ctx context.Context, user *model.VerifiedUser, opts ...utils.DBOption) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.users[user.UserID] = *user
	return nil
}

func (f *fakeVerifiedUserRepo) GetByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) (*model.VerifiedUser, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeVerifiedUserRepo) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.VerifiedUser, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	users := make([]model.VerifiedUser, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeVerifiedUserRepo) GetAllIDs(ctx context.Context, opts ...utils.DBOption) ([]int64, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeVerifiedUserRepo) Delete(ctx context.Context, userID int64, opts ...utils.DBOption) error {
	delete(f.users, userID)
	return nil
}

type fakePendingVerificationRepo struct {
	pendings  map[int64]model.PendingVerification
	createErr error
	deleteErr error
}

func newFakePendingVerificationRepo() *fakePendingVerificationRepo {
	return &fakePendingVerificationRepo{pendings: make(map[int64]model.PendingVerification)}
}

func (f *fakePendingVerificationRepo) Create(ctx context.Context, pending *model.PendingVerification, opts ...utils.DBOption) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.pendings[pending.UserID] = *pending
	return nil
}

func (f *fakePendingVerificationRepo) GetByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) (*model.PendingVerification, error) {
	pending, ok := f.pendings[userID]
	if !ok {
		return nil, nil
	}
	return &pending, nil
}

func (f *fakePendingVerificationRepo) DeleteByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.pendings, userID)
	return nil
}

type sentMessage struct {
	chatID  int64
	message string
}

type fakeNotifier struct {
	sent     []sentMessage
	failFor  map[int64]int
	attempts int
}

func (f *fakeNotifier) SendMessageUser(ctx context.Context, message string, chatID int64, opts ...interface{}) error {
	f.attempts++
	if remaining, ok := f.failFor[chatID]; ok && remaining > 0 {
		f.failFor[chatID] = remaining - 1
		return errors.New("telegram unavailable")
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, message: message})
	return nil
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func TestVerificationService_SubmitRegistration(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	pending, err := svc.SubmitRegistration(context.Background(), 42, "+989121234567", "Ali Rezaei", "1234567890", "photo-file-id")
	assert.NoError(t, err)
	assert.NotEmpty(t, pending.ID)
	assert.Equal(t, int64(42), pending.UserID)
	assert.Equal(t, "photo-file-id", pending.PaymentPhotoID)
	assert.False(t, pending.SubmittedAt.IsZero())

	stored, ok := pendingRepo.pendings[42]
	assert.True(t, ok)
	assert.Equal(t, "Ali Rezaei", stored.FullName)
}

func TestVerificationService_Approve(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	pendingRepo.pendings[42] = model.PendingVerification{
		ID:         "pending-id",
		UserID:     42,
		Phone:      "+989121234567",
		FullName:   "Ali Rezaei",
		NationalID: "1234567890",
	}

	user, err := svc.Approve(context.Background(), 42)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Ali Rezaei", user.FullName)
	assert.Equal(t, "+989121234567", user.Phone)
	assert.Equal(t, "1234567890", user.NationalID)
	assert.False(t, user.RegisteredAt.IsZero())

	_, stillPending := pendingRepo.pendings[42]
	assert.False(t, stillPending, "pending record must be consumed")
	assert.Contains(t, verifiedRepo.users, int64(42))

	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, int64(42), notifier.sent[0].chatID)
	assert.Equal(t, msgPaymentApproved, notifier.sent[0].message)
}

func TestVerificationService_ApproveNoPending(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	user, err := svc.Approve(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, verifiedRepo.users)
	assert.Empty(t, notifier.sent)
}

func TestVerificationService_ApproveRetriesNotifyOnce(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{failFor: map[int64]int{42: 1}}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	pendingRepo.pendings[42] = model.PendingVerification{ID: "pending-id", UserID: 42, FullName: "Ali Rezaei"}

	user, err := svc.Approve(context.Background(), 42)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 2, notifier.attempts)
	assert.Len(t, notifier.sent, 1)
}

func TestVerificationService_ApproveNotifyFailureKeepsStorage(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{failFor: map[int64]int{42: 2}}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	pendingRepo.pendings[42] = model.PendingVerification{ID: "pending-id", UserID: 42, FullName: "Ali Rezaei"}

	user, err := svc.Approve(context.Background(), 42)
	assert.NoError(t, err, "notify failure must not fail the approval")
	assert.NotNil(t, user)
	assert.Contains(t, verifiedRepo.users, int64(42))
	assert.Empty(t, notifier.sent)
}

func TestVerificationService_ApproveOverwritesExistingUser(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	verifiedRepo.users[42] = model.VerifiedUser{UserID: 42, FullName: "Old Name", Phone: "+980000000000"}
	pendingRepo.pendings[42] = model.PendingVerification{
		ID:       "pending-id",
		UserID:   42,
		Phone:    "+989121234567",
		FullName: "New Name",
	}

	user, err := svc.Approve(context.Background(), 42)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "New Name", verifiedRepo.users[42].FullName)
	assert.Equal(t, "+989121234567", verifiedRepo.users[42].Phone)
}

func TestVerificationService_Reject(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	pendingRepo.pendings[42] = model.PendingVerification{ID: "pending-id", UserID: 42}

	found, err := svc.Reject(context.Background(), 42)
	assert.NoError(t, err)
	assert.True(t, found)

	_, stillPending := pendingRepo.pendings[42]
	assert.False(t, stillPending)
	assert.Empty(t, verifiedRepo.users, "reject must not create a verified user")

	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, msgPaymentRejected, notifier.sent[0].message)
}

func TestVerificationService_RejectNoPending(t *testing.T) {
	verifiedRepo := newFakeVerifiedUserRepo()
	pendingRepo := newFakePendingVerificationRepo()
	notifier := &fakeNotifier{}
	svc := NewVerificationService(&config.Config{}, testLogger(), verifiedRepo, pendingRepo, notifier)

	found, err := svc.Reject(context.Background(), 42)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, notifier.sent)
}
