package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/repository"
	"trading-signal-bot/pkg/logger"

	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	ExportVerifiedUsers(ctx context.Context) (string, error)
}

type exportService struct {
	cfg          *config.Config
	log          *logger.Logger
	verifiedRepo repository.VerifiedUserRepository
}

func NewExportService(cfg *config.Config, log *logger.Logger, verifiedRepo repository.VerifiedUserRepository) ExportService {
	return &exportService{
		cfg:          cfg,
		log:          log,
		verifiedRepo: verifiedRepo,
	}
}

// ExportVerifiedUsers writes all verified users into a temporary xlsx file
// and returns its path. The caller is responsible for deleting the file after
// sending it.
func (s *exportService) ExportVerifiedUsers(ctx context.Context) (string, error) {
	users, err := s.verifiedRepo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list verified users: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.WarnContext(ctx, "Failed to close export workbook", logger.ErrorField(err))
		}
	}()

	const sheet = "Sheet1"
	headers := []string{"User ID", "Phone", "Full Name", "National ID", "Registered At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for row, user := range users {
		values := []interface{}{
			user.UserID,
			user.Phone,
			user.FullName,
			user.NationalID,
			user.RegisteredAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("verified_users_%d.xlsx", time.Now().Unix()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export file: %w", err)
	}

	return path, nil
}
