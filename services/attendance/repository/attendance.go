package repository

import (
	"context"
	"errors"
	"fmt"
	"presensi/domain"
	"time"

	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(database *gorm.DB) domain.AttendanceRepo {
	return &attendanceRepository{
		db: database,
	}
}

// CreateAttendance resolves the user first so the stored clerk id is always
// the one belonging to the user row, never a client-supplied value. The date
// is stamped with the server clock at write time.
func (ar *attendanceRepository) CreateAttendance(ctx context.Context, payload *domain.AttendanceCreatePayload) (*domain.Attendance, error) {
	var attendance domain.Attendance

	err := ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		err := tx.Where("user_id = ?", payload.UserID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user with user id %s: %w", payload.UserID, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get user: %v", err)
		}

		status := payload.Status
		if status == "" {
			status = domain.AttendancePresent
		}

		attendance = domain.Attendance{
			UserID:  user.UserID,
			ClerkID: user.ClerkID,
			Date:    time.Now(),
			Subject: payload.Subject,
			Status:  status,
		}

		if err := tx.Create(&attendance).Error; err != nil {
			return fmt.Errorf("could not insert attendance: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &attendance, nil
}

func (ar *attendanceRepository) GetAllAttendance(ctx context.Context) (*[]domain.Attendance, error) {
	var attendances []domain.Attendance
	err := ar.db.WithContext(ctx).Find(&attendances).Error
	if err != nil {
		return nil, fmt.Errorf("could not get all attendance: %v", err)
	}
	return &attendances, nil
}

func (ar *attendanceRepository) GetAttendanceByID(ctx context.Context, id int) (*domain.Attendance, error) {
	var attendance domain.Attendance
	err := ar.db.WithContext(ctx).Where("id = ?", id).First(&attendance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attendance with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get attendance: %v", err)
	}
	return &attendance, nil
}

// UpdateAttendanceStatus only ever touches the status column. Date, subject
// and user identity are immutable after creation.
func (ar *attendanceRepository) UpdateAttendanceStatus(ctx context.Context, id int, status string) (*domain.Attendance, error) {
	var attendance domain.Attendance

	err := ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&attendance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("attendance with id %d: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get attendance: %v", err)
		}

		if status == "" {
			return nil
		}

		if err := tx.Model(&attendance).Update("status", status).Error; err != nil {
			return fmt.Errorf("could not update attendance status: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &attendance, nil
}

func (ar *attendanceRepository) DeleteAttendance(ctx context.Context, id int) error {
	return ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attendance domain.Attendance
		err := tx.Where("id = ?", id).First(&attendance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("attendance with id %d: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get attendance: %v", err)
		}

		if err := tx.Delete(&attendance).Error; err != nil {
			return fmt.Errorf("could not delete attendance: %v", err)
		}
		return nil
	})
}

// GetAttendanceByClerkID treats an empty result set as not found. Debatable,
// but clients depend on the 404.
func (ar *attendanceRepository) GetAttendanceByClerkID(ctx context.Context, clerkID string) (*[]domain.Attendance, error) {
	var attendances []domain.Attendance
	err := ar.db.WithContext(ctx).Where("clerk_id = ?", clerkID).Find(&attendances).Error
	if err != nil {
		return nil, fmt.Errorf("could not get attendance by clerk id: %v", err)
	}

	if len(attendances) == 0 {
		return nil, fmt.Errorf("attendance for clerk id %s: %w", clerkID, domain.ErrNotFound)
	}

	return &attendances, nil
}
