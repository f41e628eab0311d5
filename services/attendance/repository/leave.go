package repository

import (
	"context"
	"errors"
	"fmt"
	"presensi/domain"

	"gorm.io/gorm"
)

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(database *gorm.DB) domain.LeaveRepo {
	return &leaveRepository{
		db: database,
	}
}

// ApplyLeave verifies the teacher-subject pairing and the student before
// creating the request. New leaves always start out PENDING.
func (lr *leaveRepository) ApplyLeave(ctx context.Context, leave *domain.Leave) error {
	return lr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ts domain.TeacherSubject
		err := tx.Where("teacher_id = ?", leave.TeacherSubjectID).First(&ts).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("teacher subject %s: %w", leave.TeacherSubjectID, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get teacher subject: %v", err)
		}

		var student domain.User
		err = tx.Where("clerk_id = ?", leave.StudentID).First(&student).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("student %s: %w", leave.StudentID, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get student: %v", err)
		}

		leave.Status = domain.LeavePending

		if err := tx.Create(leave).Error; err != nil {
			return fmt.Errorf("could not insert leave: %v", err)
		}
		return nil
	})
}

func (lr *leaveRepository) GetAllLeave(ctx context.Context) (*[]domain.Leave, error) {
	var leaves []domain.Leave
	err := lr.db.WithContext(ctx).Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("could not get all leaves: %v", err)
	}
	return &leaves, nil
}

// GetLeavesForIdentity matches leaves filed by the clerk id as a student or
// addressed to any teacher-subject the clerk id owns.
func (lr *leaveRepository) GetLeavesForIdentity(ctx context.Context, clerkID string, teacherSubjectIDs []string) (*[]domain.Leave, error) {
	var leaves []domain.Leave

	query := lr.db.WithContext(ctx).Where("student_id = ?", clerkID)
	if len(teacherSubjectIDs) > 0 {
		query = lr.db.WithContext(ctx).Where("student_id = ? OR teacher_subject_id IN ?", clerkID, teacherSubjectIDs)
	}

	if err := query.Find(&leaves).Error; err != nil {
		return nil, fmt.Errorf("could not get leaves for identity: %v", err)
	}
	return &leaves, nil
}

func (lr *leaveRepository) GetLeaveByID(ctx context.Context, id int) (*domain.Leave, error) {
	var leave domain.Leave
	err := lr.db.WithContext(ctx).Where("id = ?", id).First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("leave with id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get leave: %v", err)
	}
	return &leave, nil
}

// UpdateLeaveStatus enforces the one-shot state machine: a leave can only
// move from PENDING to APPROVED or REJECTED, exactly once.
func (lr *leaveRepository) UpdateLeaveStatus(ctx context.Context, id int, status string) (*domain.Leave, error) {
	var leave domain.Leave

	err := lr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&leave).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("leave with id %d: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get leave: %v", err)
		}

		if leave.Status != domain.LeavePending || status == domain.LeavePending {
			return fmt.Errorf("cannot move leave %d from %s to %s: %w", id, leave.Status, status, domain.ErrInvalidTransition)
		}

		if err := tx.Model(&leave).Update("status", status).Error; err != nil {
			return fmt.Errorf("could not update leave status: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &leave, nil
}

func (lr *leaveRepository) DeleteLeave(ctx context.Context, id int) error {
	return lr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var leave domain.Leave
		err := tx.Where("id = ?", id).First(&leave).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("leave with id %d: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get leave: %v", err)
		}

		if err := tx.Delete(&leave).Error; err != nil {
			return fmt.Errorf("could not delete leave: %v", err)
		}
		return nil
	})
}
