package repository

import (
	"context"
	"errors"
	"fmt"
	"presensi/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.User
		err := tx.Where("clerk_id = ?", user.ClerkID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("user with clerk id %s: %w", user.ClerkID, domain.ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("could not check for existing user: %v", err)
		}

		if user.Role == "" {
			user.Role = domain.RoleStudent
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("could not insert user: %v", err)
		}
		return nil
	})
}

// DeleteUser removes the user and everything it owns: attendance entries and
// leaves filed as a student. Runs in one transaction so a partial cascade can
// never be observed.
func (ur *userRepository) DeleteUser(ctx context.Context, clerkID string) error {
	return ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		err := tx.Where("clerk_id = ?", clerkID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user with clerk id %s: %w", clerkID, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get user: %v", err)
		}

		if err := tx.Where("clerk_id = ? OR user_id = ?", user.ClerkID, user.UserID).Delete(&domain.Attendance{}).Error; err != nil {
			return fmt.Errorf("could not delete attendance records: %v", err)
		}

		if err := tx.Where("student_id = ?", user.ClerkID).Delete(&domain.Leave{}).Error; err != nil {
			return fmt.Errorf("could not delete leave records: %v", err)
		}

		// A teacher's subject assignment goes with it, and the assignment
		// takes its leaves along.
		if user.Role == domain.RoleTeacher {
			if err := tx.Where("teacher_subject_id = ?", user.ClerkID).Delete(&domain.Leave{}).Error; err != nil {
				return fmt.Errorf("could not delete leaves for teacher subject: %v", err)
			}
			if err := tx.Where("teacher_id = ?", user.ClerkID).Delete(&domain.TeacherSubject{}).Error; err != nil {
				return fmt.Errorf("could not delete teacher subject: %v", err)
			}
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("could not delete user: %v", err)
		}
		return nil
	})
}

func (ur *userRepository) GetUserByClerkID(ctx context.Context, clerkID string) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with clerk id %s: %w", clerkID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get user: %v", err)
	}
	return &user, nil
}

func (ur *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := ur.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get user: %v", err)
	}
	return &user, nil
}

func (ur *userRepository) GetAllUserByRole(ctx context.Context, role string) (*[]domain.User, error) {
	var users []domain.User
	err := ur.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("could not get users by role: %v", err)
	}
	return &users, nil
}

// AssignSubject upserts the teacher's single subject assignment. A repeat
// call for the same teacher replaces the previous subject.
func (ur *userRepository) AssignSubject(ctx context.Context, teacherClerkID, subject string) (*domain.TeacherSubject, error) {
	var ts domain.TeacherSubject

	err := ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teacher domain.User
		err := tx.Where("clerk_id = ?", teacherClerkID).First(&teacher).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user with clerk id %s: %w", teacherClerkID, domain.ErrNotFound)
			}
			return fmt.Errorf("could not get teacher: %v", err)
		}

		if teacher.Role != domain.RoleTeacher {
			return fmt.Errorf("user %s is not a teacher: %w", teacherClerkID, domain.ErrForbidden)
		}

		ts = domain.TeacherSubject{
			TeacherID: teacher.ClerkID,
			Subject:   subject,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "teacher_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subject", "updated_at"}),
		}).Create(&ts).Error; err != nil {
			return fmt.Errorf("could not assign subject: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ts, nil
}
