package repository

import (
	"context"
	"errors"
	"fmt"
	"presensi/domain"

	"gorm.io/gorm"
)

type teacherSubjectRepository struct {
	db *gorm.DB
}

func NewTeacherSubjectRepository(database *gorm.DB) domain.TeacherSubjectRepo {
	return &teacherSubjectRepository{
		db: database,
	}
}

func (tsr *teacherSubjectRepository) GetTeacherSubjectByID(ctx context.Context, teacherID string) (*domain.TeacherSubject, error) {
	var ts domain.TeacherSubject
	err := tsr.db.WithContext(ctx).Where("teacher_id = ?", teacherID).First(&ts).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("teacher subject for %s: %w", teacherID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get teacher subject: %v", err)
	}
	return &ts, nil
}

// GetTeacherSubjectsByTeacherID degenerates to zero or one row because the
// teacher id is the primary key; the list form is kept for the leave filter.
func (tsr *teacherSubjectRepository) GetTeacherSubjectsByTeacherID(ctx context.Context, teacherID string) (*[]domain.TeacherSubject, error) {
	var tss []domain.TeacherSubject
	err := tsr.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Find(&tss).Error
	if err != nil {
		return nil, fmt.Errorf("could not get teacher subjects: %v", err)
	}
	return &tss, nil
}
