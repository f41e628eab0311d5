package domain

import (
	"context"
	"time"
)

// TeacherSubject is keyed by the teacher's clerk id, so a teacher holds at
// most one subject assignment. Re-assigning replaces the previous subject.
type TeacherSubject struct {
	TeacherID string    `gorm:"primaryKey;type:varchar(64)" json:"teacher_id" valid:"required~Teacher ID is required"`
	Subject   string    `gorm:"type:varchar(100);not null" json:"subject" valid:"required~Subject is required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type TeacherSubjectRepo interface {
	GetTeacherSubjectByID(ctx context.Context, teacherID string) (*TeacherSubject, error)
	GetTeacherSubjectsByTeacherID(ctx context.Context, teacherID string) (*[]TeacherSubject, error)
}
