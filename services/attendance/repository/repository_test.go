package repository

import (
	"context"
	"presensi/domain"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.TeacherSubject{},
		&domain.Attendance{},
		&domain.Leave{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, clerkID, userID, role string) *domain.User {
	t.Helper()

	user := &domain.User{
		ClerkID:     clerkID,
		UserID:      userID,
		FirstName:   "Test",
		LastName:    clerkID,
		Email:       clerkID + "@school.test",
		PhoneNumber: "0812" + userID,
		Role:        role,
	}
	require.NoError(t, NewUserRepository(db).CreateUser(context.Background(), user))
	return user
}

func seedTeacherSubject(t *testing.T, db *gorm.DB, teacherClerkID, subject string) *domain.TeacherSubject {
	t.Helper()

	ts, err := NewUserRepository(db).AssignSubject(context.Background(), teacherClerkID, subject)
	require.NoError(t, err)
	return ts
}

func seedLeave(t *testing.T, db *gorm.DB, studentClerkID, teacherClerkID string) *domain.Leave {
	t.Helper()

	leave := &domain.Leave{
		StudentID:        studentClerkID,
		TeacherSubjectID: teacherClerkID,
		Date:             time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewLeaveRepository(db).ApplyLeave(context.Background(), leave))
	return leave
}
