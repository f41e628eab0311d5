package repository

import (
	"context"
	"presensi/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndGetByClerkID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := seedUser(t, db, "clerk-1", "u-1", domain.RoleStudent)

	got, err := repo.GetUserByClerkID(ctx, "clerk-1")
	require.NoError(t, err)
	assert.Equal(t, created.ClerkID, got.ClerkID)
	assert.Equal(t, created.UserID, got.UserID)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, domain.RoleStudent, got.Role)
}

func TestCreateUserDuplicateClerkID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "clerk-1", "u-1", domain.RoleStudent)

	dup := &domain.User{
		ClerkID:     "clerk-1",
		UserID:      "u-2",
		FirstName:   "Other",
		LastName:    "User",
		Email:       "other@school.test",
		PhoneNumber: "0812999",
		Role:        domain.RoleStudent,
	}
	err := repo.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateUserDefaultsRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ClerkID:     "clerk-1",
		UserID:      "u-1",
		FirstName:   "No",
		LastName:    "Role",
		Email:       "norole@school.test",
		PhoneNumber: "0812000",
	}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.Equal(t, domain.RoleStudent, user.Role)
}

func TestGetUserByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "clerk-1", "u-1", domain.RoleStudent)

	got, err := repo.GetUserByEmail(ctx, "clerk-1@school.test")
	require.NoError(t, err)
	assert.Equal(t, "clerk-1", got.ClerkID)

	_, err = repo.GetUserByEmail(ctx, "missing@school.test")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAllUserByRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "clerk-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "clerk-2", "u-2", domain.RoleStudent)
	seedUser(t, db, "clerk-3", "u-3", domain.RoleTeacher)

	students, err := repo.GetAllUserByRole(ctx, domain.RoleStudent)
	require.NoError(t, err)
	assert.Len(t, *students, 2)

	teachers, err := repo.GetAllUserByRole(ctx, domain.RoleTeacher)
	require.NoError(t, err)
	assert.Len(t, *teachers, 1)
}

func TestAssignSubject(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)

	_, err := repo.AssignSubject(ctx, "missing", "Math")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.AssignSubject(ctx, "student-1", "Math")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ts, err := repo.AssignSubject(ctx, "teacher-1", "Math")
	require.NoError(t, err)
	assert.Equal(t, "Math", ts.Subject)

	// Re-assignment replaces the subject, one row per teacher.
	ts, err = repo.AssignSubject(ctx, "teacher-1", "Physics")
	require.NoError(t, err)
	assert.Equal(t, "Physics", ts.Subject)

	var count int64
	require.NoError(t, db.Model(&domain.TeacherSubject{}).Where("teacher_id = ?", "teacher-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := NewTeacherSubjectRepository(db).GetTeacherSubjectByID(ctx, "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Subject)
}

func TestDeleteUserNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	err := repo.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteStudentCascades(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	leaveRepo := NewLeaveRepository(db)
	ctx := context.Background()

	student := seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")

	_, err := attendanceRepo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  student.UserID,
		Subject: "Math",
	})
	require.NoError(t, err)

	seedLeave(t, db, "student-1", "teacher-1")
	seedLeave(t, db, "student-1", "teacher-1")

	require.NoError(t, userRepo.DeleteUser(ctx, "student-1"))

	_, err = userRepo.GetUserByClerkID(ctx, "student-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = attendanceRepo.GetAttendanceByClerkID(ctx, "student-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	leaves, err := leaveRepo.GetLeavesForIdentity(ctx, "student-1", nil)
	require.NoError(t, err)
	assert.Empty(t, *leaves)
}

func TestDeleteTeacherCascadesSubjectAndLeaves(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	leaveRepo := NewLeaveRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")
	seedLeave(t, db, "student-1", "teacher-1")

	require.NoError(t, userRepo.DeleteUser(ctx, "teacher-1"))

	_, err := NewTeacherSubjectRepository(db).GetTeacherSubjectByID(ctx, "teacher-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	leaves, err := leaveRepo.GetAllLeave(ctx)
	require.NoError(t, err)
	assert.Empty(t, *leaves)
}
