package repository

import (
	"context"
	"presensi/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttendanceUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	_, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  "missing",
		Subject: "Math",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Attendance{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateAttendanceDerivesClerkID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := seedUser(t, db, "student-1", "u-1", domain.RoleStudent)

	attendance, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  student.UserID,
		Subject: "Math",
	})
	require.NoError(t, err)

	assert.Equal(t, student.ClerkID, attendance.ClerkID)
	assert.Equal(t, student.UserID, attendance.UserID)
	assert.Equal(t, domain.AttendancePresent, attendance.Status)
	assert.False(t, attendance.Date.IsZero())
}

func TestCreateAttendanceExplicitStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := seedUser(t, db, "student-1", "u-1", domain.RoleStudent)

	attendance, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  student.UserID,
		Subject: "Math",
		Status:  domain.AttendanceAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceAbsent, attendance.Status)
}

func TestUpdateAttendanceStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := seedUser(t, db, "student-1", "u-1", domain.RoleStudent)

	created, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  student.UserID,
		Subject: "Math",
	})
	require.NoError(t, err)

	_, err = repo.UpdateAttendanceStatus(ctx, created.ID+100, domain.AttendanceAbsent)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := repo.UpdateAttendanceStatus(ctx, created.ID, domain.AttendanceAbsent)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceAbsent, updated.Status)

	// Everything but the status is untouched.
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.Subject, updated.Subject)
	assert.Equal(t, created.ClerkID, updated.ClerkID)
}

func TestDeleteAttendance(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := seedUser(t, db, "student-1", "u-1", domain.RoleStudent)

	created, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  student.UserID,
		Subject: "Math",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteAttendance(ctx, created.ID+100), domain.ErrNotFound)

	require.NoError(t, repo.DeleteAttendance(ctx, created.ID))

	_, err = repo.GetAttendanceByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAttendanceByClerkIDEmptyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)

	// No records at all is a 404, not an empty list.
	_, err := repo.GetAttendanceByClerkID(ctx, "student-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAttendanceByClerkID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	other := seedUser(t, db, "student-2", "u-2", domain.RoleStudent)

	for _, subject := range []string{"Math", "Physics"} {
		_, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
			UserID:  student.UserID,
			Subject: subject,
		})
		require.NoError(t, err)
	}
	_, err := repo.CreateAttendance(ctx, &domain.AttendanceCreatePayload{
		UserID:  other.UserID,
		Subject: "Math",
	})
	require.NoError(t, err)

	attendances, err := repo.GetAttendanceByClerkID(ctx, "student-1")
	require.NoError(t, err)
	assert.Len(t, *attendances, 2)
}
