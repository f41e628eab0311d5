package repository

import (
	"context"
	"presensi/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLeaveChecksReferences(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")

	err := repo.ApplyLeave(ctx, &domain.Leave{
		StudentID:        "student-1",
		TeacherSubjectID: "missing",
		Date:             time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.ApplyLeave(ctx, &domain.Leave{
		StudentID:        "missing",
		TeacherSubjectID: "teacher-1",
		Date:             time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyLeaveStartsPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")

	reason := "fever"
	leave := &domain.Leave{
		StudentID:        "student-1",
		TeacherSubjectID: "teacher-1",
		Date:             time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		HalfDay:          false,
		Reason:           &reason,
		// A sneaky client-side status must not survive the create.
		Status: domain.LeaveApproved,
	}
	require.NoError(t, repo.ApplyLeave(ctx, leave))

	got, err := repo.GetLeaveByID(ctx, leave.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeavePending, got.Status)
	assert.Equal(t, "student-1", got.StudentID)
	assert.Equal(t, "teacher-1", got.TeacherSubjectID)
	require.NotNil(t, got.Reason)
	assert.Equal(t, "fever", *got.Reason)
}

func TestUpdateLeaveStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")
	leave := seedLeave(t, db, "student-1", "teacher-1")

	_, err := repo.UpdateLeaveStatus(ctx, leave.ID+100, domain.LeaveApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// PENDING may not loop back onto itself.
	_, err = repo.UpdateLeaveStatus(ctx, leave.ID, domain.LeavePending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	updated, err := repo.UpdateLeaveStatus(ctx, leave.ID, domain.LeaveApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveApproved, updated.Status)

	// Terminal states are terminal.
	_, err = repo.UpdateLeaveStatus(ctx, leave.ID, domain.LeaveRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = repo.UpdateLeaveStatus(ctx, leave.ID, domain.LeavePending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := repo.GetLeaveByID(ctx, leave.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveApproved, got.Status)
}

func TestGetLeavesForIdentity(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "student-2", "u-2", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-3", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")

	seedLeave(t, db, "student-1", "teacher-1")
	seedLeave(t, db, "student-2", "teacher-1")

	// A student only sees their own leaves.
	leaves, err := repo.GetLeavesForIdentity(ctx, "student-1", nil)
	require.NoError(t, err)
	assert.Len(t, *leaves, 1)

	// The teacher sees every leave addressed to their subject.
	leaves, err = repo.GetLeavesForIdentity(ctx, "teacher-1", []string{"teacher-1"})
	require.NoError(t, err)
	assert.Len(t, *leaves, 2)

	leaves, err = repo.GetLeavesForIdentity(ctx, "stranger", nil)
	require.NoError(t, err)
	assert.Empty(t, *leaves)
}

func TestDeleteLeave(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	seedUser(t, db, "student-1", "u-1", domain.RoleStudent)
	seedUser(t, db, "teacher-1", "u-2", domain.RoleTeacher)
	seedTeacherSubject(t, db, "teacher-1", "Math")
	leave := seedLeave(t, db, "student-1", "teacher-1")

	assert.ErrorIs(t, repo.DeleteLeave(ctx, leave.ID+100), domain.ErrNotFound)

	require.NoError(t, repo.DeleteLeave(ctx, leave.ID))

	_, err := repo.GetLeaveByID(ctx, leave.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
