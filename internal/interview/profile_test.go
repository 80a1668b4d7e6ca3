package interview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mockview/internal/interview"
)

func TestProfileReadAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	profile, err := f.svc.Profile(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "M One", profile.Nickname)
	require.Empty(t, profile.JobField)
	require.Empty(t, profile.PreferredField)

	updated, err := f.svc.UpdateProfile(ctx, "m1", "backend", interview.FieldDevelopment)
	require.NoError(t, err)
	require.Equal(t, "backend", updated.JobField)
	require.Equal(t, interview.FieldDevelopment, updated.PreferredField)

	profile, err = f.svc.Profile(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, "M One", profile.Nickname)
	require.Equal(t, "backend", profile.JobField)
	require.Equal(t, interview.FieldDevelopment, profile.PreferredField)

	// Clearing the preference is allowed.
	updated, err = f.svc.UpdateProfile(ctx, "m1", "backend", "")
	require.NoError(t, err)
	require.Empty(t, updated.PreferredField)
}

func TestProfileUnknownMember(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Profile(context.Background(), "nobody")
	require.ErrorIs(t, err, interview.ErrMemberNotFound)

	_, err = f.svc.UpdateProfile(context.Background(), "nobody", "backend", interview.FieldDevelopment)
	require.ErrorIs(t, err, interview.ErrMemberNotFound)
}
