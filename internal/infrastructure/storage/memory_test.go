package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vision-report/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesAndSaves(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, u.State)

	u.SetState(entity.StateProcessing)
	// Без Save изменение не видно.
	again, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, again.State)

	require.NoError(t, repo.Save(ctx, u))
	again, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, again.State)
}

func TestMemoryUserRepository_SetLastReport(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.NoError(t, repo.SetLastReport(ctx, 7, "/out/x/output.html"))
	require.NoError(t, repo.SetLastReport(ctx, 8, "/ignored"))

	u, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.Equal(t, "/out/x/output.html", u.LastReport)
}

func TestMemoryReportRepository_ListByChat(t *testing.T) {
	repo := NewMemoryReportRepository()
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Save(ctx, &entity.ReportRecord{
			ID:        fmt.Sprintf("r%d", i),
			ChatID:    10,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Save(ctx, &entity.ReportRecord{ID: "other", ChatID: 20}))

	recs, err := repo.ListByChat(ctx, 10, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "r3", recs[0].ID)
	require.Equal(t, "r2", recs[1].ID)

	recs, err = repo.ListByChat(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	recs, err = repo.ListByChat(ctx, 99, 5)
	require.NoError(t, err)
	require.Empty(t, recs)
}
