package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileDB opens a store on disk so every pooled connection shares it.
func fileDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "programs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// withBusyRetry reruns fn with a growing pause while the store reports busy.
func withBusyRetry(fn func() error) (err error) {
	for pause := time.Millisecond; pause < time.Second; pause *= 2 {
		if err = fn(); err == nil {
			return nil
		}
		time.Sleep(pause)
	}
	return err
}

// TestConcurrentAccess_ReadDuringWrite verifies that program reads see whole
// trees while other programs are being written.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := fileDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	repo := NewSQLiteProgramRepo(database)
	ctx := context.Background()

	seed := testutil.NewTestProgram("u1", 2,
		testutil.WithSlot(1, domain.SlotLunch, domain.CategoryRestaurants,
			testutil.NewTestVenue(domain.CategoryRestaurants, "Seed Table")))
	require.NoError(t, repo.Create(ctx, seed))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			p := testutil.NewTestProgram("u1", 3,
				testutil.WithSlot(2, domain.SlotDinner, domain.CategoryRestaurants,
					testutil.NewTestVenue(domain.CategoryRestaurants, fmt.Sprintf("Table %d", i))))
			err := withBusyRetry(func() error {
				return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					return NewSQLiteProgramRepo(tx).Create(ctx, p)
				})
			})
			if err != nil {
				t.Errorf("writer: create program %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := repo.ListByUser(ctx, "u1")
				if err != nil {
					t.Errorf("reader %d: list: %v", reader, err)
					return
				}
				for _, s := range list {
					p, err := repo.GetByID(ctx, s.ID)
					if err != nil {
						t.Errorf("reader %d: get %s: %v", reader, s.ID, err)
						return
					}
					if err := p.CheckDays(); err != nil {
						t.Errorf("reader %d: partial program %s: %v", reader, s.ID, err)
					}
				}
			}
		}(r)
	}
	wg.Wait()

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 11)
}

// TestConcurrentAccess_ExclusionsStayUnique races identical exclusions and
// expects exactly one stored row.
func TestConcurrentAccess_ExclusionsStayUnique(t *testing.T) {
	database := fileDB(t)
	repo := NewSQLiteExclusionRepo(database)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "Le Cinq"
			if i%2 == 0 {
				name = "LE CINQ"
			}
			err := withBusyRetry(func() error {
				_, err := repo.Add(ctx, testutil.NewTestExclusion("u1", name, domain.CategoryRestaurants))
				return err
			})
			if err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
