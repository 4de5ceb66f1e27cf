package repositories

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aiobackend/internal/database"
	"aiobackend/internal/models"
)

func mustStartMongoContainer() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	dbContainer, err := mongodb.Run(context.Background(), "mongo:latest")
	if err != nil {
		return nil, err
	}

	host, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	port, err := dbContainer.MappedPort(context.Background(), "27017/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))
	os.Setenv("DATABASE_NAME", "aio_test")

	return dbContainer.Terminate, err
}

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	teardown, err := mustStartMongoContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not start mongodb container")
	}

	code := m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatal().Err(err).Msg("Could not teardown mongodb container")
	}

	os.Exit(code)
}

func TestNewsRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	db, err := database.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewNewsRepository(db)
	ctx := context.Background()

	t.Run("insert assigns an id and find by id round-trips", func(t *testing.T) {
		id, err := repo.Insert(ctx, &models.NewsItem{
			TitleEN: "Launch",
			TitleAR: "إطلاق",
			Tag:     "Product",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, found.ID.Hex())
		assert.Equal(t, "Launch", found.TitleEN)
		assert.Equal(t, "إطلاق", found.TitleAR)
	})

	t.Run("featured filter matches exactly", func(t *testing.T) {
		_, err := repo.Insert(ctx, &models.NewsItem{TitleEN: "f1", TitleAR: "a", Featured: true})
		require.NoError(t, err)
		_, err = repo.Insert(ctx, &models.NewsItem{TitleEN: "n1", TitleAR: "b", Featured: false})
		require.NoError(t, err)

		featured := true
		items, err := repo.Find(ctx, NewsFilter{Featured: &featured}, 100)
		require.NoError(t, err)
		assert.NotEmpty(t, items)
		for _, item := range items {
			assert.True(t, item.Featured)
		}
	})

	t.Run("limit caps the result count", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := repo.Insert(ctx, &models.NewsItem{TitleEN: fmt.Sprintf("bulk %d", i), TitleAR: "a"})
			require.NoError(t, err)
		}

		items, err := repo.Find(ctx, NewsFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id reports invalid identifier", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "definitely-not-hex")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestNewsRepositoryUnavailable(t *testing.T) {
	repo := NewNewsRepository(nil)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &models.NewsItem{TitleEN: "x", TitleAR: "y"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = repo.Find(ctx, NewsFilter{}, 12)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = repo.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
