package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgxuuid "github.com/vgarvardt/pgx-google-uuid/v5"

	"github.com/madhuraks/ecobazaar/catalog/pkg/request"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
	"github.com/madhuraks/ecobazaar/internal/repository"
)

func setupCatalog(t *testing.T, c context.Context) (*pgxpool.Pool, *postgres.PostgresContainer, *CatalogService) {
	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_DB":       "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_PORT":     "5432",
			"POSTGRES_USER":     "postgres",
		}),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			filepath.Join("..", "..", "..", "migrations", "000001_create_products_table.up.sql"),
			filepath.Join("..", "..", "..", "migrations", "000003_seed_products.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgconfig with error: %s", err)
	}
	pgConfig.AfterConnect = func(c context.Context, conn *pgx.Conn) error {
		pgxuuid.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	catalogService, err := NewCatalogService(c, repository.New(pool))
	if err != nil {
		t.Fatalf("failed creating catalog service with error: %s", err)
	}
	return pool, pgContainer, catalogService
}

func teardownCatalog(t *testing.T, pool *pgxpool.Pool, pgContainer *postgres.PostgresContainer) {
	pool.Close()
	if err := testcontainers.TerminateContainer(pgContainer); err != nil {
		t.Fatalf("failed to terminate container: %s", err)
	}
}

func TestCatalogService(t *testing.T) {
	c := context.Background()
	c = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
	pool, pgContainer, catalogService := setupCatalog(t, c)
	defer teardownCatalog(t, pool, pgContainer)

	t.Run("FindProducts returns the full seeded catalog", func(t *testing.T) {
		products := catalogService.FindProducts(c)

		assert.Len(t, products, 15)
	})

	t.Run("FindProductById returns the seeded product", func(t *testing.T) {
		product, err := catalogService.FindProductById(c, 1)

		assert.NoError(t, err)
		assert.EqualValues(t, "Organic Neem Soap", product.Name)
		assert.EqualValues(t, "low", product.CarbonLabel)
		assert.Contains(t, product.Keywords, "साबुन")
	})

	t.Run("FindProductById returns error for unknown id", func(t *testing.T) {
		_, err := catalogService.FindProductById(c, 999)

		assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
	})

	t.Run("SearchProducts matches a multilingual voice query", func(t *testing.T) {
		maxBudget := newDecimal(t, "100")
		products, err := catalogService.SearchProducts(
			c,
			request.SearchProducts{
				Query:     "सौ रुपये के अंदर साबुन",
				Language:  "hi",
				MaxBudget: maxBudget,
			},
		)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.EqualValues(t, "Organic Neem Soap", products[0].Name)
	})

	t.Run("SearchProducts rejects a negative budget", func(t *testing.T) {
		maxBudget := newDecimal(t, "-1")
		_, err := catalogService.SearchProducts(
			c,
			request.SearchProducts{Query: "soap", MaxBudget: maxBudget},
		)

		assert.ErrorIs(t, err, inErrors.ErrInvalidBudget)
	})

	t.Run("SampleSearches returns the suggestion list", func(t *testing.T) {
		samples := catalogService.SampleSearches(c)

		assert.Len(t, samples, 6)
	})
}
