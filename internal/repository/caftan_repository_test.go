package repository

import (
	"context"
	"database/sql"
	"log"
	"testing"
	"time"

	"caftan-rent/internal/domain"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	connStr := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	if err := createTestTables(); err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func createTestTables() error {
	_, err := testDB.Exec(`
		CREATE TABLE IF NOT EXISTS caftans (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			size VARCHAR(5) NOT NULL,
			price_per_day DECIMAL(10, 2) NOT NULL CHECK (price_per_day >= 0),
			image_url VARCHAR(500),
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}

	_, err = testDB.Exec(`
		CREATE TABLE IF NOT EXISTS rentals (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			caftan_id UUID NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			total_price DECIMAL(10, 2) NOT NULL CHECK (total_price >= 0),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			CONSTRAINT fk_rentals_caftan FOREIGN KEY (caftan_id) REFERENCES caftans(id),
			CONSTRAINT chk_rentals_dates CHECK (end_date > start_date)
		)
	`)
	return err
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start test database: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown test database: %v", err)
		}
	}
}

func newTestCaftan(pricePerDay float64) *domain.Caftan {
	return &domain.Caftan{
		ID:           uuid.New(),
		Name:         "Caftan Royal Fassi",
		Size:         "M",
		PricePerDay:  pricePerDay,
		ImageURL:     "https://images.caftanrent.com/royal-fassi.jpg",
		Availability: true,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestCaftanRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewCaftanRepository(testDB)

	caftan := newTestCaftan(500.00)
	if err := repo.Create(ctx, caftan); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, caftan.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}

	if found.ID != caftan.ID {
		t.Errorf("ID mismatch: expected %s, got %s", caftan.ID, found.ID)
	}
	if found.Name != caftan.Name {
		t.Errorf("Name mismatch: expected %s, got %s", caftan.Name, found.Name)
	}
	if found.Size != caftan.Size {
		t.Errorf("Size mismatch: expected %s, got %s", caftan.Size, found.Size)
	}
	if found.PricePerDay < caftan.PricePerDay-0.01 || found.PricePerDay > caftan.PricePerDay+0.01 {
		t.Errorf("PricePerDay mismatch: expected %f, got %f", caftan.PricePerDay, found.PricePerDay)
	}
	if found.ImageURL != caftan.ImageURL {
		t.Errorf("ImageURL mismatch: expected %s, got %s", caftan.ImageURL, found.ImageURL)
	}
	if found.Availability != caftan.Availability {
		t.Errorf("Availability mismatch: expected %v, got %v", caftan.Availability, found.Availability)
	}
}

func TestCaftanRepository_FindByID_NotFound(t *testing.T) {
	repo := NewCaftanRepository(testDB)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if err != ErrCaftanNotFound {
		t.Errorf("expected ErrCaftanNotFound, got %v", err)
	}
}

func TestCaftanRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewCaftanRepository(testDB)

	before, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}

	if err := repo.Create(ctx, newTestCaftan(650.00)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	after, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if after != before+1 {
		t.Errorf("expected count %d, got %d", before+1, after)
	}

	caftans, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(caftans) != after {
		t.Errorf("expected %d caftans, got %d", after, len(caftans))
	}
}
