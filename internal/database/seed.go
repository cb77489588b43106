package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"caftan-rent/internal/domain"
	"caftan-rent/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seedCaftan is one catalog entry of the bulk-load seed
type seedCaftan struct {
	name         string
	size         string
	pricePerDay  float64
	imageURL     string
	availability bool
}

var seedCatalog = []seedCaftan{
	{"Caftan Royal Fassi", "M", 500.00, "https://images.caftanrent.com/royal-fassi.jpg", true},
	{"Caftan Marocain Brodé Or", "L", 650.00, "https://images.caftanrent.com/brode-or.jpg", true},
	{"Caftan Velours Bleu Roi", "S", 450.00, "https://images.caftanrent.com/velours-bleu-roi.jpg", false},
	{"Caftan Takchita Rouge", "XL", 800.00, "https://images.caftanrent.com/takchita-rouge.jpg", true},
	{"Caftan Soie Vert Émeraude", "M", 550.00, "https://images.caftanrent.com/soie-vert-emeraude.jpg", true},
	{"Caftan Blanc Perles", "L", 700.00, "https://images.caftanrent.com/blanc-perles.jpg", true},
	{"Caftan Doré Mariée", "M", 900.00, "https://images.caftanrent.com/dore-mariee.jpg", true},
	{"Caftan Rose Poudré", "S", 480.00, "https://images.caftanrent.com/rose-poudre.jpg", true},
	{"Caftan Noir Diamants", "L", 750.00, "https://images.caftanrent.com/noir-diamants.jpg", false},
	{"Caftan Turquoise Traditionnel", "M", 520.00, "https://images.caftanrent.com/turquoise-traditionnel.jpg", true},
	{"Caftan Argenté Luxe", "L", 850.00, "https://images.caftanrent.com/argente-luxe.jpg", true},
	{"Caftan Bordeaux Velours", "M", 620.00, "https://images.caftanrent.com/bordeaux-velours.jpg", true},
	{"Caftan Violet Princesse", "S", 580.00, "https://images.caftanrent.com/violet-princesse.jpg", true},
	{"Caftan Bleu Ciel Broderie", "XL", 720.00, "https://images.caftanrent.com/bleu-ciel-broderie.jpg", true},
	{"Caftan Orange Safran", "M", 490.00, "https://images.caftanrent.com/orange-safran.jpg", true},
	{"Caftan Vert Jade", "L", 680.00, "https://images.caftanrent.com/vert-jade.jpg", true},
	{"Caftan Champagne Élégance", "M", 780.00, "https://images.caftanrent.com/champagne-elegance.jpg", true},
	{"Caftan Corail Moderne", "S", 540.00, "https://images.caftanrent.com/corail-moderne.jpg", true},
	{"Caftan Prune Royal", "L", 820.00, "https://images.caftanrent.com/prune-royal.jpg", true},
	{"Caftan Beige Tradition", "M", 560.00, "https://images.caftanrent.com/beige-tradition.jpg", true},
}

// SeedCaftans bulk-loads the caftan catalog when the table is empty.
// The catalog is read-only through the API, so this is the only write path
// for caftans.
func SeedCaftans(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	caftanRepo := repository.NewCaftanRepository(db)

	count, err := caftanRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count caftans: %w", err)
	}

	if count > 0 {
		logger.Info("Caftan catalog already seeded", zap.Int("count", count))
		return nil
	}

	for _, sc := range seedCatalog {
		caftan := &domain.Caftan{
			ID:           uuid.New(),
			Name:         sc.name,
			Size:         sc.size,
			PricePerDay:  sc.pricePerDay,
			ImageURL:     sc.imageURL,
			Availability: sc.availability,
			CreatedAt:    time.Now(),
		}

		if err := caftanRepo.Create(ctx, caftan); err != nil {
			return fmt.Errorf("failed to seed caftan %q: %w", sc.name, err)
		}
	}

	logger.Info("Caftan catalog seeded", zap.Int("count", len(seedCatalog)))
	return nil
}
