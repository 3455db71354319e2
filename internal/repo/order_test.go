package repo

import (
	"testing"

	"brewlocal/pkg/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the same error translation the
// production connection uses, so duplicate-key handling behaves identically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps every pooled connection of this test
	// on the same data while isolating tests from each other
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Seller{}, &models.Favorite{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newTestSeller(t *testing.T, db *gorm.DB, slug string) *models.Seller {
	t.Helper()

	owner := &models.User{
		Email:    slug + "@example.com",
		Password: "x",
		Name:     "Owner",
		Role:     "seller",
		IsActive: true,
	}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}

	seller := &models.Seller{
		OwnerID:       owner.ID,
		Slug:          slug,
		Name:          "Cafe " + slug,
		Specialty:     "coffee",
		WhatsAppPhone: "5511912345678",
		IsActive:      true,
	}
	if err := db.Create(seller).Error; err != nil {
		t.Fatalf("create seller: %v", err)
	}
	return seller
}

func TestFavoriteAddRemoveAddCycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	seller := newTestSeller(t, db, "cafe-do-bairro")
	userID := uuid.New()

	if err := repo.Add(userID, seller.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}

	if err := repo.Remove(userID, seller.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	favorites, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected no favorites after remove, got %d", len(favorites))
	}

	// The removed pair must not block bookmarking the same seller again
	if err := repo.Add(userID, seller.ID); err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}

	favorites, err = repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list after re-add: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected one favorite after re-add, got %d", len(favorites))
	}
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	seller := newTestSeller(t, db, "casa-matcha")
	userID := uuid.New()

	if err := repo.Add(userID, seller.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.Add(userID, seller.ID); err != nil {
		t.Fatalf("duplicate add should be tolerated: %v", err)
	}

	favorites, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected a single favorite, got %d", len(favorites))
	}
}
