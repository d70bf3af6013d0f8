package services

import (
	"testing"

	"luxeledger/internal/models"
	"luxeledger/internal/testutil"
)

func TestSeedDefaults(t *testing.T) {
	t.Run("seeds empty catalog once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		n, err := svc.SeedDefaults()
		testutil.AssertNoError(t, err)
		if n != len(DefaultCategories) {
			t.Errorf("expected %d seeded, got %d", len(DefaultCategories), n)
		}

		n, err = svc.SeedDefaults()
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("expected second seed to be a no-op, got %d", n)
		}
	})

	t.Run("skips when custom categories exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		n, err := svc.SeedDefaults()
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("expected no seeding, got %d", n)
		}
	})
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	_, err := svc.SeedDefaults()
	testutil.AssertNoError(t, err)

	all, err := svc.ListCategories(nil)
	testutil.AssertNoError(t, err)
	if len(all) != len(DefaultCategories) {
		t.Fatalf("expected %d categories, got %d", len(DefaultCategories), len(all))
	}

	income := models.CategoryTypeIncome
	incomeOnly, err := svc.ListCategories(&income)
	testutil.AssertNoError(t, err)
	if len(incomeOnly) != 4 {
		t.Errorf("expected 4 income categories, got %d", len(incomeOnly))
	}
	for _, c := range incomeOnly {
		if c.Type != models.CategoryTypeIncome {
			t.Errorf("expected only income, got %s", c.Type)
		}
	}
}

func TestCreateCategory(t *testing.T) {
	t.Run("valid with defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory("  Pets ", models.CategoryTypeExpense, "", "")
		testutil.AssertNoError(t, err)

		if cat.ID == "" {
			t.Fatal("expected category ID")
		}
		if cat.Name != "Pets" {
			t.Errorf("expected trimmed name Pets, got %q", cat.Name)
		}
		if cat.Color != models.DefaultCategoryColor {
			t.Errorf("expected default color, got %s", cat.Color)
		}
	})

	t.Run("duplicate name in same type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Gifts", models.CategoryTypeExpense, "🎁", "#ff0000")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory("Gifts", models.CategoryTypeExpense, "🎁", "#ff0000")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same name in other type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Gifts", models.CategoryTypeExpense, "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory("Gifts", models.CategoryTypeIncome, "", "")
		testutil.AssertNoError(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("   ", models.CategoryTypeExpense, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("bad type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Loan", models.CategoryType("liability"), "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestIconFor(t *testing.T) {
	if icon, color := IconFor(DefaultCategories, "Food", models.TransactionTypeExpense); icon != "🍕" || color != "#ec4899" {
		t.Errorf("unexpected %s %s", icon, color)
	}
	// Category namespaces are per type.
	if icon, _ := IconFor(DefaultCategories, "Food", models.TransactionTypeIncome); icon != models.FallbackCategoryIcon {
		t.Errorf("expected fallback, got %s", icon)
	}
	if icon, _ := IconFor(DefaultCategories, "Crypto winnings", models.TransactionTypeIncome); icon != models.FallbackCategoryIcon {
		t.Errorf("expected fallback, got %s", icon)
	}
}
