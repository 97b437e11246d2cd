package database

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/tiendahq/tienda/pkg/metrics"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type txRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func newTxDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&txRow{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func transactionSamples(t *testing.T) uint64 {
	t.Helper()

	h, err := metrics.DBQueryDuration.GetMetricWithLabelValues("custom", "transaction")
	if err != nil {
		t.Fatalf("get histogram: %v", err)
	}
	pb := &dto.Metric{}
	if err := h.(prometheus.Metric).Write(pb); err != nil {
		t.Fatalf("read histogram: %v", err)
	}
	return pb.GetHistogram().GetSampleCount()
}

func TestTransactionCommits(t *testing.T) {
	db := newTxDB(t)
	before := transactionSamples(t)

	err := Transaction(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&txRow{Name: "kept"}).Error
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	var count int64
	if err := db.Model(&txRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 committed row, got %d", count)
	}

	if got := transactionSamples(t); got != before+1 {
		t.Errorf("expected one new duration sample, went from %d to %d", before, got)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := newTxDB(t)
	boom := errors.New("boom")

	err := Transaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&txRow{Name: "discarded"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to surface, got %v", err)
	}

	var count int64
	if err := db.Model(&txRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to discard the row, found %d", count)
	}
}

func TestPoolLabel(t *testing.T) {
	db := newTxDB(t)
	if got := poolLabel(db); got != "custom" {
		t.Errorf("non-global pool should label as custom, got %q", got)
	}

	prevPublic := Public
	Public = db
	defer func() { Public = prevPublic }()

	if got := poolLabel(db); got != "public" {
		t.Errorf("public pool should label as public, got %q", got)
	}
}
