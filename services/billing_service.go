// services/billing_service.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"pngbilling-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const defaultTariffPerUnit = 45

type BillingService struct {
	db     *gorm.DB
	tariff int64
}

func NewBillingService(db *gorm.DB) *BillingService {
	tariff := int64(defaultTariffPerUnit)
	if env := os.Getenv("TARIFF_PER_UNIT"); env != "" {
		if t, err := strconv.ParseInt(env, 10, 64); err == nil && t > 0 {
			tariff = t
		}
	}

	return &BillingService{
		db:     db,
		tariff: tariff,
	}
}

func (s *BillingService) StartScheduler() {
	c := cron.New()

	// Run every day at 1 AM
	c.AddFunc("0 1 * * *", s.GenerateBills)

	c.Start()
	log.Println("Billing scheduler started")
}

// ComputeBillAmount prices a reading at the flat per-unit tariff.
func ComputeBillAmount(readingValue, tariff int64) int64 {
	return readingValue * tariff
}

// GenerateBills creates a Bill for every meter reading that has a value but
// no bill yet, marking the reading calculated. One transaction per reading
// so a single failure does not roll back the whole run.
func (s *BillingService) GenerateBills() {
	log.Println("Starting bill generation run...")

	var readings []models.MeterReading
	if err := s.db.
		Where("bill_calculated = ? AND reading_value IS NOT NULL", false).
		Find(&readings).Error; err != nil {
		log.Printf("Failed to fetch unbilled readings: %v", err)
		return
	}

	generated := 0
	for i := range readings {
		if err := s.generateBill(&readings[i]); err != nil {
			log.Printf("Reading %s: failed to generate bill: %v", readings[i].ID, err)
			continue
		}
		generated++
	}

	log.Printf("Bill generation completed: %d of %d readings billed", generated, len(readings))
}

func (s *BillingService) generateBill(reading *models.MeterReading) error {
	amount := ComputeBillAmount(*reading.ReadingValue, s.tariff)
	now := models.Date(time.Now())
	paid := false

	return s.db.Transaction(func(tx *gorm.DB) error {
		bill := models.Bill{
			CustomerID:     reading.CustomerID,
			MeterReadingID: reading.ID,
			BillDate:       &now,
			BillAmount:     &amount,
			BillPaid:       &paid,
		}
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}

		reading.BillCalculated = true
		reading.BillAmount = &amount
		return tx.Save(reading).Error
	})
}
