// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"pngbilling-backend/models"
	"pngbilling-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const defaultReminderAfterDays = 15

type ReminderService struct {
	db        *gorm.DB
	client    *twilio.RestClient
	afterDays int
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	afterDays := defaultReminderAfterDays
	if env := os.Getenv("REMINDER_AFTER_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			afterDays = d
		}
	}

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		afterDays: afterDays,
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendPaymentReminders)

	c.Start()
	log.Println("Payment reminder scheduler started")
}

// SendPaymentReminders texts the account holder of every unpaid bill older
// than the configured cutoff. Send failures are logged and skipped.
func (s *ReminderService) SendPaymentReminders() {
	log.Println("Starting payment reminder processing...")

	cutoff := utils.BeginningOfDay(time.Now().AddDate(0, 0, -s.afterDays))

	var bills []models.Bill
	if err := s.db.
		Preload("Customer.User").
		Where("bill_paid = ? AND bill_date < ?", false, cutoff).
		Find(&bills).Error; err != nil {
		log.Printf("Failed to fetch overdue bills: %v", err)
		return
	}

	sent := 0
	for _, bill := range bills {
		if s.sendReminder(bill) {
			sent++
		}
	}

	log.Printf("Payment reminder processing completed: %d of %d sent", sent, len(bills))
}

func (s *ReminderService) sendReminder(bill models.Bill) bool {
	if bill.Customer == nil || bill.Customer.User == nil {
		log.Printf("Bill %s: no account holder to notify", bill.ID)
		return false
	}

	phone := bill.Customer.User.Phone
	if !utils.ValidatePhone(phone) {
		log.Printf("Bill %s: account holder has no usable phone number", bill.ID)
		return false
	}

	amount := int64(0)
	if bill.BillAmount != nil {
		amount = *bill.BillAmount
	}
	overdueDays := 0
	if bill.BillDate != nil {
		overdueDays = utils.DaysBetween(time.Time(*bill.BillDate), time.Now())
	}
	message := fmt.Sprintf(
		"Your utility bill of %d is %d days overdue. Please pay at your earliest convenience.",
		amount, overdueDays)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Bill %s: failed to send reminder to %s: %v", bill.ID, phone, err)
		return false
	}

	log.Printf("Bill %s: payment reminder sent to %s", bill.ID, phone)
	return true
}
