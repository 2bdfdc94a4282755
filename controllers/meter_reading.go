// controllers/meter_reading.go
package controllers

import (
	"errors"
	"net/http"

	"pngbilling-backend/config"
	"pngbilling-backend/models"
	"pngbilling-backend/utils"
	"pngbilling-backend/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func meterReadingFilter(query models.MeterReadingQuery) *gorm.DB {
	db := config.DB.Model(&models.MeterReading{})
	if query.ID != "" {
		db = db.Where("id = ?", query.ID)
	}
	if query.CustomerID != "" {
		db = db.Where("customer_id = ?", query.CustomerID)
	}
	return db
}

func fillMeterReadingCounts(reading *models.MeterReading) {
	var bills int64
	config.DB.Model(&models.Bill{}).Where("meter_reading_id = ?", reading.ID).Count(&bills)
	reading.Counts = &models.MeterReadingCounts{Bill: bills}
}

// GetMeterReadings lists meter readings filtered by the query contract
// fields.
func GetMeterReadings(c *gin.Context) {
	var query models.MeterReadingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	query.Normalize()

	var total int64
	if err := meterReadingFilter(query).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var readings []models.MeterReading
	if err := meterReadingFilter(query).
		Order("created_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&readings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve meter readings")
		return
	}

	for i := range readings {
		fillMeterReadingCounts(&readings[i])
	}

	c.JSON(http.StatusOK, models.NewPaginated(readings, total))
}

// GetMeterReading retrieves one meter reading, optionally expanding its
// relations.
func GetMeterReading(c *gin.Context) {
	readingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.DB
	if expandRequested(c, "customer") {
		db = db.Preload("Customer")
	}
	if expandRequested(c, "bill") {
		db = db.Preload("Bills")
	}

	var reading models.MeterReading
	if err := db.Where("id = ?", readingID).First(&reading).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Meter reading not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	fillMeterReadingCounts(&reading)

	c.JSON(http.StatusOK, reading)
}

// CreateMeterReading creates a meter reading after schema validation.
func CreateMeterReading(c *gin.Context) {
	payload, ok := bindAndValidate(c, validation.MeterReadingSchema)
	if !ok {
		return
	}

	var reading models.MeterReading
	if err := decodePayload(payload, &reading); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Create(&reading).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create meter reading")
		return
	}

	c.JSON(http.StatusCreated, reading)
}

// UpdateMeterReading replaces a meter reading with the submitted payload.
func UpdateMeterReading(c *gin.Context) {
	readingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var existing models.MeterReading
	if err := config.DB.Where("id = ?", readingID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Meter reading not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payload, ok := bindAndValidate(c, validation.MeterReadingSchema)
	if !ok {
		return
	}

	var reading models.MeterReading
	if err := decodePayload(payload, &reading); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	reading.ID = existing.ID
	reading.CreatedAt = existing.CreatedAt

	if err := config.DB.Save(&reading).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update meter reading")
		return
	}

	c.JSON(http.StatusOK, reading)
}

// DeleteMeterReading removes a meter reading and returns its last
// representation.
func DeleteMeterReading(c *gin.Context) {
	readingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var reading models.MeterReading
	if err := config.DB.Where("id = ?", readingID).First(&reading).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Meter reading not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&reading).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete meter reading")
		return
	}

	c.JSON(http.StatusOK, reading)
}
