// controllers/bill.go
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

func billFilter(query models.BillQuery) *gorm.DB {
	db := config.DB.Model(&models.Bill{})
	if query.ID != "" {
		db = db.Where("id = ?", query.ID)
	}
	if query.CustomerID != "" {
		db = db.Where("customer_id = ?", query.CustomerID)
	}
	if query.MeterReadingID != "" {
		db = db.Where("meter_reading_id = ?", query.MeterReadingID)
	}
	return db
}

// GetBills lists bills filtered by the query contract fields.
func GetBills(c *gin.Context) {
	var query models.BillQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	query.Normalize()

	var total int64
	if err := billFilter(query).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var bills []models.Bill
	if err := billFilter(query).
		Order("created_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}

	c.JSON(http.StatusOK, models.NewPaginated(bills, total))
}

// GetBill retrieves one bill, optionally expanding its relations.
func GetBill(c *gin.Context) {
	billID, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.DB
	if expandRequested(c, "customer") {
		db = db.Preload("Customer")
	}
	if expandRequested(c, "meter_reading") {
		db = db.Preload("MeterReading")
	}

	var bill models.Bill
	if err := db.Where("id = ?", billID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, bill)
}

// CreateBill creates a bill after schema validation.
func CreateBill(c *gin.Context) {
	payload, ok := bindAndValidate(c, validation.BillSchema)
	if !ok {
		return
	}

	var bill models.Bill
	if err := decodePayload(payload, &bill); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Create(&bill).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create bill")
		return
	}

	c.JSON(http.StatusCreated, bill)
}

// UpdateBill replaces a bill with the submitted payload.
func UpdateBill(c *gin.Context) {
	billID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var existing models.Bill
	if err := config.DB.Where("id = ?", billID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payload, ok := bindAndValidate(c, validation.BillSchema)
	if !ok {
		return
	}

	var bill models.Bill
	if err := decodePayload(payload, &bill); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	bill.ID = existing.ID
	bill.CreatedAt = existing.CreatedAt

	if err := config.DB.Save(&bill).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update bill")
		return
	}

	c.JSON(http.StatusOK, bill)
}

// DeleteBill removes a bill and returns its last representation. Deleting an
// id that does not exist is a 404.
func DeleteBill(c *gin.Context) {
	billID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var bill models.Bill
	if err := config.DB.Where("id = ?", billID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&bill).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete bill")
		return
	}

	c.JSON(http.StatusOK, bill)
}
