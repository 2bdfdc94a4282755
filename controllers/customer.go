// controllers/customer.go
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

func customerFilter(query models.CustomerQuery) *gorm.DB {
	db := config.DB.Model(&models.Customer{})
	if query.ID != "" {
		db = db.Where("id = ?", query.ID)
	}
	if query.UserID != "" {
		db = db.Where("user_id = ?", query.UserID)
	}
	if query.AccountManagerID != "" {
		db = db.Where("account_manager_id = ?", query.AccountManagerID)
	}
	if query.MeterReaderID != "" {
		db = db.Where("meter_reader_id = ?", query.MeterReaderID)
	}
	return db
}

func fillCustomerCounts(customer *models.Customer) {
	counts := &models.CustomerCounts{}
	config.DB.Model(&models.Assignment{}).Where("customer_id = ?", customer.ID).Count(&counts.Assignment)
	config.DB.Model(&models.Bill{}).Where("customer_id = ?", customer.ID).Count(&counts.Bill)
	config.DB.Model(&models.MeterReading{}).Where("customer_id = ?", customer.ID).Count(&counts.MeterReading)
	customer.Counts = counts
}

// GetCustomers lists customers filtered by the query contract fields.
func GetCustomers(c *gin.Context) {
	var query models.CustomerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	query.Normalize()

	var total int64
	if err := customerFilter(query).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var customers []models.Customer
	if err := customerFilter(query).
		Order("created_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	for i := range customers {
		fillCustomerCounts(&customers[i])
	}

	c.JSON(http.StatusOK, models.NewPaginated(customers, total))
}

// GetCustomer retrieves one customer, optionally expanding its relations.
// The three user relations are expanded individually since they are distinct
// foreign keys into the same table.
func GetCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.DB
	if expandRequested(c, "user") {
		db = db.Preload("User")
	}
	if expandRequested(c, "account_manager") {
		db = db.Preload("AccountManager")
	}
	if expandRequested(c, "meter_reader") {
		db = db.Preload("MeterReader")
	}
	if expandRequested(c, "assignment") {
		db = db.Preload("Assignments")
	}
	if expandRequested(c, "bill") {
		db = db.Preload("Bills")
	}
	if expandRequested(c, "meter_reading") {
		db = db.Preload("MeterReadings")
	}

	var customer models.Customer
	if err := db.Where("id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	fillCustomerCounts(&customer)

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer creates a customer after schema validation.
func CreateCustomer(c *gin.Context) {
	payload, ok := bindAndValidate(c, validation.CustomerSchema)
	if !ok {
		return
	}

	var customer models.Customer
	if err := decodePayload(payload, &customer); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer replaces a customer with the submitted payload.
func UpdateCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var existing models.Customer
	if err := config.DB.Where("id = ?", customerID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payload, ok := bindAndValidate(c, validation.CustomerSchema)
	if !ok {
		return
	}

	var customer models.Customer
	if err := decodePayload(payload, &customer); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer and returns its last representation.
func DeleteCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}
