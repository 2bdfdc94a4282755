// controllers/assignment.go
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

func assignmentFilter(query models.AssignmentQuery) *gorm.DB {
	db := config.DB.Model(&models.Assignment{})
	if query.ID != "" {
		db = db.Where("id = ?", query.ID)
	}
	if query.CustomerID != "" {
		db = db.Where("customer_id = ?", query.CustomerID)
	}
	if query.AccountManagerID != "" {
		db = db.Where("account_manager_id = ?", query.AccountManagerID)
	}
	if query.MeterReaderID != "" {
		db = db.Where("meter_reader_id = ?", query.MeterReaderID)
	}
	return db
}

// GetAssignments lists assignments filtered by the query contract fields.
func GetAssignments(c *gin.Context) {
	var query models.AssignmentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	query.Normalize()

	var total int64
	if err := assignmentFilter(query).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var assignments []models.Assignment
	if err := assignmentFilter(query).
		Order("created_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&assignments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve assignments")
		return
	}

	c.JSON(http.StatusOK, models.NewPaginated(assignments, total))
}

// GetAssignment retrieves one assignment, optionally expanding its
// relations.
func GetAssignment(c *gin.Context) {
	assignmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.DB
	if expandRequested(c, "customer") {
		db = db.Preload("Customer")
	}
	if expandRequested(c, "account_manager") {
		db = db.Preload("AccountManager")
	}
	if expandRequested(c, "meter_reader") {
		db = db.Preload("MeterReader")
	}

	var assignment models.Assignment
	if err := db.Where("id = ?", assignmentID).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Assignment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CreateAssignment creates an assignment after schema validation.
func CreateAssignment(c *gin.Context) {
	payload, ok := bindAndValidate(c, validation.AssignmentSchema)
	if !ok {
		return
	}

	var assignment models.Assignment
	if err := decodePayload(payload, &assignment); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Create(&assignment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create assignment")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment replaces an assignment with the submitted payload.
func UpdateAssignment(c *gin.Context) {
	assignmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var existing models.Assignment
	if err := config.DB.Where("id = ?", assignmentID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Assignment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payload, ok := bindAndValidate(c, validation.AssignmentSchema)
	if !ok {
		return
	}

	var assignment models.Assignment
	if err := decodePayload(payload, &assignment); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	assignment.ID = existing.ID
	assignment.CreatedAt = existing.CreatedAt

	if err := config.DB.Save(&assignment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment removes an assignment and returns its last
// representation.
func DeleteAssignment(c *gin.Context) {
	assignmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var assignment models.Assignment
	if err := config.DB.Where("id = ?", assignmentID).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Assignment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&assignment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}
