// controllers/company.go
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

func companyFilter(query models.CompanyQuery) *gorm.DB {
	db := config.DB.Model(&models.Company{})
	if query.ID != "" {
		db = db.Where("id = ?", query.ID)
	}
	return db
}

// GetCompanies lists companies.
func GetCompanies(c *gin.Context) {
	var query models.CompanyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	query.Normalize()

	var total int64
	if err := companyFilter(query).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var companies []models.Company
	if err := companyFilter(query).
		Order("created_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&companies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve companies")
		return
	}

	c.JSON(http.StatusOK, models.NewPaginated(companies, total))
}

// GetCompany retrieves one company, optionally expanding its users.
func GetCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.DB
	if expandRequested(c, "user") {
		db = db.Preload("Users")
	}

	var company models.Company
	if err := db.Where("id = ?", companyID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, company)
}

// CreateCompany creates a company after schema validation.
func CreateCompany(c *gin.Context) {
	payload, ok := bindAndValidate(c, validation.CompanySchema)
	if !ok {
		return
	}

	var company models.Company
	if err := decodePayload(payload, &company); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Create(&company).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create company")
		return
	}

	c.JSON(http.StatusCreated, company)
}

// UpdateCompany replaces a company with the submitted payload.
func UpdateCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var existing models.Company
	if err := config.DB.Where("id = ?", companyID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payload, ok := bindAndValidate(c, validation.CompanySchema)
	if !ok {
		return
	}

	var company models.Company
	if err := decodePayload(payload, &company); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	company.ID = existing.ID
	company.CreatedAt = existing.CreatedAt

	if err := config.DB.Save(&company).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany removes a company and returns its last representation.
func DeleteCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var company models.Company
	if err := config.DB.Where("id = ?", companyID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&company).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete company")
		return
	}

	c.JSON(http.StatusOK, company)
}
