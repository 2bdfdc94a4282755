// controllers/user.go
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

func userFilter(query models.UserQuery) *gorm.DB {
	db := config.DB.Model(&models.User{})
	if query.ID != "" {
		db = db.Where("id = ?", query.ID)
	}
	if query.CompanyID != "" {
		db = db.Where("company_id = ?", query.CompanyID)
	}
	if query.Role != "" {
		db = db.Where("role = ?", query.Role)
	}
	return db
}

// passwordFromPayload pulls the plaintext password out of the raw payload.
// The User model never serializes its hash, so the field has to be read
// here rather than through decodePayload.
func passwordFromPayload(payload map[string]interface{}) (string, bool) {
	raw, present := payload["password"]
	if !present || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// GetUsers lists users filtered by the query contract fields. Role filtering
// backs the staff lookups on customer and assignment forms.
func GetUsers(c *gin.Context) {
	var query models.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	query.Normalize()

	var total int64
	if err := userFilter(query).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var users []models.User
	if err := userFilter(query).
		Order("created_at desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, models.NewPaginated(users, total))
}

// GetUser retrieves one user, optionally expanding the company relation.
func GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.DB
	if expandRequested(c, "company") {
		db = db.Preload("Company")
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser creates a staff or customer user after schema validation.
func CreateUser(c *gin.Context) {
	payload, ok := bindAndValidate(c, validation.UserSchema)
	if !ok {
		return
	}

	password, ok := passwordFromPayload(payload)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": gin.H{"password": "is required"},
		})
		return
	}

	var user models.User
	if err := decodePayload(payload, &user); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	user.Password = hashed
	if user.Role == "" {
		user.Role = models.RoleEndCustomer
	}

	var existing models.User
	if err := config.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser replaces a user with the submitted payload. The password only
// changes when the payload carries one.
func UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var existing models.User
	if err := config.DB.Where("id = ?", userID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payload, ok := bindAndValidate(c, validation.UserSchema)
	if !ok {
		return
	}

	var user models.User
	if err := decodePayload(payload, &user); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	user.Password = existing.Password

	if password, provided := passwordFromPayload(payload); provided {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}
	if user.Role == "" {
		user.Role = existing.Role
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user and returns its last representation.
func DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, user)
}
