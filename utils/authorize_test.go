package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pngbilling-backend/models"

	"github.com/gin-gonic/gin"
)

func roleRouter(role, action string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
	})
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	switch action {
	case "read":
		r.GET("/api/:resource/:id", RequireAccess("read"), handler)
	case "update":
		r.PUT("/api/:resource/:id", RequireAccess("update"), handler)
	case "delete":
		r.DELETE("/api/:resource/:id", RequireAccess("delete"), handler)
	}
	return r
}

func TestRequireAccess(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		method   string
		action   string
		path     string
		expected int
	}{
		{"owner deletes bills", models.RoleBusinessOwner, http.MethodDelete, "delete", "/api/bills/b1", http.StatusOK},
		{"account manager updates customers", models.RoleAccountManager, http.MethodPut, "update", "/api/customers/c1", http.StatusOK},
		{"meter reader reads bills", models.RoleMeterReader, http.MethodGet, "read", "/api/bills/b1", http.StatusOK},
		{"meter reader updates meter readings", models.RoleMeterReader, http.MethodPut, "update", "/api/meter-readings/m1", http.StatusOK},
		{"meter reader cannot update bills", models.RoleMeterReader, http.MethodPut, "update", "/api/bills/b1", http.StatusForbidden},
		{"end customer cannot delete", models.RoleEndCustomer, http.MethodDelete, "delete", "/api/bills/b1", http.StatusForbidden},
		{"end customer reads meter readings", models.RoleEndCustomer, http.MethodGet, "read", "/api/meter-readings/m1", http.StatusOK},
		{"unknown role denied", "intern", http.MethodGet, "read", "/api/bills/b1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := roleRouter(tt.role, tt.action)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expected {
				t.Errorf("%s %s as %s: got %d, expected %d",
					tt.method, tt.path, tt.role, w.Code, tt.expected)
			}
		})
	}
}

func TestRequireAccessNoRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bills", RequireAccess("read"), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/bills", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a role claim, got %d", w.Code)
	}
}
