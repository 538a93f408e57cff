package admin

import (
	"errors"
	"net/http"

	"storefront-cms/database"
	"storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"
	"storefront-cms/internal/domain/slides"
	"storefront-cms/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/admin/dashboard
// ------------------------------
func Dashboard(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"articles": &articles.Article{},
		"products": &catalog.Product{},
		"media":    &media.Media{},
		"slides":   &slides.Slide{},
		"users":    &users.User{},
	} {
		var n int64
		if err := database.DB.Model(model).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		counts[name] = n
	}
	c.JSON(http.StatusOK, counts)
}

// ------------------------------
// GET /api/admin/users
// ------------------------------
func ListUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/admin/users/:id
// ------------------------------
func GetUser(c *gin.Context) {
	var user users.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ------------------------------
// PUT /api/admin/users/:id
// ------------------------------
// Email is the account identifier and cannot change; password input is
// rehashed, everything else updates in place.
func UpdateUser(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Role     string  `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if req.Email != "" && req.Email != user.Email {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email cannot be changed for existing users"})
		return
	}
	if req.Role != "" {
		if req.Role != users.RoleAdmin && req.Role != users.RoleUser {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
		user.Role = req.Role
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		hashed := string(hashedPassword)
		user.Password = &hashed
	}

	if err := database.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ------------------------------
// DELETE /api/admin/users/:id
// ------------------------------
func DeleteUser(c *gin.Context) {
	res := database.DB.Where("id = ?", c.Param("id")).Delete(&users.User{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
