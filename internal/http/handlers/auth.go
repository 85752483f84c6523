package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	intconfig "railway/internal/config"
	"railway/internal/http/middleware"
	"railway/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contactNumber"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func signToken(userID int64, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(intconfig.JWTSecret())
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondFailure(c, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	users := repositories.UserRepository{DB: intconfig.DB}

	exists, err := users.EmailExists(req.Email)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Server error")
		return
	}
	if exists {
		respondFailure(c, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Server error")
		return
	}

	id, err := users.Create(req.Name, req.Email, string(hash), req.ContactNumber)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := signToken(id, req.Email)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user": gin.H{
			"id":    id,
			"name":  req.Name,
			"email": req.Email,
		},
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	users := repositories.UserRepository{DB: intconfig.DB}

	user, hash, err := users.GetCredentials(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondFailure(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondFailure(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondFailure(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := signToken(user.ID, user.Email)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// GET /api/auth/profile
func Profile(c *gin.Context) {
	users := repositories.UserRepository{DB: intconfig.DB}

	user, err := users.GetByID(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondFailure(c, http.StatusNotFound, "User not found")
			return
		}
		respondFailure(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
