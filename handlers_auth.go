package main

import (
	"errors"
	"net/http"
	"strings"

	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register creates a user and logs them in immediately.
func (s *server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all fields"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all fields"})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.serverError(c, "hash password", err)
		return
	}
	user := &models.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := s.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
			return
		}
		s.serverError(c, "create user", err)
		return
	}

	token, err := generateToken([]byte(s.cfg.JWTSecret), user)
	if err != nil {
		s.serverError(c, "generate token", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

func (s *server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all fields"})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter all fields"})
		return
	}

	user, err := s.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		s.serverError(c, "lookup user", err)
		return
	}
	if !checkPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := generateToken([]byte(s.cfg.JWTSecret), user)
	if err != nil {
		s.serverError(c, "generate token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"token": token,
		"user":  user,
	})
}

// getUser returns the profile of the token's subject. The row is re-fetched so
// an account deleted after the middleware check still answers 404.
func (s *server) getUser(c *gin.Context) {
	user, err := s.store.UserByID(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		s.serverError(c, "lookup user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
