package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	existing, err := s.users.ByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(400, gin.H{"error": "User with this email already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Email:     req.Email,
		Password:  string(hashed),
		Role:      "user",
		CreatedAt: time.Now(),
	}
	if err := s.users.Insert(c.Request.Context(), user); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	user.Password = ""
	c.JSON(201, gin.H{"message": "User Registered Successfully", "user": user})
}

func (s *Server) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	user, err := s.users.ByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(400, gin.H{"error": "User Not Found"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(400, gin.H{"error": "Invalid Password"})
		return
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	role := user.Role
	if role == "" {
		role = "user"
	}
	c.JSON(200, gin.H{"message": "Login Successful", "token": token, "role": role})
}

func (s *Server) getProfile(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	user, err := s.users.ByID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	user.Password = ""
	c.JSON(200, gin.H{"message": "Profile", "userData": user})
}
