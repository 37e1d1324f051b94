package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"acuario/internal/middleware"
	"acuario/internal/models"
	"acuario/internal/repositories"
	"acuario/internal/services"
)

type AuthHandler struct {
	service   *services.AuthService
	jwtSecret []byte
}

func NewAuthHandler(service *services.AuthService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{service: service, jwtSecret: jwtSecret}
}

// @Summary      Registro de usuario
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        registro  body      models.RegisterRequest  true  "Datos de registro"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]interface{}
// @Failure      500       {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"details": []string{err.Error()},
		})
		return
	}
	req.Normalize()
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"details": bindingDetails(err),
		})
		return
	}

	email := req.Email
	_, err := h.service.Register(req.FullName, email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El correo ya está registrado"})
			return
		}
		log.Printf("[auth][register] failed for email=%q: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}

	log.Printf("[auth][register] user created email=%q", email)
	c.JSON(http.StatusOK, gin.H{"message": "Usuario creado correctamente"})
}

// @Summary      Inicio de sesión
// @Description  Autentica al usuario y devuelve un token de acceso (1h)
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credenciales"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"details": bindingDetails(err),
		})
		return
	}

	email := strings.TrimSpace(req.Email)
	user, err := h.service.Login(email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// одинаковый ответ для "нет такого" и "пароль не тот"
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Correo o contraseña incorrectos"})
			return
		}
		log.Printf("[auth][login] failed for email=%q: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, user)
	if err != nil {
		log.Printf("[auth][login] sign token failed for userID=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}

	log.Printf("[auth][login] success userID=%d role=%d", user.ID, user.RoleID)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
