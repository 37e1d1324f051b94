package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"acuario/internal/models"
	"acuario/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{Service: service}
}

// @Summary      Enviar formulario de contacto
// @Description  Valida el formulario, verifica el captcha y guarda el lead
// @Tags         Contacto
// @Accept       json
// @Produce      json
// @Param        contacto  body      models.ContactRequest  true  "Datos del formulario"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]interface{}
// @Failure      500       {object}  map[string]string
// @Router       /contacto [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"details": []string{err.Error()},
		})
		return
	}
	// сначала trim, потом валидация — длины меряем по тому, что сохраняем
	req.Normalize()
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"details": bindingDetails(err),
		})
		return
	}

	contact := &models.Contact{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	}

	if err := h.Service.Submit(contact, req.Captcha); err != nil {
		if errors.Is(err, services.ErrCaptchaFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Captcha inválido"})
			return
		}
		log.Printf("[contact][submit] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mensaje guardado correctamente"})
}
