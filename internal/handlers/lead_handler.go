package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"acuario/internal/models"
	"acuario/internal/repositories"
	"acuario/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// @Summary      Listar leads
// @Description  Página de leads ordenados por fecha de creación descendente
// @Tags         Leads
// @Produce      json
// @Param        page   query     int  false  "Página (por defecto 1)"
// @Param        limit  query     int  false  "Tamaño de página (por defecto 10)"
// @Success      200    {object}  map[string]interface{}
// @Failure      500    {object}  map[string]string
// @Security     BearerAuth
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	leads, pagination, err := h.Service.List(page, limit)
	if err != nil {
		log.Printf("[leads][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error al obtener leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       leads,
		"pagination": pagination,
	})
}

// @Summary      Obtener un lead
// @Tags         Leads
// @Produce      json
// @Param        id   path      int  true  "ID del lead"
// @Success      200  {object}  models.Contact
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Lead no encontrado"})
		return
	}

	lead, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensaje": "Lead no encontrado"})
			return
		}
		log.Printf("[leads][get] id=%d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error del servidor"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// @Summary      Actualizar estado de un lead
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id      path      int                        true  "ID del lead"
// @Param        estado  body      models.UpdateStateRequest  true  "Nuevo estado"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Security     BearerAuth
// @Router       /leads/{id}/state [put]
func (h *LeadHandler) UpdateState(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Lead no encontrado."})
		return
	}

	var req models.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "El campo id_state_id es obligatorio."})
		return
	}

	if err := h.Service.UpdateState(id, req.StateID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensaje": "Lead no encontrado."})
			return
		}
		log.Printf("[leads][state] id=%d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error interno del servidor."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Estado actualizado correctamente."})
}

// @Summary      Listar estados de lead
// @Tags         Leads
// @Produce      json
// @Success      200  {array}   models.State
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /states [get]
func (h *LeadHandler) States(c *gin.Context) {
	states, err := h.Service.States()
	if err != nil {
		log.Printf("[leads][states] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error al obtener estados"})
		return
	}
	c.JSON(http.StatusOK, states)
}
