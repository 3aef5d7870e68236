package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/imaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/storage"
)

const (
	minServiceDuration = 15
	maxServiceDuration = 480
)

type ServiceHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
	audit    *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, uploader *storage.S3Uploader, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: uploader, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

// ListPublic expõe só os serviços ativos (catálogo do cliente)
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.DurationMinutes < minServiceDuration || req.DurationMinutes > maxServiceDuration {
		httperr.UnprocessableField(c, "duration_minutes",
			fmt.Sprintf("Duração deve estar entre %d e %d minutos.", minServiceDuration, maxServiceDuration))
		return
	}

	service := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	writeAudit(c, h.audit, "service_created", "service", &service.ID, map[string]any{
		"name":             service.Name,
		"duration_minutes": service.DurationMinutes,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.DurationMinutes != nil &&
		(*req.DurationMinutes < minServiceDuration || *req.DurationMinutes > maxServiceDuration) {

		httperr.UnprocessableField(c, "duration_minutes",
			fmt.Sprintf("Duração deve estar entre %d e %d minutos.", minServiceDuration, maxServiceDuration))
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	writeAudit(c, h.audit, "service_updated", "service", &service.ID, req)

	c.JSON(http.StatusOK, service)
}

// UploadImage recebe multipart "image" (jpeg/png), converte para webp e
// publica no bucket
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_not_configured", "Upload de imagem desabilitado.")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}
	defer src.Close()

	data, err := imaging.ToWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use jpeg ou png).")
		return
	}

	key := fmt.Sprintf("services/%d.webp", service.ID)
	url, err := h.uploader.UploadWebP(c.Request.Context(), key, data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	writeAudit(c, h.audit, "service_image_uploaded", "service", &service.ID, map[string]any{
		"key": key,
		"url": url,
	})

	c.JSON(http.StatusOK, service)
}
