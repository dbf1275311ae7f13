// описание хэндлеров для записей о приёмах и справочников
package handlers

import (
	"log"
	"net/http"
	"vet_service/internal/middleware"
	"vet_service/internal/vet_server/dto"
	"vet_service/internal/vet_server/service"

	"github.com/gin-gonic/gin"
)

// описание интерфейса слоя хэндлеров клиники
type ClinicHandlerInterface interface {
	CreateConsultationHandler(c *gin.Context)
	DeleteConsultationHandler(c *gin.Context)
	ListConsultationsHandler(c *gin.Context)
	ListAnimalsHandler(c *gin.Context)
	ListConsultationTypesHandler(c *gin.Context)
}

// структура хэндлера клиники
type ClinicHandler struct {
	service service.ClinicServiceInterface
}

// конструктор для слоя хэндлеров клиники
func NewClinicHandler(service service.ClinicServiceInterface) *ClinicHandler {
	return &ClinicHandler{
		service: service,
	}
}

// создание записи о приёме от имени владельца сессии
func (h *ClinicHandler) CreateConsultationHandler(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, credentials not found", "success": false})
		return
	}

	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format", "success": false})
		return
	}

	// оба справочных id обязательны
	if req.ConsultationTypeID == 0 || req.AnimalTypeID == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "All required fields must be provided to create a consultation",
			"success": false,
		})
		return
	}

	created, err := h.service.CreateConsultation(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		log.Printf("create consultation failed: %v", err)
		code, apiErr := ToAPIError(err)
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Message: "Consultation created successfully",
		Success: true,
		Data:    created,
	})
}

// мягкое удаление записи о приёме (estado=false)
func (h *ClinicHandler) DeleteConsultationHandler(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, credentials not found", "success": false})
		return
	}

	var req dto.DeleteConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format", "success": false})
		return
	}

	if req.ConsultationID == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The consultation id must be provided",
			"success": false,
		})
		return
	}

	if err := h.service.DeleteConsultation(c.Request.Context(), claims.UserID, &req); err != nil {
		code, apiErr := ToAPIError(err)
		if code == http.StatusInternalServerError {
			log.Printf("delete consultation failed: %v", err)
		}
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Consultation deleted successfully",
		Success: true,
	})
}

// список активных приёмов владельца сессии (с именами из справочников)
func (h *ClinicHandler) ListConsultationsHandler(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, credentials not found", "success": false})
		return
	}

	consultations, err := h.service.ListConsultations(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("list consultations failed: %v", err)
		code, apiErr := ToAPIError(err)
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Message: "Consultations fetched successfully",
		Success: true,
		Data:    consultations,
	})
}

// полный справочник типов животных
func (h *ClinicHandler) ListAnimalsHandler(c *gin.Context) {
	animals, err := h.service.ListAnimals(c.Request.Context())
	if err != nil {
		log.Printf("list animals failed: %v", err)
		code, apiErr := ToAPIError(err)
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Message: "Animals fetched successfully",
		Success: true,
		Data:    animals,
	})
}

// полный справочник типов приёмов
func (h *ClinicHandler) ListConsultationTypesHandler(c *gin.Context) {
	types, err := h.service.ListConsultationTypes(c.Request.Context())
	if err != nil {
		log.Printf("list consultation types failed: %v", err)
		code, apiErr := ToAPIError(err)
		c.JSON(code, gin.H{"success": false, "error": apiErr})
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Message: "Consultation types fetched successfully",
		Success: true,
		Data:    types,
	})
}
