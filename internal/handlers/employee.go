package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/staffdir/internal/models"
	"github.com/alimgiray/staffdir/internal/services"
	"github.com/alimgiray/staffdir/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
	exportService   *services.ExportService
}

type createEmployeeRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	PictureURL string `json:"pictureUrl" binding:"omitempty,url"`
	JobTitle   string `json:"jobTitle" binding:"required"`
	Department string `json:"department" binding:"required"`
	Location   string `json:"location" binding:"required"`
}

type updateEmployeeRequest struct {
	FirstName  *string `json:"firstName" binding:"omitempty,min=1"`
	LastName   *string `json:"lastName" binding:"omitempty,min=1"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	PictureURL *string `json:"pictureUrl" binding:"omitempty,url"`
	JobTitle   *string `json:"jobTitle" binding:"omitempty,min=1"`
	Department *string `json:"department" binding:"omitempty,min=1"`
	Location   *string `json:"location" binding:"omitempty,min=1"`
}

type listEmployeesQuery struct {
	Department string `form:"department"`
	Title      string `form:"title"`
	Location   string `form:"location"`
	Search     string `form:"search"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	Limit      int    `form:"limit,default=10" binding:"min=1,max=100"`
}

func NewEmployeeHandler(employeeService *services.EmployeeService, exportService *services.ExportService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		exportService:   exportService,
	}
}

// Create handles POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(&models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		PictureURL: req.PictureURL,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Location:   req.Location,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// List handles GET /api/employees. The service returns the full filtered
// result set; pagination is applied here.
func (h *EmployeeHandler) List(c *gin.Context) {
	var query listEmployeesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employees, err := h.employeeService.Find(&models.EmployeeFilter{
		Department: query.Department,
		Title:      query.Title,
		Location:   query.Location,
		Search:     query.Search,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	totalItems := len(employees)
	totalPages := (totalItems + query.Limit - 1) / query.Limit

	start := (query.Page - 1) * query.Limit
	if start > totalItems {
		start = totalItems
	}
	end := start + query.Limit
	if end > totalItems {
		end = totalItems
	}

	page := employees[start:end]
	if page == nil {
		page = []*models.Employee{}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalItems":  totalItems,
		"data":        page,
		"currentPage": query.Page,
		"totalPages":  totalPages,
	})
}

// Get handles GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.FindOne(id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Update handles PATCH /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Update(id, &models.EmployeeUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		PictureURL: req.PictureURL,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Location:   req.Location,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.employeeID(c)
	if !ok {
		return
	}

	if err := h.employeeService.Remove(id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Export handles GET /api/employees/export, streaming the directory as an
// Excel workbook. The same filter parameters as List apply; pagination does not.
func (h *EmployeeHandler) Export(c *gin.Context) {
	var query listEmployeesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employees, err := h.employeeService.Find(&models.EmployeeFilter{
		Department: query.Department,
		Title:      query.Title,
		Location:   query.Location,
		Search:     query.Search,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	workbook, err := h.exportService.BuildWorkbook(employees)
	if err != nil {
		logger.WithError(err).Errorf("Failed to build employee export workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		logger.WithError(err).Errorf("Failed to serialize employee export workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.exportService.ExportFilename()+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// employeeID validates the :id path parameter as a UUID
func (h *EmployeeHandler) employeeID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return "", false
	}
	return id, true
}

// writeServiceError maps typed service errors to HTTP statuses
func (h *EmployeeHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDirectoryUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.WithError(err).Errorf("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
