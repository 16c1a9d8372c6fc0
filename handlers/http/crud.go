package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"content-server/entities"
	"content-server/usecases"

	"github.com/gin-gonic/gin"
)

// CrudHandler exposes one record kind's use case as the five standard routes.
// It is instantiated once per generic record kind; the users table gets its
// own handler because of password hashing.
type CrudHandler[T any, PT entities.RecordOf[T]] struct {
	useCase *usecases.CrudUseCase[T, PT]
}

func NewCrudHandler[T any, PT entities.RecordOf[T]](useCase *usecases.CrudUseCase[T, PT]) *CrudHandler[T, PT] {
	return &CrudHandler[T, PT]{useCase: useCase}
}

// RegisterRoutes binds POST, GET (list), GET /:id, PUT /:id and DELETE /:id
// on the given group.
func (h *CrudHandler[T, PT]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.GetAll)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *CrudHandler[T, PT]) Create(c *gin.Context) {
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.Create(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *CrudHandler[T, PT]) GetAll(c *gin.Context) {
	recs, err := h.useCase.GetAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recs)
}

func (h *CrudHandler[T, PT]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.useCase.Get(id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *CrudHandler[T, PT]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.useCase.Update(id, &rec)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CrudHandler[T, PT]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Record deleted",
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
