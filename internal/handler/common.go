package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Validatable is implemented by request bodies with ozzo-validation rules.
type Validatable interface {
	Validate() error
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	if v, ok := obj.(Validatable); ok {
		if err := v.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"fields": err,
			})
			return err
		}
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	if v, ok := obj.(Validatable); ok {
		if err := v.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"fields": err,
			})
			return err
		}
	}
	return nil
}

// ParamID reads a positive integer path parameter and writes a 400 when it
// is missing or malformed.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

func respond(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
