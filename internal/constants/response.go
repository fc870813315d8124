package constants

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq-id/bootcamp-api/pkg/listquery"
)

// Standard response field keys
const (
	ResponseFieldSuccess    = "success"
	ResponseFieldData       = "data"
	ResponseFieldMsg        = "msg"
	ResponseFieldCount      = "count"
	ResponseFieldPagination = "pagination"
	ResponseFieldError      = "error"
	ResponseFieldToken      = "token"
)

// BuildListResponse shapes a paginated list result. Count is the size of the
// returned page, not the filtered total.
func BuildListResponse(count int, pagination listquery.Meta, data any) gin.H {
	return gin.H{
		ResponseFieldSuccess:    true,
		ResponseFieldCount:      count,
		ResponseFieldPagination: pagination,
		ResponseFieldData:       data,
	}
}

// BuildCountResponse shapes an unpaginated list result.
func BuildCountResponse(count int, data any) gin.H {
	return gin.H{
		ResponseFieldSuccess: true,
		ResponseFieldCount:   count,
		ResponseFieldData:    data,
	}
}

func BuildDataResponse(data any) gin.H {
	return gin.H{
		ResponseFieldSuccess: true,
		ResponseFieldData:    data,
	}
}

// BuildEntityResponse shapes a single-entity fetch. The entity travels under
// the msg key for compatibility with existing clients.
func BuildEntityResponse(entity any) gin.H {
	return gin.H{
		ResponseFieldSuccess: true,
		ResponseFieldMsg:     entity,
	}
}

func BuildTokenResponse(token string) gin.H {
	return gin.H{
		ResponseFieldSuccess: true,
		ResponseFieldToken:   token,
	}
}

// BuildErrorResponse is the single error shape every failed request gets.
func BuildErrorResponse(message string) gin.H {
	return gin.H{
		ResponseFieldSuccess: false,
		ResponseFieldError:   message,
	}
}
