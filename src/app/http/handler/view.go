package handler

import (
	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/dto"
	"jokeshare/src/app/middleware"
)

// view adds the data every page layout needs to data.
func view(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["User"] = middleware.GetCurrentUser(c)
	return data
}

// withAction copies a rejected submission into page data.
func withAction(data gin.H, ad *dto.ActionData) gin.H {
	data["FormError"] = ad.FormError
	data["FieldErrors"] = ad.FieldErrors
	data["Fields"] = ad.Fields
	return data
}
