package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
)

// pathID parses the :id path parameter, answering 400 when it is not a positive integer
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw))
		return 0, false
	}
	return uint(id), true
}

func bindPage(c *gin.Context) (booking.Page, bool) {
	var page booking.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return page, false
	}
	return page, true
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
