package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	CreateSessionHandler gin.HandlerFunc
	DialogHandler        gin.HandlerFunc
	NavigationHandler    gin.HandlerFunc
}
