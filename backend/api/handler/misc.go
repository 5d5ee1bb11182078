package handler

import (
	"docboard/backend/common"

	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	common.RespSuccess(c, gin.H{
		"system_name": common.SystemName,
		"version":     common.Version,
		"start_time":  common.StartTime,
	})
}
