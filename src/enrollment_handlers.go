package main

import (
	"ers/src/common"
	"ers/src/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func enrollmentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/enrollments", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			enrollment, err := common.GetEnrollment(userId)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[GetEnrollment] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, enrollment)
		}).
		POST("/enrollments", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.UpsertEnrollmentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			birthday, err := time.Parse(time.RFC3339, body.Birthday)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthday"})
				return
			}
			enrollmentId, err := common.UpsertEnrollment(userId, birthday, &body)
			if err != nil {
				log.Printf("[UpsertEnrollment] error: %s\n", err.Error())
				ctx.Status(common.StatusForError(err))
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"enrollmentId": enrollmentId})
		})
	return g
}
