package main

import (
	"ers/src/common"
	"ers/src/types"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payments", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			ticketParam := ctx.Query("ticketId")
			atoi, err := strconv.Atoi(ticketParam)
			if err != nil || atoi <= 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid ticketId"})
				return
			}
			payment, err := common.GetPayment(userId, uint(atoi))
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[GetPayment] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, payment)
		}).
		POST("/payments/process", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.ProcessPaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			payment, err := common.ProcessPayment(userId, &body)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[ProcessPayment] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, payment)
		})
	return g
}
