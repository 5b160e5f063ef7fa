package main

import (
	"ers/src/common"
	"ers/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ticketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/tickets/types", func(ctx *gin.Context) {
			ticketTypes, err := common.ListTicketTypes()
			if err != nil {
				log.Printf("[ListTicketTypes] error: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, ticketTypes)
		}).
		GET("/tickets", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			ticket, err := common.GetUserTicket(userId)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[GetTicket] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		}).
		POST("/tickets", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.CreateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := common.CreateTicket(userId, body.TicketTypeID)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[CreateTicket] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusCreated, ticket)
		})
	return g
}
