package main

import (
	"ers/src/common"
	"ers/src/types"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/booking", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			booking, err := common.GetUserBooking(userId)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[GetBooking] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": booking.ID, "Room": booking.Room})
		}).
		POST("/booking", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.CreateBookingRequestBody
			// A missing, non-numeric or non-positive roomId never
			// reaches the workflow; it reads as "no such room".
			if err := ctx.ShouldBindJSON(&body); err != nil || body.RoomID <= 0 {
				ctx.Status(http.StatusNotFound)
				return
			}
			bookingId, err := common.CreateBooking(userId, uint(body.RoomID))
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[CreateBooking] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"bookingId": bookingId})
		}).
		PUT("/booking/:bookingId", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			idParam := ctx.Params.ByName("bookingId")
			atoi, err := strconv.Atoi(idParam)
			if err != nil || atoi <= 0 {
				ctx.Status(http.StatusNotFound)
				return
			}
			var body types.UpdateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil || body.RoomID <= 0 {
				ctx.Status(http.StatusNotFound)
				return
			}
			bookingId, err := common.UpdateBooking(userId, uint(atoi), uint(body.RoomID))
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[UpdateBooking] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"bookingId": bookingId})
		})
	return g
}
