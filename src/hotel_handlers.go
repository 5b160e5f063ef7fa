package main

import (
	"context"
	"encoding/json"
	"ers/src/common"
	"ers/src/lib"
	"ers/src/models"
	"ers/src/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const hotelsCacheKey = "hotels"

func cachedHotels() []models.Hotel {
	rd := lib.GetRedisClient()
	if rd == nil {
		return nil
	}
	val, err := rd.Get(context.Background(), hotelsCacheKey).Result()
	if err != nil || val == "" {
		return nil
	}
	var hotels []models.Hotel
	if err := json.Unmarshal([]byte(val), &hotels); err != nil {
		return nil
	}
	return hotels
}

func cacheHotels(hotels []models.Hotel) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	payload, err := json.Marshal(hotels)
	if err != nil {
		return
	}
	rd.Set(context.Background(), hotelsCacheKey, string(payload), 10*time.Minute)
}

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hotels", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			if hotels := cachedHotels(); hotels != nil {
				// Access is still gated even on a cache hit.
				if err := common.CheckHotelAccess(userId); err != nil {
					ctx.Status(common.StatusForError(err))
					return
				}
				ctx.JSON(http.StatusOK, hotels)
				return
			}
			hotels, err := common.ListHotels(userId)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[ListHotels] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			go cacheHotels(hotels)
			ctx.JSON(http.StatusOK, hotels)
		}).
		GET("/hotels/:id", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			hotel, err := common.GetHotelWithRooms(userId, params.ID)
			if err != nil {
				status := common.StatusForError(err)
				if status == http.StatusInternalServerError {
					log.Printf("[GetHotel] error: %s\n", err.Error())
				}
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, hotel)
		})
	return g
}
