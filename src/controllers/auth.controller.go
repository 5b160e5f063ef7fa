package controllers

import (
	"ers/src/db"
	"ers/src/models"
	"ers/src/types"
	"ers/src/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRegister(ctx *gin.Context) (uint, int, error) {
	var body types.SignUpRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return 0, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var existing models.User
	err := db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&existing).
		Error
	if err == nil {
		return 0, http.StatusConflict, errors.New("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, http.StatusInternalServerError, err
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return 0, http.StatusInternalServerError, err
	}
	user := models.User{Email: body.Email, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %s\n", err.Error())
		return 0, http.StatusInternalServerError, err
	}
	return user.ID, http.StatusCreated, nil
}

func AuthLogin(ctx *gin.Context) (*string, int, error) {
	var body types.SignInRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	err := db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusUnauthorized, errors.New("invalid credentials")
		}
		return nil, http.StatusInternalServerError, err
	}
	if !utils.ComparePassword(user.Password, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.Email, user.ID)
	if err != nil {
		log.Printf("Error generating JWT token: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	session := models.Session{UserID: user.ID, Token: token}
	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error persisting session: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &token, http.StatusOK, nil
}
