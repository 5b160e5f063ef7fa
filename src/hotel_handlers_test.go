package main

import (
	"encoding/json"
	"ers/src/lib"
	"ers/src/models"
	"net/http"
	"net/http/httptest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func (s *TestSuite) TestListHotels() {
	s.Run("Should return 404 without an enrollment", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		mock.ExpectQuery(`SELECT .* FROM "enrollments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should return 402 when the ticket is not paid", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		expectEnrollmentAndTicket(mock, 1, "RESERVED", false, true)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 402, w.Code)
	})

	s.Run("Should return 402 for a remote ticket", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		expectEnrollmentAndTicket(mock, 1, "PAID", true, true)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 402, w.Code)
	})

	s.Run("Should return 200 with the hotels list", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		expectEnrollmentAndTicket(mock, 1, "PAID", false, true)
		mock.ExpectQuery(`SELECT .* FROM "hotels"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image"}).
				AddRow(1, "Driven Resort", "https://example.com/resort.jpg"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), int64(1), gjson.Get(body, "#").Int())
		assert.Equal(s.T(), "Driven Resort", gjson.Get(body, "0.name").String())
	})

	s.Run("Should serve the list from cache and still gate access", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		rd, rdmock := redismock.NewClientMock()
		lib.NewRedisClient(rd)
		defer lib.NewRedisClient(nil)

		cached, _ := json.Marshal([]models.Hotel{{ID: 2, Name: "Cached Palace"}})
		rdmock.ExpectGet("hotels").SetVal(string(cached))

		expectAuth(mock, 1)
		expectEnrollmentAndTicket(mock, 1, "PAID", false, true)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "Cached Palace", gjson.Get(w.Body.String(), "0.name").String())
		assert.Nil(s.T(), rdmock.ExpectationsWereMet())
	})
}

func (s *TestSuite) TestGetHotelRooms() {
	s.Run("Should return 404 for an unknown hotel", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		expectEnrollmentAndTicket(mock, 1, "PAID", false, true)
		mock.ExpectQuery(`SELECT .* FROM "hotels"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels/9", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should return 200 with the hotel and its rooms", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		expectEnrollmentAndTicket(mock, 1, "PAID", false, true)
		mock.ExpectQuery(`SELECT .* FROM "hotels"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image"}).
				AddRow(1, "Driven Resort", ""))
		mock.ExpectQuery(`SELECT .* FROM "rooms"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id"}).
				AddRow(2, "101", 3, 1).
				AddRow(3, "102", 2, 1))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/hotels/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(2), gjson.Get(w.Body.String(), "Rooms.#").Int())
	})
}
