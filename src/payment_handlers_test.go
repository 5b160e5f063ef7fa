package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func validCardBody(ticketId uint) string {
	expiry := time.Now().AddDate(1, 0, 0).Format("01/06")
	return fmt.Sprintf(`{
		"ticketId": %d,
		"cardData": {
			"issuer": "VISA",
			"number": "4111111111111111",
			"name": "Some One",
			"expirationDate": "%s",
			"cvv": "123"
		}
	}`, ticketId, expiry)
}

func (s *TestSuite) TestGetPayment() {
	s.Run("Should return 400 without a ticketId", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/payments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should return 404 for an unknown ticket", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		mock.ExpectQuery(`SELECT .* FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/payments?ticketId=9", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should return 401 for someone else's ticket", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		mock.ExpectQuery(`SELECT .* FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "ticket_type_id", "enrollment_id"}).
				AddRow(9, "RESERVED", 4, 3))
		mock.ExpectQuery(`SELECT .* FROM "enrollments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
				AddRow(3, 7))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/payments?ticketId=9", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should return 200 with the payment", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		mock.ExpectQuery(`SELECT .* FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "ticket_type_id", "enrollment_id"}).
				AddRow(9, "PAID", 4, 3))
		mock.ExpectQuery(`SELECT .* FROM "enrollments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
				AddRow(3, 1))
		mock.ExpectQuery(`SELECT .* FROM "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "ticket_id", "value", "card_issuer", "card_last_digits"}).
				AddRow(5, 9, 250, "VISA", "1111"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/payments?ticketId=9", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "1111", gjson.Get(w.Body.String(), "cardLastDigits").String())
	})
}

func (s *TestSuite) TestProcessPayment() {
	s.Run("Should return 400 for an expired card", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)

		body := strings.Replace(validCardBody(9), time.Now().AddDate(1, 0, 0).Format("01/06"), "01/20", 1)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments/process", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should return 200 and mark the ticket paid", func() {
		router, mock := newTestRouter()
		token := generateValidToken(s.T(), 1)

		expectAuth(mock, 1)
		mock.MatchExpectationsInOrder(false)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM "tickets"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "ticket_type_id", "enrollment_id"}).
				AddRow(9, "RESERVED", 4, 3))
		mock.ExpectQuery(`SELECT .* FROM "enrollments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
				AddRow(3, 1))
		mock.ExpectQuery(`SELECT .* FROM "ticket_types"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "price", "is_remote", "includes_hotel"}).
				AddRow(4, 250, false, true))
		mock.ExpectQuery(`INSERT INTO "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectExec(`UPDATE "tickets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments/process", strings.NewReader(validCardBody(9)))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "1111", gjson.Get(body, "cardLastDigits").String())
		assert.Equal(s.T(), float64(250), gjson.Get(body, "value").Num)
	})
}
