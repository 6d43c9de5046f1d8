package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"spiriverse/common/constant"
	jetsteamMock "spiriverse/common/jetstream/mocks"
	"spiriverse/outbound/payment"
	paymentMock "spiriverse/outbound/payment/mocks"
	"spiriverse/outbound/sqlgen"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type SessionHttpTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Validate  *validator.Validate
	Publisher *jetsteamMock.MockPublisher
	Gateway   *paymentMock.MockGateway

	sessionHttp *SessionHttp
}

func (s *SessionHttpTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Validate = validator.New()
	s.Publisher = jetsteamMock.NewMockPublisher(ctrl)
	s.Gateway = paymentMock.NewMockGateway(ctrl)

	s.sessionHttp = RegisterSessionHttp(
		http.NewServeMux(),
		pool,
		s.Querier,
		s.Publisher,
		s.Gateway,
		s.Validate,
		message.NewPrinter(language.AmericanEnglish),
	)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *SessionHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestSessionHttpTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHttpTestSuite))
}

func pgtypeText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func (s *SessionHttpTestSuite) TestCreate() {
	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid json",
			reqBody:        `{invalid json`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request"}`,
		},
		{
			name:           "validation error - missing title",
			reqBody:        `{"practitioner_id": 7, "price_amount": 2000}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Title":"required"}}`,
		},
		{
			name:           "validation error - zero price",
			reqBody:        `{"practitioner_id": 7, "title": "Evening Readings", "price_amount": 0}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"PriceAmount":"required"}}`,
		},
		{
			name:    "insert error",
			reqBody: `{"practitioner_id": 7, "title": "Evening Readings", "price_amount": 2000}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("INSERT INTO live_sessions").
					WithArgs(int64(7), "Evening Readings", int64(2000), false, pgxmock.AnyArg()).
					WillReturnError(fmt.Errorf("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:    "success",
			reqBody: `{"practitioner_id": 7, "title": "Evening Readings", "price_amount": 2000, "allow_custom_amount": true}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("INSERT INTO live_sessions").
					WithArgs(int64(7), "Evening Readings", int64(2000), true, pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"share_code"`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			s.sessionHttp.create(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				s.Contains(w.Body.String(), tc.expectedBody)
			} else {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *SessionHttpTestSuite) sessionRow(status string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "practitioner_id", "title", "price_amount", "allow_custom_amount", "status", "share_code"}).
		AddRow(int64(1), int64(7), "Evening Readings", int64(2000), false, status, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
}

func (s *SessionHttpTestSuite) TestUpdateStatus() {
	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid status",
			reqBody:        `{"status": "running"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Status":"oneof"}}`,
		},
		{
			name:    "session not found",
			reqBody: `{"status": "live"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Session not found"}`,
		},
		{
			name:    "session already ended",
			reqBody: `{"status": "live"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusEnded))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Session already ended"}`,
		},
		{
			name:    "cannot return to setup",
			reqBody: `{"status": "setup"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusLive))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Session already started"}`,
		},
		{
			name:    "go live",
			reqBody: `{"status": "live"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusSetup))
				s.PgxMock.ExpectExec("UPDATE live_sessions SET status").
					WithArgs(int64(1), constant.EventStatusLive).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "end session cancels waiting entries",
			reqBody: `{"status": "ended"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusLive))

				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectExec("UPDATE live_sessions SET status").
					WithArgs(int64(1), constant.EventStatusEnded).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				s.PgxMock.ExpectQuery("UPDATE queue_entries SET status = 'canceled'").
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "customer_name", "customer_email", "payment_authorization_id"}).
						AddRow(int64(10), "Jane Doe", "jane@example.com", "auth-10"))
				s.PgxMock.ExpectCommit()

				s.Gateway.EXPECT().Void(gomock.Any(), "auth-10").Return(nil)
				s.Publisher.EXPECT().Publish(gomock.Any(), constant.SubjectSendEmail, gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/sessions/1/status", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			s.sessionHttp.updateStatus(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedBody != "" {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *SessionHttpTestSuite) TestNext() {
	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "promotes oldest waiting entry",
			setupMock: func() {
				s.PgxMock.ExpectQuery("UPDATE queue_entries SET status = 'in_progress'").
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "customer_name", "customer_email", "question", "charge_amount"}).
						AddRow(int64(10), "Jane Doe", "jane@example.com", pgtypeText("What about my career?"), int64(2000)))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"entry_id":10`,
		},
		{
			name: "reading already in progress",
			setupMock: func() {
				s.PgxMock.ExpectQuery("UPDATE queue_entries SET status = 'in_progress'").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectQuery("SELECT (.+) FROM queue_entries WHERE session_id").
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "customer_name"}).AddRow(int64(9), "John Doe"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Reading already in progress"}`,
		},
		{
			name: "queue is empty",
			setupMock: func() {
				s.PgxMock.ExpectQuery("UPDATE queue_entries SET status = 'in_progress'").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
				s.PgxMock.ExpectQuery("SELECT (.+) FROM queue_entries WHERE session_id").
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Queue is empty"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/sessions/1/next", nil)
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			s.sessionHttp.next(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				s.Contains(w.Body.String(), tc.expectedBody)
			} else {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}

func (s *SessionHttpTestSuite) TestComplete() {
	entryRows := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "session_id", "customer_name", "customer_email", "payment_authorization_id", "charge_amount"}).
			AddRow(int64(10), int64(1), "Jane Doe", "jane@example.com", "auth-10", int64(2000))
	}

	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing summary note",
			reqBody:        `{"summary_cta": "Book a follow-up"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"SummaryNote":"required"}}`,
		},
		{
			name:    "reading not in progress",
			reqBody: `{"summary_note": "Great session"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM queue_entries WHERE id").
					WithArgs(int64(10)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Reading is not in progress"}`,
		},
		{
			name:    "lost the race to a concurrent complete",
			reqBody: `{"summary_note": "Great session"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM queue_entries WHERE id").
					WithArgs(int64(10)).
					WillReturnRows(entryRows())
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusLive))

				s.PgxMock.ExpectExec("UPDATE queue_entries SET status = 'completed'").
					WithArgs(int64(10), pgtypeText("Great session"), pgtype.Text{}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Reading is not in progress"}`,
		},
		{
			name:    "capture declined reopens the entry",
			reqBody: `{"summary_note": "Great session"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM queue_entries WHERE id").
					WithArgs(int64(10)).
					WillReturnRows(entryRows())
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusLive))

				s.PgxMock.ExpectExec("UPDATE queue_entries SET status = 'completed'").
					WithArgs(int64(10), pgtypeText("Great session"), pgtype.Text{}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))

				s.Gateway.EXPECT().Capture(gomock.Any(), "auth-10", int64(2000)).Return(payment.ErrDeclined)

				s.PgxMock.ExpectExec("UPDATE queue_entries SET status = 'in_progress'").
					WithArgs(int64(10)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   `{"error":"Payment capture failed"}`,
		},
		{
			name:    "success publishes advance and summary email",
			reqBody: `{"summary_note": "Great session", "summary_cta": "Book a follow-up"}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("SELECT (.+) FROM queue_entries WHERE id").
					WithArgs(int64(10)).
					WillReturnRows(entryRows())
				s.PgxMock.ExpectQuery("SELECT (.+) FROM live_sessions WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(s.sessionRow(constant.EventStatusLive))

				s.PgxMock.ExpectExec("UPDATE queue_entries SET status = 'completed'").
					WithArgs(int64(10), pgtypeText("Great session"), pgtypeText("Book a follow-up")).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))

				s.Gateway.EXPECT().Capture(gomock.Any(), "auth-10", int64(2000)).Return(nil)

				s.Publisher.EXPECT().Publish(gomock.Any(), constant.SubjectAdvanceQueue, gomock.Any()).Return(nil, nil)
				s.Publisher.EXPECT().Publish(gomock.Any(), constant.SubjectSendEmail, gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/sessions/entries/10/complete", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("entryId", "10")
			w := httptest.NewRecorder()

			s.sessionHttp.complete(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedBody != "" {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
