package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/questline-backend/internal/platform/apierr"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestRespondAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", apierr.NotFound("Quest not found"), http.StatusNotFound, apierr.CodeNotFound, "Quest not found"},
		{"bad request", apierr.BadRequest("invalid id"), http.StatusBadRequest, apierr.CodeInvalidRequest, "invalid id"},
		{"conflict", apierr.Conflict("Quest already added to user", errors.New("dup")), http.StatusConflict, apierr.CodeConflict, "Quest already added to user"},
		{"unclassified hides cause", errors.New("pq: password authentication failed"), http.StatusInternalServerError, apierr.CodeInternal, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondAPIError(c, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("status: got=%d want=%d", rec.Code, tc.status)
			}
			env := decodeEnvelope(t, rec)
			if env.Error.Code != tc.code || env.Error.Message != tc.message {
				t.Fatalf("unexpected envelope: %+v", env)
			}
			if len(c.Errors) != 1 {
				t.Fatalf("expected cause on context, got %d", len(c.Errors))
			}
		})
	}
}
