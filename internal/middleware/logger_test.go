package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.Use(RequestLogger(logger))

	var handlerLogged bool

	server.GET("/ping", func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())
		handlerLogged = l.GetLevel() != zerolog.Disabled
		gctx.JSON(http.StatusOK, gin.H{})
	})
	server.GET("/panic", func(gctx *gin.Context) {
		panic("boom")
	})

	testCases := []struct {
		name       string
		path       string
		requestID  string
		wantStatus int
		wantLevel  string
	}{
		{name: "GeneratedID", path: "/ping", wantStatus: http.StatusOK, wantLevel: "info"},
		{name: "GivenID", path: "/ping", requestID: "req-1", wantStatus: http.StatusOK, wantLevel: "info"},
		{name: "Panic", path: "/panic", wantStatus: http.StatusInternalServerError, wantLevel: "error"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)

			if tc.requestID != "" {
				request.Header.Set(RequestIDHeader, tc.requestID)
			}

			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatus, recorder.Code)

			gotID := recorder.Header().Get(RequestIDHeader)
			require.NotEmpty(t, gotID)

			if tc.requestID != "" {
				require.Equal(t, tc.requestID, gotID)
			}

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			last := map[string]any{}
			require.NoError(t, json.Unmarshal(lines[len(lines)-1], &last))

			require.Equal(t, tc.wantLevel, last["level"])
			require.Equal(t, gotID, last["request_id"])
			require.Equal(t, tc.path, last["path"])
		})
	}

	require.True(t, handlerLogged)
}
