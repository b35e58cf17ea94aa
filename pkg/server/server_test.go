package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/kinema/pkg/drive"
	"github.com/ja7ad/kinema/pkg/report"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestGetDrives(t *testing.T) {
	s := New("", quietLogger())
	w := do(t, s, http.MethodGet, "/drives", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []drive.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, drive.DriveTypes(), got)
}

func TestGetFormulas(t *testing.T) {
	s := New("", quietLogger())
	w := do(t, s, http.MethodGet, "/formulas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []drive.Formula
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, drive.Formulas(), got)
}

func TestCalculate_OK(t *testing.T) {
	s := New("", quietLogger())
	w := do(t, s, http.MethodPost, "/calculate", CalculateRequest{Power: "1.5", Speed: "1500", Ratio: "3.5", Drive: "belt"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var row report.Row
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, "belt", row.Drive)
	assert.Equal(t, "9.55", row.InputTorque)
	assert.Equal(t, "428.57", row.OutputSpeed)
	assert.Equal(t, "33.42", row.OutputTorque)
	assert.InDelta(t, 33.4215, row.OutputTorqueNm, 1e-9)
}

func TestCalculate_DefaultDrive(t *testing.T) {
	s := New(drive.Worm, quietLogger())
	w := do(t, s, http.MethodPost, "/calculate", CalculateRequest{Power: "10", Speed: "1000", Ratio: "2"})
	require.Equal(t, http.StatusOK, w.Code)

	var row report.Row
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	assert.Equal(t, "worm", row.Drive)
	assert.Equal(t, "190.98", row.OutputTorque)
}

func TestCalculate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		body   any
		fields []string
	}{
		{"missing", CalculateRequest{Power: "1", Speed: ""}, []string{"speed", "ratio"}},
		{"not_numeric", CalculateRequest{Power: "1", Speed: "x", Ratio: "2"}, []string{"speed"}},
		{"zero_speed", CalculateRequest{Power: "1", Speed: "0", Ratio: "2"}, []string{"speed"}},
		{"zero_ratio", CalculateRequest{Power: "1", Speed: "1000", Ratio: "0"}, []string{"ratio"}},
		{"unknown_drive", CalculateRequest{Power: "1", Speed: "1000", Ratio: "2", Drive: "rope"}, []string{"drive"}},
		{"bad_json", `{"power":`, nil},
	}
	s := New("", quietLogger())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/calculate", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tc.fields, resp.Fields)
		})
	}
}

func TestGetNotation(t *testing.T) {
	s := New("", quietLogger())
	w := do(t, s, http.MethodGet, "/notation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Steps    []string       `json:"steps"`
		Notation []drive.Symbol `json:"notation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, drive.UsageSteps(), got.Steps)
	assert.Equal(t, drive.Notation(), got.Notation)
}

func TestLogger_RejectionCarriesInputFields(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	s := New("", log)

	w := do(t, s, http.MethodPost, "/calculate", CalculateRequest{Power: "1", Speed: "0", Ratio: "0"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, []string{"speed", "ratio"}, entry.Data["fields"])
	assert.Equal(t, drive.ErrDivisionByZero.Error(), entry.Data["reason"])
	assert.Equal(t, http.StatusBadRequest, entry.Data["statusCode"])
	assert.NotContains(t, entry.Data, "value")

	hook.Reset()
	w = do(t, s, http.MethodPost, "/calculate", CalculateRequest{Power: "1", Speed: "fast", Ratio: "2"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, []string{"speed"}, entry.Data["fields"])
	assert.Equal(t, "fast", entry.Data["value"])
}

func TestLogger_SuccessIsDebug(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := New("", log)

	w := do(t, s, http.MethodGet, "/drives", nil)
	require.Equal(t, http.StatusOK, w.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "/drives", entry.Data["path"])
	assert.NotContains(t, entry.Data, "fields")
}

func TestGetVersion(t *testing.T) {
	s := New("", quietLogger())
	w := do(t, s, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"dev"`, w.Body.String())
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	// grab a free port
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := New("", quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/version")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
