package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-records/cmd/bootstrap"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/service"
	"clinic-records/internal/testutil"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type errorEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   map[string]string `json:"error"`
}

func newServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db := testutil.NewTestDB(t)
	srv := httptest.NewServer(bootstrap.NewHandler(testutil.DefaultConfig(), db, service.NewNoopListCache(), log))
	t.Cleanup(srv.Close)
	return srv, db
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateDoctorThenList(t *testing.T) {
	srv, _ := newServer(t)

	resp := post(t, srv, "/api/doctors", `{"name":"Dr. A","specialty":"Cardiology"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var created dto.DoctorResponse
	decode(t, resp, &created)
	assert.Equal(t, dto.DoctorResponse{ID: 1, Name: "Dr. A", Specialty: "Cardiology"}, created)

	resp = get(t, srv, "/api/doctors")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doctors []dto.DoctorResponse
	decode(t, resp, &doctors)
	assert.Equal(t, []dto.DoctorResponse{created}, doctors)
}

func TestListEmptyReturnsJSONArray(t *testing.T) {
	srv, _ := newServer(t)

	for _, path := range []string{"/api/doctors", "/api/patients", "/api/receptionists"} {
		resp := get(t, srv, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(body), path)
	}
}

func TestCreatePatientWithEmptyNameIsRejected(t *testing.T) {
	srv, db := newServer(t)

	resp := post(t, srv, "/api/patients", `{"name":"","age":30}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorEnvelope
	decode(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Error, "name")

	var count int64
	require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateReceptionistOutOfRangeSalary(t *testing.T) {
	srv, _ := newServer(t)

	resp := post(t, srv, "/api/receptionists", `{"name":"Emily","shift":"Morning","salary":6000}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorEnvelope
	decode(t, resp, &body)
	assert.Equal(t, "salary must be between 0 and 5000", body.Error["salary"])
}

func TestCreateWithUnreadableBody(t *testing.T) {
	srv, _ := newServer(t)

	for _, body := range []string{``, `null`, `{"name":`, `[1,2]`} {
		resp := post(t, srv, "/api/doctors", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)

		var envelope errorEnvelope
		decode(t, resp, &envelope)
		assert.Equal(t, "Invalid request body", envelope.Message)
	}
}

func TestCreateWithTrailingDataIsRejected(t *testing.T) {
	srv, db := newServer(t)

	for _, body := range []string{
		`{"name":"Dr. A","specialty":"Cardiology"} garbage`,
		`{"name":"Dr. A","specialty":"Cardiology"}{"name":"Dr. B","specialty":"Pediatrics"}`,
		`{"name":"Dr. A","specialty":"Cardiology"}]`,
	} {
		resp := post(t, srv, "/api/doctors", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}

	var count int64
	require.NoError(t, db.Model(&entity.Doctor{}).Count(&count).Error)
	assert.Zero(t, count)

	resp := post(t, srv, "/api/doctors", "{\"name\":\"Dr. A\",\"specialty\":\"Cardiology\"}\n")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateDoctorWithLongName(t *testing.T) {
	srv, _ := newServer(t)
	name := strings.Repeat("n", 300)

	body, err := json.Marshal(dto.CreateDoctorRequest{Name: name, Specialty: "Cardiology"})
	require.NoError(t, err)

	resp := post(t, srv, "/api/doctors", string(body))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doctors []dto.DoctorResponse
	decode(t, get(t, srv, "/api/doctors"), &doctors)
	require.Len(t, doctors, 1)
	assert.Equal(t, name, doctors[0].Name)
}

func TestRapidCreatesGetDistinctIDs(t *testing.T) {
	srv, _ := newServer(t)

	var first, second dto.ReceptionistResponse
	decode(t, post(t, srv, "/api/receptionists", `{"name":"Emily","shift":"Morning","salary":4500}`), &first)
	decode(t, post(t, srv, "/api/receptionists", `{"name":"Emily","shift":"Morning","salary":4500}`), &second)
	assert.NotEqual(t, first.ID, second.ID)

	var receptionists []dto.ReceptionistResponse
	decode(t, get(t, srv, "/api/receptionists"), &receptionists)
	assert.Equal(t, []dto.ReceptionistResponse{first, second}, receptionists)
}

func TestStoreUnavailable(t *testing.T) {
	srv, db := newServer(t)
	testutil.CloseDB(t, db)

	resp := get(t, srv, "/api/doctors")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = post(t, srv, "/api/patients", `{"name":"John","age":30}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body errorEnvelope
	decode(t, resp, &body)
	assert.False(t, body.Success)
}

func TestAuditLogsListCreates(t *testing.T) {
	srv, _ := newServer(t)

	post(t, srv, "/api/doctors", `{"name":"Dr. A","specialty":"Cardiology"}`)
	post(t, srv, "/api/patients", `{"name":"John","age":30}`)

	resp := get(t, srv, "/api/audit-logs")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                     `json:"success"`
		Data    dto.AuditLogListResponse `json:"data"`
	}
	decode(t, resp, &body)
	assert.True(t, body.Success)
	require.Equal(t, 2, body.Data.Total)

	actions := []string{body.Data.Logs[0].Action, body.Data.Logs[1].Action}
	assert.ElementsMatch(t, []string{"doctor.create", "patient.create"}, actions)
}

func TestAuditLogsFilter(t *testing.T) {
	srv, _ := newServer(t)

	post(t, srv, "/api/doctors", `{"name":"Dr. A","specialty":"Cardiology"}`)
	post(t, srv, "/api/patients", `{"name":"John","age":30}`)
	post(t, srv, "/api/patients", `{"name":"Jane","age":7}`)

	var body struct {
		Data dto.AuditLogListResponse `json:"data"`
	}
	decode(t, get(t, srv, "/api/audit-logs?entity=patient&limit=1"), &body)
	require.Equal(t, 1, body.Data.Total)
	assert.Equal(t, "patient.create", body.Data.Logs[0].Action)
	assert.Equal(t, int64(2), body.Data.Logs[0].EntityID)

	resp := get(t, srv, "/api/audit-logs?limit=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newServer(t)

	resp := get(t, srv, "/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	get(t, srv, "/api/doctors")

	resp = get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/doctors",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/doctors", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	srv, _ := newServer(t)

	resp := get(t, srv, "/api/nurses")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorEnvelope
	decode(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Resource not found", body.Message)
}
