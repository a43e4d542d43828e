package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"clinic-records/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// fakeAPI serves an in-memory doctors collection.
type fakeAPI struct {
	mu        sync.Mutex
	doctors   []dto.DoctorResponse
	posts     int32
	failList  atomic.Bool
	rejectNew bool
	// onPost runs while a create request is being served.
	onPost func()
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path != "/api/doctors" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		if f.failList.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Record store unavailable"})
			return
		}
		json.NewEncoder(w).Encode(f.doctors)

	case http.MethodPost:
		atomic.AddInt32(&f.posts, 1)
		if f.onPost != nil {
			f.onPost()
		}
		if f.rejectNew {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Validation failed",
				"error":   map[string]string{"specialty": "specialty must be at most 100 characters"},
			})
			return
		}
		var req dto.CreateDoctorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		created := dto.DoctorResponse{ID: int64(len(f.doctors) + 1), Name: req.Name, Specialty: req.Specialty}
		f.doctors = append(f.doctors, created)
		json.NewEncoder(w).Encode(created)
	}
}

func newDoctorsPage(t *testing.T, api *fakeAPI) *Page[dto.DoctorResponse, dto.CreateDoctorRequest] {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return NewPage(New(srv.URL, nil), Doctors)
}

func TestLoad(t *testing.T) {
	api := &fakeAPI{doctors: []dto.DoctorResponse{{ID: 1, Name: "Dr. A", Specialty: "Cardiology"}}}
	page := newDoctorsPage(t, api)
	assert.Equal(t, Idle, page.State.Status)

	require.NoError(t, page.Load(context.Background()))
	assert.Equal(t, Loaded, page.State.Status)
	assert.Equal(t, api.doctors, page.State.Records)
	assert.NoError(t, page.State.Err)
}

func TestLoadEmptyList(t *testing.T) {
	page := newDoctorsPage(t, &fakeAPI{doctors: []dto.DoctorResponse{}})

	require.NoError(t, page.Load(context.Background()))
	assert.Equal(t, Loaded, page.State.Status)
	assert.NotNil(t, page.State.Records)
	assert.Empty(t, page.State.Records)
}

func TestLoadServerError(t *testing.T) {
	api := &fakeAPI{doctors: []dto.DoctorResponse{{ID: 1, Name: "Dr. A", Specialty: "Cardiology"}}}
	page := newDoctorsPage(t, api)
	require.NoError(t, page.Load(context.Background()))

	api.failList.Store(true)
	err := page.Load(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "HTTP error! Status: 503 (Record store unavailable)", apiErr.Error())
	assert.Equal(t, LoadError, page.State.Status)
	assert.Nil(t, page.State.Records)
	assert.Equal(t, err, page.State.Err)
}

func TestLoadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	page := NewPage(New(srv.URL, nil), Patients)
	err := page.Load(context.Background())

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "GET /api/patients", netErr.Op)
	assert.Equal(t, LoadError, page.State.Status)
}

func TestSubmitCreatesAndReloads(t *testing.T) {
	api := &fakeAPI{doctors: []dto.DoctorResponse{}}
	page := newDoctorsPage(t, api)
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	var submittingDuringPost bool
	api.onPost = func() { submittingDuringPost = page.Submitting }

	created, err := page.Submit(ctx, &dto.CreateDoctorRequest{Name: "  Dr. A ", Specialty: "Cardiology"})
	require.NoError(t, err)
	assert.True(t, submittingDuringPost)
	assert.Equal(t, dto.DoctorResponse{ID: 1, Name: "Dr. A", Specialty: "Cardiology"}, *created)
	assert.False(t, page.Submitting)
	assert.Equal(t, Loaded, page.State.Status)
	assert.Equal(t, []dto.DoctorResponse{*created}, page.State.Records)
}

func TestSubmitFormErrorSendsNothing(t *testing.T) {
	api := &fakeAPI{doctors: []dto.DoctorResponse{}}
	page := newDoctorsPage(t, api)

	_, err := page.Submit(context.Background(), &dto.CreateDoctorRequest{Name: "Dr. A", Specialty: "   "})
	require.Error(t, err)
	assert.True(t, IsFormError(err))
	assert.Equal(t, "Please fill in all required fields", err.Error())
	assert.Zero(t, atomic.LoadInt32(&api.posts))

	_, err = page.Submit(context.Background(), nil)
	assert.True(t, IsFormError(err))
	assert.Zero(t, atomic.LoadInt32(&api.posts))
}

func TestSubmitServerRejection(t *testing.T) {
	api := &fakeAPI{doctors: []dto.DoctorResponse{}, rejectNew: true}
	page := newDoctorsPage(t, api)

	var submittingDuringPost bool
	api.onPost = func() { submittingDuringPost = page.Submitting }

	_, err := page.Submit(context.Background(), &dto.CreateDoctorRequest{Name: "Dr. A", Specialty: "Cardiology"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, map[string]string{"specialty": "specialty must be at most 100 characters"}, apiErr.Fields)
	assert.Contains(t, apiErr.Error(), "specialty must be at most 100 characters")
	assert.True(t, submittingDuringPost)
	assert.False(t, page.Submitting)
	assert.False(t, IsFormError(err))
}

func TestPrepareForm(t *testing.T) {
	t.Run("patient", func(t *testing.T) {
		form := &dto.CreatePatientRequest{Name: " John ", Age: intPtr(35)}
		require.NoError(t, Patients.PrepareForm(form))
		assert.Equal(t, "John", form.Name)

		assert.True(t, IsFormError(Patients.PrepareForm(&dto.CreatePatientRequest{Name: "John"})))
		assert.EqualError(t, Patients.PrepareForm(&dto.CreatePatientRequest{Name: "John", Age: intPtr(-1)}), "Age cannot be negative")
	})

	t.Run("receptionist", func(t *testing.T) {
		form := &dto.CreateReceptionistRequest{Name: "Emily", Shift: " Morning", Salary: floatPtr(4500)}
		require.NoError(t, Receptionists.PrepareForm(form))
		assert.Equal(t, "Morning", form.Shift)

		assert.True(t, IsFormError(Receptionists.PrepareForm(&dto.CreateReceptionistRequest{Name: "Emily", Shift: "Morning"})))
		assert.EqualError(t, Receptionists.PrepareForm(&dto.CreateReceptionistRequest{Name: "Emily", Shift: "Morning", Salary: floatPtr(-5)}), "Salary cannot be negative")
	})
}

func TestSearch(t *testing.T) {
	page := NewPage(New("http://127.0.0.1:0", nil), Doctors)
	page.State = State[dto.DoctorResponse]{
		Status: Loaded,
		Records: []dto.DoctorResponse{
			{ID: 1, Name: "Dr. A", Specialty: "Cardiology"},
			{ID: 2, Name: "Dr. B", Specialty: "Pediatrics"},
		},
	}

	assert.Equal(t, page.State.Records, page.Search(""))
	assert.Equal(t, page.State.Records, page.Search("   "))
	assert.Equal(t, []dto.DoctorResponse{{ID: 2, Name: "Dr. B", Specialty: "Pediatrics"}}, page.Search("PEDI"))
	assert.Empty(t, page.Search("neurology"))
}

func TestFilterMatchesAnyDisplayedField(t *testing.T) {
	receptionists := []dto.ReceptionistResponse{
		{ID: 1, Name: "Emily", Shift: "Morning", Salary: 4500},
		{ID: 2, Name: "Mark", Shift: "Night", Salary: 3900.5},
	}

	assert.Equal(t, receptionists[1:], Filter(receptionists, "3900.50", Receptionists.Row))
	assert.Equal(t, receptionists[:1], Filter(receptionists, "morn", Receptionists.Row))
	assert.Equal(t, receptionists[1:], Filter(receptionists, "2", Receptionists.Row))
}

func TestRender(t *testing.T) {
	state := State[dto.PatientResponse]{
		Status:  Loaded,
		Records: []dto.PatientResponse{{ID: 1, Name: "John Doe", Age: 35}, {ID: 2, Name: "Jane", Age: 7}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Patients, state, ""))
	assert.Equal(t, "ID  NAME      AGE\n1   John Doe  35\n2   Jane      7\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, Patients, state, "zzz"))
	assert.Equal(t, "No patients found\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, Patients, State[dto.PatientResponse]{Status: Loading}, ""))
	assert.Equal(t, "Loading patients...\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, Patients, State[dto.PatientResponse]{Status: LoadError, Err: errors.New("boom")}, ""))
	assert.Equal(t, "✗ Failed to load patients: boom\n", buf.String())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
