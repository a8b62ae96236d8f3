package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
	applicantapp "github.com/hireline/job-application-services/api/internal/applicant/application"
)

func TestClientList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/applications", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "1", "full_name": "Ravi Kumar", "status": "pending"},
				{"id": "2", "full_name": "Ananya Iyer"},
			},
		})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	records, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ravi Kumar", records[0].FullName)
	assert.Equal(t, admindomain.StatusPending, records[1].EffectiveStatus())
}

func TestClientListFailureEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Failed to fetch applications",
		})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch applications", err.Error())
}

func TestClientUpdateStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/applications/abc123/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "reviewed", body["status"])

		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Status updated successfully"})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	assert.NoError(t, client.UpdateStatus(context.Background(), "abc123", admindomain.StatusReviewed))
}

func TestClientDeleteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Application not found"})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	err := client.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Application not found", err.Error())
}

func TestClientSubmitSendsPayloadBody(t *testing.T) {
	var gotContentType string
	var gotLen int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotLen = len(r.MultipartForm.Value)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	model := applicantapp.New(applicantapp.Config{Submitter: nil})
	defer model.Close()
	require.NoError(t, model.UpdateField("fullName", "Ravi Kumar"))
	payload, err := model.BuildPayload()
	require.NoError(t, err)

	client := New(Config{BaseURL: server.URL})
	require.NoError(t, client.Submit(context.Background(), payload))

	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, 4, gotLen, "fullName, educations, workExperiences, isFresher")
}

func TestClientNonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
