package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectApplications(t *testing.T) {
	pmToken, _ := loginForTests(t, "pm1")
	vendorToken, vendorID := loginForTests(t, "vendor1")

	projectID := createProjectForTests(t, pmToken, "Application Plaza")

	var applicationID uint

	t.Run("vendor applies once", func(t *testing.T) {
		w := doRequest(t, "POST", fmt.Sprintf("/applications/vendor/%d", projectID),
			vendorToken, nil, http.StatusCreated)
		var app struct {
			ID       uint   `json:"id"`
			VendorID uint   `json:"vendor_id"`
			Status   string `json:"status"`
		}
		parseJSON(t, w, &app)
		require.Equal(t, vendorID, app.VendorID)
		require.Equal(t, "pending", app.Status)
		applicationID = app.ID
	})

	t.Run("second application is a conflict", func(t *testing.T) {
		doRequest(t, "POST", fmt.Sprintf("/applications/vendor/%d", projectID),
			vendorToken, nil, http.StatusConflict)
	})

	t.Run("manager cannot apply", func(t *testing.T) {
		doRequest(t, "POST", fmt.Sprintf("/applications/vendor/%d", projectID),
			pmToken, nil, http.StatusUnauthorized)
	})

	t.Run("owning manager lists applicants", func(t *testing.T) {
		w := doRequest(t, "GET", fmt.Sprintf("/applications/property-manager/%d", projectID),
			pmToken, nil, http.StatusOK)
		var views []struct {
			ID          uint   `json:"id"`
			ProjectName string `json:"project_name"`
		}
		parseJSON(t, w, &views)
		require.Len(t, views, 1)
		require.Equal(t, "Application Plaza", views[0].ProjectName)
	})

	t.Run("foreign manager cannot list applicants", func(t *testing.T) {
		otherPM, _ := loginForTests(t, "pm2")
		doRequest(t, "GET", fmt.Sprintf("/applications/property-manager/%d", projectID),
			otherPM, nil, http.StatusUnauthorized)
	})

	t.Run("foreign manager cannot decide", func(t *testing.T) {
		otherPM, _ := loginForTests(t, "pm2")
		doRequest(t, "PUT", fmt.Sprintf("/applications/property-manager/%d", applicationID),
			otherPM, map[string]string{"status": "accepted"}, http.StatusUnauthorized)
	})

	t.Run("manager accepts", func(t *testing.T) {
		w := doRequest(t, "PUT", fmt.Sprintf("/applications/property-manager/%d", applicationID),
			pmToken, map[string]string{"status": "accepted"}, http.StatusOK)
		var app struct {
			Status string `json:"status"`
		}
		parseJSON(t, w, &app)
		require.Equal(t, "accepted", app.Status)
	})

	t.Run("decision is final", func(t *testing.T) {
		doRequest(t, "PUT", fmt.Sprintf("/applications/property-manager/%d", applicationID),
			pmToken, map[string]string{"status": "rejected"}, http.StatusConflict)
	})

	t.Run("vendor sees the decision", func(t *testing.T) {
		w := doRequest(t, "GET", "/applications/vendor", vendorToken, nil, http.StatusOK)
		var views []struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		}
		parseJSON(t, w, &views)
		found := false
		for _, v := range views {
			if v.ID == applicationID {
				found = true
				require.Equal(t, "accepted", v.Status)
			}
		}
		require.True(t, found)
	})

	t.Run("closed project rejects applications", func(t *testing.T) {
		closedID := createProjectForTests(t, pmToken, "Closed Court")
		doRequest(t, "PUT", fmt.Sprintf("/projects/%d", closedID), pmToken,
			map[string]interface{}{"open": false}, http.StatusOK)

		otherVendor, _ := loginForTests(t, "vendor2")
		doRequest(t, "POST", fmt.Sprintf("/applications/vendor/%d", closedID),
			otherVendor, nil, http.StatusBadRequest)
	})
}
