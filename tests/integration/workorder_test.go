package integration

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkOrderLifecycle(t *testing.T) {
	pmToken, _ := loginForTests(t, "pm1")
	vendorToken, vendorID := loginForTests(t, "vendor1")

	projectID := createProjectForTests(t, pmToken, "Lifecycle Tower")
	workOrderID := createWorkOrderForTests(t, pmToken, projectID, vendorID, "Replace HVAC filters")

	t.Run("created order starts pending", func(t *testing.T) {
		w := doRequest(t, "GET", fmt.Sprintf("/work-orders/vendor/order/%d", workOrderID), vendorToken, nil, http.StatusOK)
		var view struct {
			WorkOrderStatus string `json:"work_order_status"`
			ProjectName     string `json:"project_name"`
		}
		parseJSON(t, w, &view)
		require.Equal(t, "pending", view.WorkOrderStatus)
		require.Equal(t, "Lifecycle Tower", view.ProjectName)
	})

	t.Run("manager cannot close a pending order", func(t *testing.T) {
		doRequest(t, "PUT", fmt.Sprintf("/work-orders/property-manager/close/%d/%d", projectID, workOrderID),
			pmToken, nil, http.StatusConflict)
	})

	t.Run("manager cannot accept", func(t *testing.T) {
		doRequest(t, "PUT", fmt.Sprintf("/work-orders/vendor/accept/%d/%d", projectID, workOrderID),
			pmToken, nil, http.StatusUnauthorized)
	})

	t.Run("another vendor cannot accept", func(t *testing.T) {
		otherToken, _ := loginForTests(t, "vendor2")
		doRequest(t, "PUT", fmt.Sprintf("/work-orders/vendor/accept/%d/%d", projectID, workOrderID),
			otherToken, nil, http.StatusUnauthorized)
	})

	t.Run("vendor reschedule with inverted dates is rejected", func(t *testing.T) {
		doRequest(t, "PUT", fmt.Sprintf("/work-orders/vendor/reschedule/%d/%d", projectID, workOrderID),
			vendorToken, map[string]string{
				"startDateTime": "2026-09-02T17:00:00Z",
				"endDateTime":   "2026-09-02T09:00:00Z",
			}, http.StatusBadRequest)
	})

	t.Run("vendor proposes a new schedule", func(t *testing.T) {
		w := doRequest(t, "PUT", fmt.Sprintf("/work-orders/vendor/reschedule/%d/%d", projectID, workOrderID),
			vendorToken, map[string]string{
				"startDateTime": "2026-09-02T09:00:00Z",
				"endDateTime":   "2026-09-02T17:00:00Z",
			}, http.StatusOK)
		var view struct {
			WorkOrderStatus string `json:"work_order_status"`
		}
		parseJSON(t, w, &view)
		require.Equal(t, "rescheduleByVendor", view.WorkOrderStatus)
	})

	t.Run("manager counters the proposal", func(t *testing.T) {
		w := doRequest(t, "PUT", fmt.Sprintf("/work-orders/property-manager/reschedule/%d/%d", projectID, workOrderID),
			pmToken, map[string]string{
				"startDateTime": "2026-09-03T09:00:00Z",
				"endDateTime":   "2026-09-03T17:00:00Z",
			}, http.StatusOK)
		var view struct {
			WorkOrderStatus string `json:"work_order_status"`
		}
		parseJSON(t, w, &view)
		require.Equal(t, "rescheduleByPropertyManager", view.WorkOrderStatus)
	})

	t.Run("vendor accepts the countered schedule", func(t *testing.T) {
		w := doRequest(t, "PUT", fmt.Sprintf("/work-orders/vendor/accept/%d/%d", projectID, workOrderID),
			vendorToken, nil, http.StatusOK)
		var view struct {
			WorkOrderStatus string `json:"work_order_status"`
		}
		parseJSON(t, w, &view)
		require.Equal(t, "inProgress", view.WorkOrderStatus)
	})

	t.Run("vendor logs progress while in progress", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "Filters swapped")
		form.Set("comment", "Old units disposed")
		w := doRequest(t, "POST", fmt.Sprintf("/work-orders/logs/%d", workOrderID),
			vendorToken, form, http.StatusCreated)
		var logEntry struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		}
		parseJSON(t, w, &logEntry)
		require.Equal(t, "Filters swapped", logEntry.Title)

		w = doRequest(t, "GET", fmt.Sprintf("/work-orders/logs/%d", workOrderID),
			vendorToken, nil, http.StatusOK)
		var logs []struct {
			Title string `json:"title"`
		}
		parseJSON(t, w, &logs)
		require.Len(t, logs, 1)
	})

	t.Run("manager closes the order", func(t *testing.T) {
		w := doRequest(t, "PUT", fmt.Sprintf("/work-orders/property-manager/close/%d/%d", projectID, workOrderID),
			pmToken, nil, http.StatusOK)
		var view struct {
			WorkOrderStatus string `json:"work_order_status"`
		}
		parseJSON(t, w, &view)
		require.Equal(t, "closed", view.WorkOrderStatus)
	})

	t.Run("closed is terminal", func(t *testing.T) {
		doRequest(t, "PUT", fmt.Sprintf("/work-orders/vendor/accept/%d/%d", projectID, workOrderID),
			vendorToken, nil, http.StatusConflict)
		doRequest(t, "PUT", fmt.Sprintf("/work-orders/property-manager/close/%d/%d", projectID, workOrderID),
			pmToken, nil, http.StatusConflict)
	})

	t.Run("logging a closed order is rejected", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "too late")
		doRequest(t, "POST", fmt.Sprintf("/work-orders/logs/%d", workOrderID),
			vendorToken, form, http.StatusBadRequest)
	})
}

func TestWorkOrderQueries(t *testing.T) {
	pmToken, _ := loginForTests(t, "pm1")
	vendorToken, vendorID := loginForTests(t, "vendor1")

	projectID := createProjectForTests(t, pmToken, "Query Gardens")
	createWorkOrderForTests(t, pmToken, projectID, vendorID, "Trim hedges")
	createWorkOrderForTests(t, pmToken, projectID, vendorID, "Repaint fence")

	t.Run("list by vendor", func(t *testing.T) {
		w := doRequest(t, "GET", fmt.Sprintf("/work-orders/vendor/%d", vendorID), vendorToken, nil, http.StatusOK)
		var views []struct {
			VendorID uint `json:"vendor_id"`
		}
		parseJSON(t, w, &views)
		require.GreaterOrEqual(t, len(views), 2)
		for _, v := range views {
			require.Equal(t, vendorID, v.VendorID)
		}
	})

	t.Run("list by vendor and project", func(t *testing.T) {
		w := doRequest(t, "GET", fmt.Sprintf("/work-orders/vendor/%d/project/%d", vendorID, projectID),
			vendorToken, nil, http.StatusOK)
		var views []struct {
			ProjectID uint `json:"project_id"`
		}
		parseJSON(t, w, &views)
		require.Len(t, views, 2)
		for _, v := range views {
			require.Equal(t, projectID, v.ProjectID)
		}
	})

	t.Run("missing work order is 404", func(t *testing.T) {
		doRequest(t, "GET", "/work-orders/vendor/order/999999", vendorToken, nil, http.StatusNotFound)
	})

	t.Run("work order for an unassigned vendor account is rejected", func(t *testing.T) {
		w := doRequest(t, "POST", fmt.Sprintf("/work-orders/property-manager/%d", projectID), pmToken,
			map[string]interface{}{
				"name":          "Ghost order",
				"startDateTime": "2026-09-01T09:00:00Z",
				"endDateTime":   "2026-09-01T17:00:00Z",
				"vendor":        999999,
			}, http.StatusNotFound)
		require.Contains(t, w.Body.String(), "vendor")
	})

	t.Run("foreign manager cannot create on this project", func(t *testing.T) {
		otherPM, _ := loginForTests(t, "pm2")
		doRequest(t, "POST", fmt.Sprintf("/work-orders/property-manager/%d", projectID), otherPM,
			map[string]interface{}{
				"name":          "Not yours",
				"startDateTime": "2026-09-01T09:00:00Z",
				"endDateTime":   "2026-09-01T17:00:00Z",
				"vendor":        vendorID,
			}, http.StatusUnauthorized)
	})
}
