package screen_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-services-client/internal/model"
	"campus-services-client/internal/screen"
)

func wifiComplaint() model.Complaint {
	return model.Complaint{
		ID:          "C1",
		User:        model.UserRef{ID: "U1", Name: "Sam", Role: model.RoleStudent},
		Type:        model.ComplaintWiFi,
		Title:       "No signal in Lab 2",
		Description: "WiFi has been down since morning",
		Location:    "Lab 2",
		Status:      model.ComplaintPending,
		Priority:    model.PriorityHigh,
	}
}

func complaintBackend(cm *model.Complaint, me model.User, puts *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/me":
			writeOK(w, me)
		case r.Method == http.MethodPut && r.URL.Path == "/complaints/"+cm.ID+"/status":
			if puts != nil {
				*puts++
			}
			var body struct {
				Status model.ComplaintStatus `json:"status"`
			}
			_ = jsonDecode(r, &body)
			cm.Status = body.Status
			writeOK(w, cm)
		case r.Method == http.MethodGet && r.URL.Path == "/complaints/"+cm.ID:
			writeOK(w, cm)
		default:
			writeFail(w, http.StatusNotFound, "Complaint not found")
		}
	})
}

func TestSubmitterViewsWithoutControls(t *testing.T) {
	cm := wifiComplaint()
	c := newTestClient(t, complaintBackend(&cm, model.User{ID: "U1", Role: model.RoleStudent}, nil))

	d := screen.NewComplaintDetail(c, zap.NewNop())
	require.NoError(t, d.Load(context.Background(), "C1"))

	assert.True(t, d.IsSubmitter())
	assert.False(t, d.CanUpdateStatus(), "submitters view but never transition")
	assert.Nil(t, d.Transitions())
}

func TestStaffSeeAllFourTransitions(t *testing.T) {
	cm := wifiComplaint()
	for _, r := range []model.Role{model.RoleAdmin, model.RoleFaculty} {
		c := newTestClient(t, complaintBackend(&cm, model.User{ID: "staff", Role: r}, nil))
		d := screen.NewComplaintDetail(c, zap.NewNop())
		require.NoError(t, d.Load(context.Background(), "C1"))

		assert.True(t, d.CanUpdateStatus())
		assert.Len(t, d.Transitions(), 4, "no adjacency check: all four statuses offered")
		assert.False(t, d.IsSubmitter())
	}
}

func TestDeclinedConfirmationSkipsRequest(t *testing.T) {
	cm := wifiComplaint()
	var puts int
	c := newTestClient(t, complaintBackend(&cm, model.User{ID: "staff", Role: model.RoleAdmin}, &puts))

	d := screen.NewComplaintDetail(c, zap.NewNop())
	require.NoError(t, d.Load(context.Background(), "C1"))

	var prompt string
	err := d.SetStatus(context.Background(), model.ComplaintResolved, func(p string) bool {
		prompt = p
		return false
	})
	require.NoError(t, err, "declining is not an error")
	assert.Equal(t, `Change complaint status to "resolved"?`, prompt)
	assert.Zero(t, puts, "declined update must never be sent")
	assert.Equal(t, model.ComplaintPending, d.Complaint().Status)
}

func TestConfirmedUpdateRefetches(t *testing.T) {
	cm := wifiComplaint()
	var puts int
	c := newTestClient(t, complaintBackend(&cm, model.User{ID: "staff", Role: model.RoleFaculty}, &puts))

	d := screen.NewComplaintDetail(c, zap.NewNop())
	require.NoError(t, d.Load(context.Background(), "C1"))

	err := d.SetStatus(context.Background(), model.ComplaintInProgress, func(string) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 1, puts)
	assert.Equal(t, model.ComplaintInProgress, d.Complaint().Status)
}

func TestNonStaffUpdateRefusedLocally(t *testing.T) {
	cm := wifiComplaint()
	var puts int
	c := newTestClient(t, complaintBackend(&cm, model.User{ID: "U1", Role: model.RoleStudent}, &puts))

	d := screen.NewComplaintDetail(c, zap.NewNop())
	require.NoError(t, d.Load(context.Background(), "C1"))

	err := d.SetStatus(context.Background(), model.ComplaintClosed, func(string) bool { return true })
	require.Error(t, err)
	assert.Zero(t, puts)
}

func TestFailedUpdateLeavesStateAndSurfacesMessage(t *testing.T) {
	cm := wifiComplaint()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/me":
			writeOK(w, model.User{ID: "staff", Role: model.RoleAdmin})
		case r.Method == http.MethodPut:
			writeFail(w, http.StatusInternalServerError, "Failed to update status")
		default:
			writeOK(w, &cm)
		}
	}))

	d := screen.NewComplaintDetail(c, zap.NewNop())
	require.NoError(t, d.Load(context.Background(), "C1"))

	err := d.SetStatus(context.Background(), model.ComplaintClosed, func(string) bool { return true })
	require.Error(t, err)
	assert.Equal(t, "Failed to update status", err.Error())
	assert.Equal(t, model.ComplaintPending, d.Complaint().Status)
}
