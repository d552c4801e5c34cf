package lifecycle_test

import (
	"testing"

	"campus-services-client/internal/lifecycle"
	"campus-services-client/internal/model"
)

func has(actions []lifecycle.Action, a lifecycle.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func TestPendingActionsByRole(t *testing.T) {
	fac := lifecycle.AppointmentActions(model.AppointmentPending, model.RoleFaculty)
	if !has(fac, lifecycle.ActionApprove) || !has(fac, lifecycle.ActionReject) || !has(fac, lifecycle.ActionCancel) {
		t.Fatalf("faculty on pending: got %v, want approve/reject/cancel", fac)
	}

	stu := lifecycle.AppointmentActions(model.AppointmentPending, model.RoleStudent)
	if has(stu, lifecycle.ActionApprove) || has(stu, lifecycle.ActionReject) {
		t.Fatalf("student on pending must not see approve/reject: got %v", stu)
	}
	if !has(stu, lifecycle.ActionCancel) {
		t.Fatalf("student on pending must see cancel: got %v", stu)
	}

	if adm := lifecycle.AppointmentActions(model.AppointmentPending, model.RoleAdmin); len(adm) != 0 {
		t.Fatalf("admin is not a party and gets no actions: got %v", adm)
	}
}

func TestCancelVisibility(t *testing.T) {
	for _, s := range []model.AppointmentStatus{model.AppointmentPending, model.AppointmentApproved} {
		for _, r := range []model.Role{model.RoleStudent, model.RoleFaculty} {
			if !has(lifecycle.AppointmentActions(s, r), lifecycle.ActionCancel) {
				t.Errorf("%s as %s: cancel missing", s, r)
			}
		}
	}
	for _, s := range []model.AppointmentStatus{model.AppointmentRejected, model.AppointmentCompleted, model.AppointmentCancelled} {
		for _, r := range []model.Role{model.RoleStudent, model.RoleFaculty, model.RoleAdmin} {
			if got := lifecycle.AppointmentActions(s, r); len(got) != 0 {
				t.Errorf("%s as %s: terminal status offered %v", s, r, got)
			}
		}
	}
}

func TestNoReentryToPending(t *testing.T) {
	statuses := []model.AppointmentStatus{
		model.AppointmentPending, model.AppointmentApproved, model.AppointmentRejected,
		model.AppointmentCompleted, model.AppointmentCancelled,
	}
	roles := []model.Role{model.RoleStudent, model.RoleFaculty, model.RoleAdmin}
	for _, s := range statuses {
		for _, r := range roles {
			if lifecycle.CanTransition(s, r, model.AppointmentPending) {
				t.Errorf("%s as %s: transition back to pending allowed", s, r)
			}
		}
	}
}

func TestApprovedTransitions(t *testing.T) {
	if lifecycle.CanTransition(model.AppointmentApproved, model.RoleFaculty, model.AppointmentApproved) {
		t.Error("approved → approved allowed")
	}
	if lifecycle.CanTransition(model.AppointmentApproved, model.RoleFaculty, model.AppointmentRejected) {
		t.Error("approved → rejected allowed")
	}
	if !lifecycle.CanTransition(model.AppointmentApproved, model.RoleStudent, model.AppointmentCancelled) {
		t.Error("approved → cancelled by student refused")
	}
	// completed is server-side only, never a client transition
	if lifecycle.CanTransition(model.AppointmentApproved, model.RoleFaculty, model.AppointmentCompleted) {
		t.Error("client offered the completed transition")
	}
}

func TestRejectedFilterBucket(t *testing.T) {
	apts := []model.Appointment{
		{ID: "1", Status: model.AppointmentPending},
		{ID: "2", Status: model.AppointmentRejected},
		{ID: "3", Status: model.AppointmentCancelled},
		{ID: "4", Status: model.AppointmentApproved},
	}

	got := lifecycle.FilterAppointments(apts, "rejected")
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("rejected bucket: got %v, want ids 2 and 3", got)
	}

	got = lifecycle.FilterAppointments(apts, "cancelled")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("cancelled filter must be exact: got %v", got)
	}

	got = lifecycle.FilterAppointments(apts, "pending")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("pending filter must be exact: got %v", got)
	}

	if got = lifecycle.FilterAppointments(apts, "all"); len(got) != 4 {
		t.Fatalf("all filter: got %d, want 4", len(got))
	}
	if got = lifecycle.FilterAppointments(apts, ""); len(got) != 4 {
		t.Fatalf("empty filter: got %d, want 4", len(got))
	}
}

func TestBanners(t *testing.T) {
	for _, s := range []model.AppointmentStatus{
		model.AppointmentPending, model.AppointmentApproved, model.AppointmentRejected,
		model.AppointmentCompleted, model.AppointmentCancelled,
	} {
		if lifecycle.AppointmentBanner(s) == "" {
			t.Errorf("%s: empty banner", s)
		}
	}
}

func TestActionTargets(t *testing.T) {
	cases := map[lifecycle.Action]model.AppointmentStatus{
		lifecycle.ActionApprove: model.AppointmentApproved,
		lifecycle.ActionReject:  model.AppointmentRejected,
		lifecycle.ActionCancel:  model.AppointmentCancelled,
	}
	for a, want := range cases {
		got, ok := a.Target()
		if !ok || got != want {
			t.Errorf("%s.Target() = %s, %v; want %s", a, got, ok, want)
		}
	}
	if _, ok := lifecycle.Action("complete").Target(); ok {
		t.Error("unknown action has a target")
	}
}
