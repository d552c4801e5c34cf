package role_test

import (
	"testing"

	"campus-services-client/internal/model"
	"campus-services-client/internal/role"
)

func TestContextualRoleWinsOverAccountRole(t *testing.T) {
	apt := &model.Appointment{
		Student: model.UserRef{ID: "S1"},
		Faculty: model.FacultyRef{ID: "F1"},
	}

	// an admin who is the faculty party acts as faculty on this entity
	admin := &model.User{ID: "F1", Role: model.RoleAdmin}
	if got := role.Resolve(admin, apt); got != model.RoleFaculty {
		t.Fatalf("got %s, want faculty", got)
	}

	student := &model.User{ID: "S1", Role: model.RoleStudent}
	if got := role.Resolve(student, apt); got != model.RoleStudent {
		t.Fatalf("got %s, want student", got)
	}
}

func TestAccountRoleFallback(t *testing.T) {
	apt := &model.Appointment{
		Student: model.UserRef{ID: "S1"},
		Faculty: model.FacultyRef{ID: "F1"},
	}
	// not a party on the appointment
	admin := &model.User{ID: "X9", Role: model.RoleAdmin}
	if got := role.Resolve(admin, apt); got != model.RoleAdmin {
		t.Fatalf("got %s, want admin", got)
	}
}

func TestDefaultsToStudent(t *testing.T) {
	if got := role.Resolve(nil, nil); got != model.RoleStudent {
		t.Fatalf("nil profile: got %s", got)
	}
	if got := role.Resolve(&model.User{ID: "U1", Role: "superuser"}, nil); got != model.RoleStudent {
		t.Fatalf("unknown role: got %s", got)
	}
}

func TestEmptyPartyIDsNeverMatch(t *testing.T) {
	apt := &model.Appointment{}
	u := &model.User{ID: "", Role: model.RoleFaculty}
	if got := role.Resolve(u, apt); got != model.RoleFaculty {
		t.Fatalf("empty ids matched: got %s", got)
	}
}

func TestIsSubmitter(t *testing.T) {
	c := &model.Complaint{User: model.UserRef{ID: "U1", Role: model.RoleStudent}}

	if !role.IsSubmitter(&model.User{ID: "U1"}, c) {
		t.Fatal("submitter not recognized")
	}
	if role.IsSubmitter(&model.User{ID: "U2"}, c) {
		t.Fatal("non-submitter recognized")
	}
	// ids compare against ids, never against the viewer's role string
	if role.IsSubmitter(&model.User{ID: "student", Role: model.RoleStudent}, c) {
		t.Fatal("role string matched a submitter id")
	}
	if role.IsSubmitter(nil, c) {
		t.Fatal("nil profile recognized as submitter")
	}
}
