// Package lifecycle models the appointment and complaint status machines as
// explicit transition tables instead of conditionals scattered across screens.
package lifecycle

import "campus-services-client/internal/model"

// Action is a client-initiated appointment transition. "completed" is set
// server-side only and is never offered as an action.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

var actionTarget = map[Action]model.AppointmentStatus{
	ActionApprove: model.AppointmentApproved,
	ActionReject:  model.AppointmentRejected,
	ActionCancel:  model.AppointmentCancelled,
}

// Target returns the status a successful action moves the appointment to.
func (a Action) Target() (model.AppointmentStatus, bool) {
	t, ok := actionTarget[a]
	return t, ok
}

// status × contextual role → actions offered. Roles absent from a row
// (admin, or anyone who is not a party) get nothing; terminal statuses have
// no row at all.
var appointmentActions = map[model.AppointmentStatus]map[model.Role][]Action{
	model.AppointmentPending: {
		model.RoleFaculty: {ActionApprove, ActionReject, ActionCancel},
		model.RoleStudent: {ActionCancel},
	},
	model.AppointmentApproved: {
		model.RoleFaculty: {ActionCancel},
		model.RoleStudent: {ActionCancel},
	},
}

// AppointmentActions lists the transition buttons to show for status s to an
// actor whose contextual role is r.
func AppointmentActions(s model.AppointmentStatus, r model.Role) []Action {
	return appointmentActions[s][r]
}

// CanTransition reports whether role r may move an appointment from s to
// target. No status ever transitions back to pending.
func CanTransition(s model.AppointmentStatus, r model.Role, target model.AppointmentStatus) bool {
	for _, a := range appointmentActions[s][r] {
		if actionTarget[a] == target {
			return true
		}
	}
	return false
}

// AppointmentTerminal reports whether no further client transition exists.
func AppointmentTerminal(s model.AppointmentStatus) bool {
	switch s {
	case model.AppointmentRejected, model.AppointmentCompleted, model.AppointmentCancelled:
		return true
	}
	return false
}

var appointmentBanners = map[model.AppointmentStatus]string{
	model.AppointmentPending:   "Waiting for the faculty member to respond.",
	model.AppointmentApproved:  "This appointment has been approved.",
	model.AppointmentRejected:  "This appointment was rejected.",
	model.AppointmentCompleted: "This appointment has been completed.",
	model.AppointmentCancelled: "This appointment was cancelled.",
}

// AppointmentBanner is the read-only status line shown when no action applies.
func AppointmentBanner(s model.AppointmentStatus) string {
	if b, ok := appointmentBanners[s]; ok {
		return b
	}
	return "Status: " + string(s)
}

// MatchesAppointmentFilter implements the list buckets: the empty filter
// matches everything, and the "rejected" bucket folds in cancelled — the two
// terminal-failure states are one bucket to the user even though they are
// distinct on the wire.
func MatchesAppointmentFilter(s model.AppointmentStatus, filter string) bool {
	switch filter {
	case "", "all":
		return true
	case string(model.AppointmentRejected):
		return s == model.AppointmentRejected || s == model.AppointmentCancelled
	default:
		return string(s) == filter
	}
}

func FilterAppointments(apts []model.Appointment, filter string) []model.Appointment {
	var out []model.Appointment
	for _, a := range apts {
		if MatchesAppointmentFilter(a.Status, filter) {
			out = append(out, a)
		}
	}
	return out
}
