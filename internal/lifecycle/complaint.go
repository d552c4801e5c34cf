package lifecycle

import (
	"strings"

	"campus-services-client/internal/model"
)

// complaintOrder is the nominal progression. The client does not enforce
// adjacency: staff may set any status at any time, behind a confirmation.
var complaintOrder = []model.ComplaintStatus{
	model.ComplaintPending,
	model.ComplaintInProgress,
	model.ComplaintResolved,
	model.ComplaintClosed,
}

// CanManageComplaints reports whether the role sees transition controls at
// all. Submitters view their complaints but never transition them.
func CanManageComplaints(r model.Role) bool {
	return r == model.RoleAdmin || r == model.RoleFaculty
}

// ComplaintTransitions lists every status the actor may set. Staff get the
// full set; everyone else gets none.
func ComplaintTransitions(r model.Role) []model.ComplaintStatus {
	if !CanManageComplaints(r) {
		return nil
	}
	out := make([]model.ComplaintStatus, len(complaintOrder))
	copy(out, complaintOrder)
	return out
}

// CanSetComplaintStatus reports whether role r may set target.
func CanSetComplaintStatus(r model.Role, target model.ComplaintStatus) bool {
	return CanManageComplaints(r) && model.ValidComplaintStatus(target)
}

// NextComplaintStatus returns the nominal successor, for UIs that want to
// suggest the usual next step.
func NextComplaintStatus(s model.ComplaintStatus) (model.ComplaintStatus, bool) {
	for i, cur := range complaintOrder {
		if cur == s && i+1 < len(complaintOrder) {
			return complaintOrder[i+1], true
		}
	}
	return "", false
}

// ComplaintStatusLabel renders a status for display ("in_progress" →
// "In Progress").
func ComplaintStatusLabel(s model.ComplaintStatus) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ConfirmSetStatusPrompt is the confirmation shown before a status PUT is
// issued.
func ConfirmSetStatusPrompt(target model.ComplaintStatus) string {
	return `Change complaint status to "` + strings.ReplaceAll(string(target), "_", " ") + `"?`
}

func FilterComplaints(cs []model.Complaint, status string, ctype string) []model.Complaint {
	var out []model.Complaint
	for _, c := range cs {
		if status != "" && status != "all" && string(c.Status) != status {
			continue
		}
		if ctype != "" && ctype != "all" && string(c.Type) != ctype {
			continue
		}
		out = append(out, c)
	}
	return out
}
