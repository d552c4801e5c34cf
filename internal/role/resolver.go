// Package role derives the acting user's role for a screen.
package role

import "campus-services-client/internal/model"

// Resolve picks the role used for action visibility. Contextual match against
// the loaded appointment wins over the account role: an admin who happens to
// be the faculty party acts as faculty here. Fallback order is contextual
// match, account role, then student.
func Resolve(profile *model.User, apt *model.Appointment) model.Role {
	if profile == nil {
		return model.RoleStudent
	}
	if apt != nil {
		if apt.Student.ID != "" && apt.Student.ID == profile.ID {
			return model.RoleStudent
		}
		if apt.Faculty.ID != "" && apt.Faculty.ID == profile.ID {
			return model.RoleFaculty
		}
	}
	if model.ValidRole(profile.Role) {
		return profile.Role
	}
	return model.RoleStudent
}

// Account returns the profile's global role, defaulting to student.
func Account(profile *model.User) model.Role {
	if profile != nil && model.ValidRole(profile.Role) {
		return profile.Role
	}
	return model.RoleStudent
}

// IsSubmitter reports whether the viewer filed the complaint. Both sides are
// ids; the submitter id is never compared against a role string.
func IsSubmitter(profile *model.User, c *model.Complaint) bool {
	return profile != nil && c != nil && profile.ID != "" && c.User.ID == profile.ID
}
