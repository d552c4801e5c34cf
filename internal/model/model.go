package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentApproved  AppointmentStatus = "approved"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UserRef is the embedded party summary the backend populates on
// appointments and complaints.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

type Faculty struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation,omitempty"`
}

type FacultyRef struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
}

type Appointment struct {
	ID           string            `json:"_id"`
	Student      UserRef           `json:"studentId"`
	Faculty      FacultyRef        `json:"facultyId"`
	Date         string            `json:"date"` // ISO calendar date
	Time         string            `json:"time"` // HH:MM, 24h
	Duration     int               `json:"duration"`
	Reason       string            `json:"reason"`
	Status       AppointmentStatus `json:"status"`
	MeetingLink  string            `json:"meetingLink,omitempty"`
	FacultyNotes string            `json:"facultyNotes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Durations the booking flow offers, in minutes.
var AppointmentDurations = []int{15, 30, 45, 60}

type ComplaintType string

const (
	ComplaintAC             ComplaintType = "ac"
	ComplaintProjector      ComplaintType = "projector"
	ComplaintHDMICable      ComplaintType = "hdmi_cable"
	ComplaintWiFi           ComplaintType = "wifi"
	ComplaintFurniture      ComplaintType = "furniture"
	ComplaintCleanliness    ComplaintType = "cleanliness"
	ComplaintPowerOutlet    ComplaintType = "power_outlet"
	ComplaintWhiteboard     ComplaintType = "whiteboard"
	ComplaintSoundSystem    ComplaintType = "sound_system"
	ComplaintLights         ComplaintType = "lights"
	ComplaintWaterDispenser ComplaintType = "water_dispenser"
	ComplaintOther          ComplaintType = "other"
)

var ComplaintTypeLabels = map[ComplaintType]string{
	ComplaintAC:             "AC Issue",
	ComplaintProjector:      "Projector Issue",
	ComplaintHDMICable:      "HDMI Cable Needed",
	ComplaintWiFi:           "WiFi Issue",
	ComplaintFurniture:      "Furniture Issue",
	ComplaintCleanliness:    "Cleanliness",
	ComplaintPowerOutlet:    "Power Outlet",
	ComplaintWhiteboard:     "Whiteboard",
	ComplaintSoundSystem:    "Sound System",
	ComplaintLights:         "Lights",
	ComplaintWaterDispenser: "Water Dispenser",
	ComplaintOther:          "Other",
}

type Complaint struct {
	ID          string          `json:"_id"`
	User        UserRef         `json:"userId"`
	Type        ComplaintType   `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Building    string          `json:"building,omitempty"`
	Floor       string          `json:"floor,omitempty"`
	Status      ComplaintStatus `json:"status"`
	Priority    Priority        `json:"priority"`
	AssignedTo  *UserRef        `json:"assignedTo,omitempty"`
	AdminNotes  string          `json:"adminNotes,omitempty"`
	ResolvedAt  *time.Time      `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleFaculty || r == RoleAdmin
}

func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	}
	return false
}

func ValidComplaintType(t ComplaintType) bool {
	_, ok := ComplaintTypeLabels[t]
	return ok
}

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidDuration(minutes int) bool {
	for _, d := range AppointmentDurations {
		if minutes == d {
			return true
		}
	}
	return false
}
