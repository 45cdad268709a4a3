package domain

import (
	"errors"
	"time"
)

// InterestCategory classifies a student interest.
type InterestCategory string

const (
	CategoryAcademic  InterestCategory = "academic"
	CategoryArtistic  InterestCategory = "artistic"
	CategoryAthletic  InterestCategory = "athletic"
	CategoryTechnical InterestCategory = "technical"
	CategorySocial    InterestCategory = "social"
	CategoryOther     InterestCategory = "other"
)

// ApplicationStatus tracks a university application through its lifecycle.
type ApplicationStatus string

const (
	ApplicationNotStarted ApplicationStatus = "Not Started"
	ApplicationInProgress ApplicationStatus = "In Progress"
	ApplicationSubmitted  ApplicationStatus = "Submitted"
	ApplicationAccepted   ApplicationStatus = "Accepted"
	ApplicationRejected   ApplicationStatus = "Rejected"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("missing required fields")

// Interest is a named student interest with a category.
type Interest struct {
	Name     string           `json:"name" bson:"name"`
	Category InterestCategory `json:"category" bson:"category"`
}

// Achievement records something the student has accomplished.
type Achievement struct {
	Title string     `json:"title" bson:"title"`
	Icon  string     `json:"icon,omitempty" bson:"icon,omitempty"`
	Date  *time.Time `json:"date,omitempty" bson:"date,omitempty"`
}

// SubjectProgress tracks the student's standing in a single subject.
type SubjectProgress struct {
	Subject  string `json:"subject" bson:"subject"`
	Grade    string `json:"grade" bson:"grade"`
	Progress int    `json:"progress,omitempty" bson:"progress,omitempty"`
}

// UniversityApplication is one application the student is working on.
type UniversityApplication struct {
	UniversityName string            `json:"university_name" bson:"university_name"`
	Program        string            `json:"program" bson:"program"`
	Deadline       time.Time         `json:"deadline" bson:"deadline"`
	Status         ApplicationStatus `json:"status" bson:"status"`
}

// ApplicationProgress summarizes the student's overall application work.
type ApplicationProgress struct {
	AverageCompletion int    `json:"average_completion" bson:"average_completion"`
	CurrentProject    string `json:"current_project,omitempty" bson:"current_project,omitempty"`
	ProjectLink       string `json:"project_link,omitempty" bson:"project_link,omitempty"`
}

// Account is the identity + profile aggregate. Emails are stored lowercase;
// PasswordHash never crosses the API boundary.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`

	Age    int    `json:"age,omitempty"`
	School string `json:"school,omitempty"`
	Grade  string `json:"grade,omitempty"`

	Interests              []Interest              `json:"interests"`
	Achievements           []Achievement           `json:"achievements"`
	AcademicProgress       []SubjectProgress       `json:"academic_progress"`
	UniversityApplications []UniversityApplication `json:"university_applications"`
	ApplicationProgress    ApplicationProgress     `json:"application_progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
