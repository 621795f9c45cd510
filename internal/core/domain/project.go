package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used by every date field of the domain.
const DateLayout = "2006-01-02"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectSuspended  ProjectStatus = "SUSPENDED"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectInProgress, ProjectCompleted, ProjectSuspended:
		return true
	}
	return false
}

// Project is an initiative run by the association under a manager.
type Project struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	ManagerID   int             `json:"managerId" yaml:"managerId"` // Weak reference to Member.ID
	StartDate   string          `json:"startDate" yaml:"startDate"`
	EndDate     string          `json:"endDate" yaml:"endDate"`
	Budget      decimal.Decimal `json:"budget" yaml:"budget"`
	Status      ProjectStatus   `json:"status" yaml:"status"`
	Files       []string        `json:"files" yaml:"files"`
}

// NewProject holds every project field except id and files.
type NewProject struct {
	Name        string
	Description string
	ManagerID   int
	StartDate   string
	EndDate     string
	Budget      decimal.Decimal
	Status      ProjectStatus
}

// ValidateDates checks that both dates parse and the end is not before the start.
// The store never calls this; creation flows do.
func (p NewProject) ValidateDates() error {
	return validateDateRange(p.StartDate, p.EndDate)
}

func validateDateRange(start, end string) error {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return nil
}

// Progress returns the elapsed share (0-100) of the project's date window at now.
// It returns false when the dates do not parse.
func (p Project) Progress(now time.Time) (float64, bool) {
	startDate, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return 0, false
	}
	endDate, err := time.Parse(DateLayout, p.EndDate)
	if err != nil {
		return 0, false
	}
	total := endDate.Sub(startDate)
	if total <= 0 {
		return 0, true
	}
	return float64(now.Sub(startDate)) / float64(total) * 100, true
}

// IsNearDeadline reports whether an in-progress project has used at least 90%
// of its window without having ended yet.
func (p Project) IsNearDeadline(now time.Time) bool {
	if p.Status != ProjectInProgress {
		return false
	}
	startDate, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return false
	}
	endDate, err := time.Parse(DateLayout, p.EndDate)
	if err != nil {
		return false
	}
	if endDate.Before(now) || startDate.After(now) {
		return false
	}
	progress, _ := p.Progress(now)
	return progress >= 90
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	c := p
	if p.Files != nil {
		c.Files = make([]string, len(p.Files))
		copy(c.Files, p.Files)
	}
	return c
}
