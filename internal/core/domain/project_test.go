package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewProject_ValidateDates(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr string
	}{
		{name: "same day", start: "2024-03-01", end: "2024-03-01"},
		{name: "end after start", start: "2024-03-01", end: "2024-12-31"},
		{name: "end before start", start: "2024-03-01", end: "2024-02-28", wantErr: "before start date"},
		{name: "bad start", start: "03/01/2024", end: "2024-12-31", wantErr: "invalid start date"},
		{name: "bad end", start: "2024-03-01", end: "", wantErr: "invalid end date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.NewProject{StartDate: tt.start, EndDate: tt.end}.ValidateDates()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProject_IsNearDeadline(t *testing.T) {
	now := time.Date(2024, time.June, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		project domain.Project
		want    bool
	}{
		{
			name:    "in progress at 95 percent",
			project: domain.Project{Status: domain.ProjectInProgress, StartDate: "2024-01-01", EndDate: "2024-07-05"},
			want:    true,
		},
		{
			name:    "in progress at half way",
			project: domain.Project{Status: domain.ProjectInProgress, StartDate: "2024-01-01", EndDate: "2024-12-31"},
			want:    false,
		},
		{
			name:    "already ended",
			project: domain.Project{Status: domain.ProjectInProgress, StartDate: "2024-01-01", EndDate: "2024-06-01"},
			want:    false,
		},
		{
			name:    "not started",
			project: domain.Project{Status: domain.ProjectInProgress, StartDate: "2024-07-01", EndDate: "2024-07-02"},
			want:    false,
		},
		{
			name:    "completed projects are ignored",
			project: domain.Project{Status: domain.ProjectCompleted, StartDate: "2024-01-01", EndDate: "2024-07-05"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.IsNearDeadline(now))
		})
	}
}
