package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanApproveLeaveFor(t *testing.T) {
	t.Parallel()

	supervisorID := "sup-1"

	tests := []struct {
		name                  string
		approverRole          Role
		approverID            string
		requesterRole         Role
		requesterSupervisorID *string
		want                  bool
	}{
		{
			name:                  "direct supervisor approves regardless of role floor",
			approverRole:          RoleSupervisor,
			approverID:            "sup-1",
			requesterRole:         RoleTech,
			requesterSupervisorID: &supervisorID,
			want:                  true,
		},
		{
			name:                  "unrelated supervisor is below the floor",
			approverRole:          RoleSupervisor,
			approverID:            "sup-2",
			requesterRole:         RoleTech,
			requesterSupervisorID: &supervisorID,
			want:                  false,
		},
		{
			name:          "manager approves technician without a supervisor link",
			approverRole:  RoleManager,
			approverID:    "mgr-1",
			requesterRole: RoleTech,
			want:          true,
		},
		{
			name:          "manager approves supervisor",
			approverRole:  RoleManager,
			approverID:    "mgr-1",
			requesterRole: RoleSupervisor,
			want:          true,
		},
		{
			name:          "manager may not approve a peer manager",
			approverRole:  RoleManager,
			approverID:    "mgr-1",
			requesterRole: RoleManager,
			want:          false,
		},
		{
			name:          "admin approves manager",
			approverRole:  RoleAdmin,
			approverID:    "adm-1",
			requesterRole: RoleManager,
			want:          true,
		},
		{
			name:          "technician never approves",
			approverRole:  RoleTech,
			approverID:    "tech-1",
			requesterRole: RoleTech,
			want:          false,
		},
		{
			name:          "unknown role never approves",
			approverRole:  Role("contractor"),
			approverID:    "ext-1",
			requesterRole: RoleTech,
			want:          false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CanApproveLeaveFor(tt.approverRole, tt.approverID, tt.requesterRole, tt.requesterSupervisorID)
			assert.Equal(t, tt.want, got)
		})
	}
}
