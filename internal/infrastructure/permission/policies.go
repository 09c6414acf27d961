package permission

import (
	"fmt"

	"github.com/orris-inc/subkeeper/internal/shared/authorization"
)

type Resource string

type Action string

const (
	ResourcePlan         Resource = "plan"
	ResourceSubscription Resource = "subscription"
	ResourceHistory      Resource = "subscription_history"
	ResourceProfile      Resource = "profile"
	ResourceUser         Resource = "user"
)

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionCancel Action = "cancel"
	// ActionList covers listings across all users.
	ActionList Action = "list"
)

type policy struct {
	role     authorization.UserRole
	resource Resource
	action   Action
}

// defaultPolicies are the grants seeded at startup. Admin inherits everything
// granted to user.
var defaultPolicies = []policy{
	{authorization.RoleUser, ResourcePlan, ActionRead},
	{authorization.RoleUser, ResourceSubscription, ActionCreate},
	{authorization.RoleUser, ResourceSubscription, ActionRead},
	{authorization.RoleUser, ResourceSubscription, ActionUpdate},
	{authorization.RoleUser, ResourceSubscription, ActionCancel},
	{authorization.RoleUser, ResourceHistory, ActionRead},
	{authorization.RoleUser, ResourceProfile, ActionRead},
	{authorization.RoleUser, ResourceProfile, ActionUpdate},
	{authorization.RoleUser, ResourceUser, ActionRead},

	{authorization.RoleAdmin, ResourcePlan, ActionCreate},
	{authorization.RoleAdmin, ResourcePlan, ActionUpdate},
	{authorization.RoleAdmin, ResourcePlan, ActionDelete},
	{authorization.RoleAdmin, ResourceSubscription, ActionList},
}

// SeedDefaultPolicies adds any missing default grant. Existing rows are kept,
// so it is safe to run on every start.
func (e *Enforcer) SeedDefaultPolicies() error {
	if err := e.AddRoleInheritance(authorization.RoleAdmin.String(), authorization.RoleUser.String()); err != nil {
		return err
	}

	for _, p := range defaultPolicies {
		if err := e.AddPolicy(p.role.String(), p.resource, p.action); err != nil {
			return fmt.Errorf("failed to seed policy [%s, %s, %s]: %w", p.role, p.resource, p.action, err)
		}
	}

	e.logger.Infow("default permissions seeded", "policies", len(defaultPolicies))
	return nil
}
