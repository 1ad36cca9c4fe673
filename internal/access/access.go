// Package access centralizes the role/ownership rules that decide who may
// read, write, or delete portal resources. Every handler goes through these
// predicates instead of re-implementing its own checks.
package access

import "fileportal/internal/domain"

// SharedWithAll marks a file visible to every role group.
const SharedWithAll = "all"

// EffectiveRole resolves the role group an actor is operating as. Developer
// and collector accounts may act "as" a target group ("view-as" mode); for
// everyone else the target is ignored.
func EffectiveRole(actor *domain.User, targetRole string) string {
	if actor.IsElevated() && targetRole != "" {
		return targetRole
	}
	return string(actor.Role)
}

// CanViewFile reports whether actor may see a file. Visible when the actor
// is the uploader, holds an elevated role, the file's uploader belongs to
// the actor's own group, or the file is shared with the actor's group or
// with everyone.
func CanViewFile(actor *domain.User, uploadedBy string, uploaderRole domain.Role, sharedWith string) bool {
	if actor.IsElevated() {
		return true
	}
	if uploadedBy == actor.Username {
		return true
	}
	if uploaderRole == actor.Role {
		return true
	}
	return sharedWith == SharedWithAll || sharedWith == string(actor.Role)
}

// CanUploadFile: every real role may upload; ownership is tracked by username.
func CanUploadFile(role domain.Role) bool {
	return domain.IsValidRole(string(role))
}

// CanSetFileStatus: approval workflow belongs to collector and developer.
func CanSetFileStatus(role domain.Role) bool {
	return role == domain.RoleCollector || role == domain.RoleDeveloper
}

// CanDeleteFile: the uploader, or an elevated role. The original portal
// additionally checked a nonexistent "admin" role here; that branch was
// unreachable and is not carried over.
func CanDeleteFile(actor *domain.User, uploadedBy string) bool {
	return actor.IsElevated() || uploadedBy == actor.Username
}

// CanCreateFolder: developers and the ordinary user groups. Collectors keep
// their folders in the vault instead.
func CanCreateFolder(role domain.Role) bool {
	return role == domain.RoleDeveloper || domain.IsRoleGroup(string(role))
}

// CanDeleteFolder: the creator, or an elevated role.
func CanDeleteFolder(actor *domain.User, createdBy string) bool {
	return actor.IsElevated() || createdBy == actor.Username
}

// CanManageTabs: elevated roles may add categories to any group; ordinary
// users only to their own.
func CanManageTabs(actor *domain.User, roleGroup string) bool {
	return actor.IsElevated() || string(actor.Role) == roleGroup
}

// CanAccessVault: vault files and folders are collector-only.
func CanAccessVault(role domain.Role) bool {
	return role == domain.RoleCollector
}

// CanListCollectors: developers may enumerate collector accounts.
func CanListCollectors(role domain.Role) bool {
	return role == domain.RoleDeveloper
}

// CanReadVaultTabs: a collector may read its own tab list; developers may
// read any collector's tab list (but never vault files).
func CanReadVaultTabs(actor *domain.User, collectorID int64) bool {
	if actor.Role == domain.RoleCollector {
		return actor.ID == collectorID
	}
	return actor.Role == domain.RoleDeveloper
}

// CanManageUsers: admin user management is developer-only.
func CanManageUsers(role domain.Role) bool {
	return role == domain.RoleDeveloper
}
