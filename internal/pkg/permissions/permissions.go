// Package permissions maps the closed set of user roles to the actions they
// may perform. Handlers never branch on raw role strings; they ask the table.
package permissions

import "strings"

type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleDemo   Role = "demo"
)

type Permission string

const (
	PermListingCreate    Permission = "listing:create"
	PermListingUpdateOwn Permission = "listing:update_own"
	PermListingUpdateAny Permission = "listing:update_any"
	PermListingModerate  Permission = "listing:moderate"
	PermContactRequest   Permission = "contact:request"
	PermPaymentCreate    Permission = "payment:create"
	PermReviewCreate     Permission = "review:create"
	PermUploadImage      Permission = "upload:image"
	PermUserManage       Permission = "user:manage"
	PermAuditRead        Permission = "audit:read"
)

var rolePermissions = map[Role]map[Permission]bool{
	RoleUser: {
		PermListingCreate:    true,
		PermListingUpdateOwn: true,
		PermContactRequest:   true,
		PermPaymentCreate:    true,
		PermReviewCreate:     true,
		PermUploadImage:      true,
	},
	RoleSeller: {
		PermListingCreate:    true,
		PermListingUpdateOwn: true,
		PermContactRequest:   true,
		PermPaymentCreate:    true,
		PermReviewCreate:     true,
		PermUploadImage:      true,
	},
	RoleDemo: {
		PermContactRequest: true,
		PermPaymentCreate:  true,
	},
	RoleAdmin: {
		PermListingCreate:    true,
		PermListingUpdateOwn: true,
		PermListingUpdateAny: true,
		PermListingModerate:  true,
		PermContactRequest:   true,
		PermPaymentCreate:    true,
		PermReviewCreate:     true,
		PermUploadImage:      true,
		PermUserManage:       true,
		PermAuditRead:        true,
	},
}

// ParseRole normalizes a stored role string into a Role. Unknown values
// degrade to RoleUser so a corrupted row never gains privileges.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleSeller:
		return RoleSeller
	case RoleDemo:
		return RoleDemo
	default:
		return RoleUser
	}
}

// Can reports whether the given role holds the permission.
func Can(role Role, perm Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[perm]
}
