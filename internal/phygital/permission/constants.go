package permission

// Role is the authorization bundle assigned to a user by the auth subsystem.
type Role string

// Permission is an atomic capability flag.
type Permission string

// Roles
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEditor   Role = "editor"
	RoleViewer   Role = "viewer"
	RoleCustomer Role = "customer"
)

// Permission constants
const (
	PermViewDashboard Permission = "view:dashboard"

	// Products
	PermViewProducts   Permission = "view:products"
	PermCreateProducts Permission = "create:products"
	PermEditProducts   Permission = "edit:products"
	PermDeleteProducts Permission = "delete:products"

	// Customers
	PermViewCustomers   Permission = "view:customers"
	PermManageCustomers Permission = "manage:customers"

	// Analytics
	PermViewAnalytics   Permission = "view:analytics"
	PermExportAnalytics Permission = "export:analytics"

	// Loyalty
	PermViewRewards   Permission = "view:rewards"
	PermManageRewards Permission = "manage:rewards"
	PermRedeemRewards Permission = "redeem:rewards"

	// NFC tags
	PermViewNFC   Permission = "view:nfc"
	PermManageNFC Permission = "manage:nfc"

	// Blockchain
	PermViewBlockchain   Permission = "view:blockchain"
	PermManageBlockchain Permission = "manage:blockchain"

	// Users & settings
	PermViewUsers      Permission = "view:users"
	PermManageUsers    Permission = "manage:users"
	PermManageSettings Permission = "manage:settings"

	// PermAdminAll is a wildcard, interpreted by HasPermission rather than by set membership.
	PermAdminAll Permission = "admin:all"
)

var allRoles = []Role{
	RoleAdmin,
	RoleManager,
	RoleEditor,
	RoleViewer,
	RoleCustomer,
}

var allPermissions = []Permission{
	PermViewDashboard,
	PermViewProducts,
	PermCreateProducts,
	PermEditProducts,
	PermDeleteProducts,
	PermViewCustomers,
	PermManageCustomers,
	PermViewAnalytics,
	PermExportAnalytics,
	PermViewRewards,
	PermManageRewards,
	PermRedeemRewards,
	PermViewNFC,
	PermManageNFC,
	PermViewBlockchain,
	PermManageBlockchain,
	PermViewUsers,
	PermManageUsers,
	PermManageSettings,
	PermAdminAll,
}
