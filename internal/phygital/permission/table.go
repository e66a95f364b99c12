package permission

// rolePermissions maps each role to its configured permissions. Read it through PermissionsForRole.
// Authorization decisions must go through HasPermission; the admin entry holds only the wildcard.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermAdminAll,
	},
	RoleManager: {
		PermViewDashboard,
		PermViewProducts,
		PermCreateProducts,
		PermEditProducts,
		PermViewCustomers,
		PermManageCustomers,
		PermViewAnalytics,
		PermExportAnalytics,
		PermViewRewards,
		PermManageRewards,
		PermViewNFC,
		PermManageNFC,
		PermViewBlockchain,
		PermManageBlockchain,
		PermViewUsers,
		PermManageSettings,
	},
	RoleEditor: {
		PermViewDashboard,
		PermViewProducts,
		PermCreateProducts,
		PermEditProducts,
		PermViewCustomers,
		PermViewAnalytics,
		PermViewRewards,
		PermViewNFC,
		PermManageNFC,
		PermViewBlockchain,
	},
	RoleViewer: {
		PermViewDashboard,
		PermViewProducts,
		PermViewCustomers,
		PermViewAnalytics,
		PermViewRewards,
		PermViewNFC,
		PermViewBlockchain,
	},
	RoleCustomer: {
		PermViewProducts,
		PermViewRewards,
		PermRedeemRewards,
		PermViewNFC,
	},
}

type permissionText struct {
	name        string
	description string
}

var permissionTexts = map[Permission]permissionText{
	PermViewDashboard:    {"View Dashboard", "Access the dashboard overview and summary widgets"},
	PermViewProducts:     {"View Products", "Browse products and their authentication records"},
	PermCreateProducts:   {"Create Products", "Register new products and link them to tokens"},
	PermEditProducts:     {"Edit Products", "Update product details and metadata"},
	PermDeleteProducts:   {"Delete Products", "Remove products from the catalog"},
	PermViewCustomers:    {"View Customers", "See customer profiles and ownership history"},
	PermManageCustomers:  {"Manage Customers", "Edit customer profiles and loyalty tiers"},
	PermViewAnalytics:    {"View Analytics", "Access scan, engagement and sales analytics"},
	PermExportAnalytics:  {"Export Analytics", "Download analytics reports"},
	PermViewRewards:      {"View Rewards", "See loyalty rewards and point balances"},
	PermManageRewards:    {"Manage Rewards", "Create and configure loyalty rewards"},
	PermRedeemRewards:    {"Redeem Rewards", "Redeem loyalty points for rewards"},
	PermViewNFC:          {"View NFC Tags", "See NFC tags and their scan history"},
	PermManageNFC:        {"Manage NFC Tags", "Program, assign and revoke NFC tags"},
	PermViewBlockchain:   {"View Blockchain", "See chain configuration, balances and network status"},
	PermManageBlockchain: {"Manage Blockchain", "Submit transactions and manage token contracts"},
	PermViewUsers:        {"View Users", "List team members and their roles"},
	PermManageUsers:      {"Manage Users", "Invite team members and change their roles"},
	PermManageSettings:   {"Manage Settings", "Change organization and integration settings"},
	PermAdminAll:         {"Full Administration", "Unrestricted access to every capability"},
}
