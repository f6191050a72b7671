package role

// Static privilege matrix keyed by userType. Client-held role claims are
// never consulted; the userType comes from the verified session token.
var privileges = map[string]map[string][]string{
	"admin": {
		"doctor":      {"view", "create", "update", "delete"},
		"appointment": {"view", "create", "update", "delete", "export"},
		"user":        {"view", "create", "update", "delete"},
		"report":      {"view", "create", "delete"},
		"audit":       {"view"},
	},
	"doctor": {
		"doctor":      {"view"},
		"appointment": {"view", "update"},
		"report":      {"view", "create", "delete"},
		"user":        {"update"},
	},
	"patient": {
		"doctor": {"view"},
		"report": {"view"},
		"user":   {"update"},
	},
}

// Can reports whether a userType may perform an action on a resource.
func Can(userType, resource, action string) bool {
	resources, ok := privileges[userType]
	if !ok {
		return false
	}
	for _, a := range resources[resource] {
		if a == action {
			return true
		}
	}
	return false
}
