package models

import "styledecor/src/types"

var roles = map[types.Role]struct{}{
	types.ROLE_USER:      {},
	types.ROLE_DECORATOR: {},
	types.ROLE_ADMIN:     {},
}

func IsValidRole(r types.Role) bool {
	_, ok := roles[r]
	return ok
}
