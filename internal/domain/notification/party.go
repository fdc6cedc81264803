package notification

import "github.com/vendorlynx/vendorlynx-go/pkg/types"

// PartyOf maps an authenticated role onto the party typing used for
// notification addressing.
func PartyOf(role types.Role) (PartyType, bool) {
	switch role {
	case types.RoleVendor:
		return PartyVendor, true
	case types.RolePropertyManager:
		return PartyPropertyManager, true
	}
	return "", false
}
