// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// AccountType classifies a registered account.
type AccountType uint8

const (
	AccountTypePerson AccountType = iota
	AccountTypeOrganization
	AccountTypeApp
	AccountTypeGov
	AccountTypeService
)

func (t AccountType) String() string {
	switch t {
	case AccountTypePerson:
		return "person"
	case AccountTypeOrganization:
		return "organization"
	case AccountTypeApp:
		return "app"
	case AccountTypeGov:
		return "gov"
	case AccountTypeService:
		return "service"
	default:
		return "unknown"
	}
}

// ResourceLimit is an account's allotment of chain resources.
type ResourceLimit struct {
	RAM int64 `json:"ram"`
	CPU int64 `json:"cpu"`
	NET int64 `json:"net"`
}
