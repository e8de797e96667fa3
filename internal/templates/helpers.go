package templates

import (
	"net/url"
	"slices"
	"strings"

	"github.com/csg33k/roster-admin/internal/domain"
)

// statusClass picks the badge colours for an employee status.
func statusClass(status string) string {
	switch status {
	case domain.StatusActive:
		return "bg-green-100 text-green-800"
	case domain.StatusInactive, domain.StatusTerm:
		return "bg-red-100 text-red-800"
	case domain.StatusOpen:
		return "bg-yellow-100 text-yellow-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// roleTypeClass picks the badge colours for a role type.
func roleTypeClass(role string) string {
	switch role {
	case "Engineering":
		return "bg-blue-100 text-blue-800"
	case "Non Engineering":
		return "bg-purple-100 text-purple-800"
	case "Both":
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// pathEscape makes an employee ID safe to use as one URL path segment.
func pathEscape(id string) string {
	return url.PathEscape(id)
}

// withCurrent returns opts, extended with current when a stored value is
// not one of the offered choices, so that opening a dialog never changes it.
func withCurrent(opts []string, current string) []string {
	if current == "" || slices.Contains(opts, current) {
		return opts
	}
	return append(slices.Clone(opts), current)
}
