package commands

import (
	"strings"

	"frosty/internal/core/domain/model/checkout"
)

// parseStatus maps an absent status to checkout.Unknown so the order validation
// reports it; any other unrecognized name is rejected.
func parseStatus(value string) (checkout.Status, error) {
	if strings.TrimSpace(value) == "" {
		return checkout.Unknown, nil
	}
	return checkout.ParseStatus(value)
}
