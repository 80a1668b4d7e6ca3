package company

import (
	"context"

	"mockview/internal/interview"
)

// Store resolves companies by name. Misses surface as
// interview.ErrCompanyNotFound; EnsureCompany creates on first sight.
type Store interface {
	interview.CompanyDirectory
	EnsureCompany(ctx context.Context, name string) (interview.Company, error)
}
