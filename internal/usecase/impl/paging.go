package impl

import (
	"dealfinder/config"
	"dealfinder/internal/domain/entity"
)

const (
	fallbackPublicLimit = 12
	fallbackAdminLimit  = 10
	fallbackMaxLimit    = 100
)

// pager turns raw page/limit query values into a bounded Pagination.
type pager struct {
	publicLimit int
	adminLimit  int
	maxLimit    int
}

func newPager(cfg *config.Config) pager {
	p := pager{
		publicLimit: fallbackPublicLimit,
		adminLimit:  fallbackAdminLimit,
		maxLimit:    fallbackMaxLimit,
	}
	if cfg == nil || cfg.Pagination == nil {
		return p
	}
	if cfg.Pagination.PublicLimit > 0 {
		p.publicLimit = cfg.Pagination.PublicLimit
	}
	if cfg.Pagination.AdminLimit > 0 {
		p.adminLimit = cfg.Pagination.AdminLimit
	}
	if cfg.Pagination.MaxLimit > 0 {
		p.maxLimit = cfg.Pagination.MaxLimit
	}

	return p
}

func (p pager) public(page, limit int) entity.Pagination {
	return entity.NewPagination(page, limit, p.publicLimit, p.maxLimit)
}

func (p pager) admin(page, limit int) entity.Pagination {
	return entity.NewPagination(page, limit, p.adminLimit, p.maxLimit)
}

// all defaults to the largest page, for listings that are meant to be complete.
func (p pager) all(page, limit int) entity.Pagination {
	return entity.NewPagination(page, limit, p.maxLimit, p.maxLimit)
}
