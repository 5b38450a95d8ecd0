package repositories

import (
	"github.com/medwatch-dev/medwatch/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors
var Module = fx.Options(
	fx.Provide(func(db shared.DB) shared.ReportRepository {
		return NewReportRepository(db)
	}),
)
