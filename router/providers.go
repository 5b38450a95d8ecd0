package router

import (
	"go.uber.org/fx"
)

// RouterModule provides all route registrars
var RouterModule = fx.Options(
	fx.Provide(NewReportRouter),
)
