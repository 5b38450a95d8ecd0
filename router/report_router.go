package router

import (
	"github.com/labstack/echo/v4"
	"github.com/medwatch-dev/medwatch/cmd/medwatch/api"
	"github.com/medwatch-dev/medwatch/controllers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Copyright (C) 2025 medwatch-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

type ReportRouter struct {
	*echo.Group
}

// NewReportRouter registers the public JSON routes. The paths are flat, not
// versioned: the frontend talks to /process-report, /reports and /translate
// directly.
func NewReportRouter(srv api.Server,
	reportController *controllers.ReportController,
	translationController *controllers.TranslationController,
) ReportRouter {
	root := srv.Echo.Group("")

	root.GET("/health", health)
	root.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	root.POST("/process-report", reportController.Create)
	root.GET("/reports", reportController.List)
	root.POST("/translate", translationController.Translate)

	return ReportRouter{root}
}

func health(c echo.Context) error {
	return c.String(200, "ok")
}
