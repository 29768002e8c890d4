package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DavidIQ/onlytimer/internal/feed"
	"github.com/DavidIQ/onlytimer/internal/http/api"
	"github.com/DavidIQ/onlytimer/internal/http/api/endpoints"
	"github.com/DavidIQ/onlytimer/internal/timing"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, registry *timing.Registry, source feed.Source) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"DELETE",
			"OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.ScheduleModule(source),
		endpoints.MeetingModule(registry),
		endpoints.ReportModule(registry.Store(), env.ReportDir),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		endpoints.AdminModule(registry.Store()),
	)
}
