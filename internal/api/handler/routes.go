package handler

import (
	"net/http"

	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika"
	"github.com/vfg2006/leads-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/aliasing"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/leading"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/reconciling"
	"github.com/vfg2006/leads-analytics-api/pkg/middleware"
)

var (
	adminOnly = []func(http.Handler) http.Handler{middleware.AdminOnly()}
	allRoles  = []func(http.Handler) http.Handler{middleware.AllRoles()}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: allRoles,
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: adminOnly,
		},
	}
}

func Analytics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/grouped",
			Method:      http.MethodGet,
			Handler:     GetGrouped(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/analytics/expenses/history",
			Method:      http.MethodGet,
			Handler:     GetSpendHistory(service),
			Middlewares: allRoles,
		},
	}
}

func Goals(adAnalytics metrika.AdAnalytics) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals",
			Method:      http.MethodGet,
			Handler:     ListGoals(adAnalytics),
			Middlewares: adminOnly,
		},
	}
}

func Leads(service leading.LeadManager, reconciler reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodPost,
			Handler:     AppendLeads(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodDelete,
			Handler:     PurgeLeads(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/leads/:row_id",
			Method:      http.MethodPut,
			Handler:     UpdateLeadStatus(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/leads/duplicates/mark",
			Method:      http.MethodPost,
			Handler:     MarkDuplicates(reconciler),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/leads/archive-merge",
			Method:      http.MethodPost,
			Handler:     StartArchiveMerge(reconciler),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/leads/archive-merge/:job_id",
			Method:      http.MethodGet,
			Handler:     GetArchiveMerge(reconciler),
			Middlewares: adminOnly,
		},
	}
}

func CampaignAliases(service aliasing.AliasManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaign-aliases",
			Method:      http.MethodGet,
			Handler:     ListCampaignAliases(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/campaign-aliases",
			Method:      http.MethodPut,
			Handler:     SaveCampaignAliases(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/campaign-aliases/:source",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaignAlias(service),
			Middlewares: adminOnly,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
