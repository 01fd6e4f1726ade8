package endpoint

import (
	"time"

	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

// Placeholder metrics: real collection is out of scope, so these two values
// are fixed constants rather than live counters.
const (
	placeholderActiveUsers = 1234
	placeholderUptime      = 99.8
)

// metricsWindow is the lookback for the counted metrics.
const metricsWindow = 24 * time.Hour

type DashboardMetricsResponse struct {
	ActiveUsers    int     `json:"activeUsers"`
	FailedLogins   int     `json:"failedLogins"`
	SecurityEvents int     `json:"securityEvents"`
	Uptime         float64 `json:"uptime"`
}

// DashboardMetrics returns the aggregate numbers shown on the dashboard.
// Failed logins and security events are real counts over the last 24 hours;
// active users and uptime are simulated.
func DashboardMetrics(c *gin.Context) {
	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	since := time.Now().Add(-metricsWindow)
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Dashboard metrics",
		Data: DashboardMetricsResponse{
			ActiveUsers:    placeholderActiveUsers,
			FailedLogins:   s.CountFailedLogins(since),
			SecurityEvents: s.CountSecurityEvents(since),
			Uptime:         placeholderUptime,
		},
	})
}
