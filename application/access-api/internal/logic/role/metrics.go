package role

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 角色分配 Prometheus 指标
var (
	// 批量分配中被跳过的成员数
	roleAssignFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_api_role_assign_failures_total",
			Help: "Total number of actors skipped during batch role assignment",
		},
		[]string{"role"},
	)
)
