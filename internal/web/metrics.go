package web

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	PostsCreated       *prometheus.CounterVec
	CommentsCreated    *prometheus.CounterVec
	FollowRequests     *prometheus.CounterVec
	UnfollowRequests   *prometheus.CounterVec
	SuccessfulRequests *prometheus.CounterVec
	BadRequests        *prometheus.CounterVec
}

func InitMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		PostsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posts_created",
				Help: "Total number of posts created",
			},
			[]string{"path"},
		),
		CommentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comments_created",
				Help: "Total number of comments created",
			},
			[]string{"path"},
		),
		FollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_follows",
				Help: "Total number of successfully created follow edges",
			},
			[]string{"path"},
		),
		UnfollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_unfollows",
				Help: "Total number of removed follow edges",
			},
			[]string{"path"},
		),
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx) HTTP requests",
			},
			[]string{"path"},
		),
	}

	reg.MustRegister(m.PostsCreated)
	reg.MustRegister(m.CommentsCreated)
	reg.MustRegister(m.FollowRequests)
	reg.MustRegister(m.UnfollowRequests)
	reg.MustRegister(m.SuccessfulRequests)
	reg.MustRegister(m.BadRequests)

	return m
}
