package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth   = RouteApiV1 + "/auth"
	RouteSignup = RouteAuth + "/signup"
	RouteLogin  = RouteAuth + "/login"
	RouteMe     = RouteApiV1 + "/me"

	// profile
	RouteProfile      = RouteApiV1 + "/profile"
	RouteProfileImage = RouteProfile + "/image"

	// posts
	RoutePosts = RouteApiV1 + "/posts"
	RouteFeed  = RouteApiV1 + "/feed"

	// assets
	RouteUploads = "/uploads/:purpose/:name"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
