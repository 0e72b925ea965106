package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RouteUsers         = RouteApiV1 + "/users"
	RouteUser          = RouteUsers + "/:user_id"
	RouteUserReplace   = RouteUser + "/replace"
	RouteUserStatus    = RouteUser + "/status"
	RouteUserByID      = RouteUsers + "/id/:user_id"
	RouteUserByEmail   = RouteUsers + "/email/:email"
	RouteUserByPhone   = RouteUsers + "/phone/:phone"
	RouteUsersByName   = RouteUsers + "/name/:name"
	RouteUsersByStatus = RouteUsers + "/status/:status"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
