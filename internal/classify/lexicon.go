package classify

// categoryOrder fixes iteration order so ties between equally scored
// categories resolve the same way on every run.
var categoryOrder = []string{
	"web_application",
	"ecommerce",
	"marketplace",
	"social",
	"mobile_backend",
	"api",
	"real_time",
	"file_storage",
	"authentication",
	"analytics",
}

var useCaseKeywords = UseCaseKeywords{
	"web_application": {"web", "website", "blog", "cms", "portal"},
	"ecommerce":       {"ecommerce", "store", "shop", "product", "cart", "checkout", "payment"},
	"marketplace":     {"marketplace", "platform", "seller", "buyer", "vendor"},
	"social":          {"social", "feed", "post", "follower", "like", "comment", "share"},
	"mobile_backend":  {"mobile", "app", "ios", "android", "push notification"},
	"api":             {"api", "endpoint", "rest", "graphql", "webhook"},
	"real_time":       {"real-time", "realtime", "chat", "messaging", "live", "websocket"},
	"file_storage":    {"file", "upload", "photo", "image", "video", "document", "storage"},
	"authentication":  {"auth", "login", "signup", "user", "password", "oauth", "sso"},
	"analytics":       {"analytics", "tracking", "metrics", "dashboard", "reporting"},
}
