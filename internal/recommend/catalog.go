package recommend

// Per-project-type catalogs. The why/use-case text is what makes the
// recommendation feel hand-written, so every project type gets its own copy
// rather than sharing generic blurbs.

var projectCatalogs = map[string][]catalogEntry{
	"ecommerce": {
		{"cognito", "Amazon Cognito", "authentication",
			"Manages customer accounts, login/signup, and secure authentication for shoppers",
			"Customer registration, login, password reset, and session management"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores products, orders, shopping carts, and customer data with millisecond response times",
			"Product catalog with search, order history, real-time inventory tracking"},
		{"lambda", "AWS Lambda", "compute",
			"Handles checkout logic, payment processing, order confirmation, and inventory updates",
			"Process payments with Stripe/PayPal, calculate shipping, apply discounts"},
		{"api-gateway", "Amazon API Gateway", "api",
			"Provides secure REST APIs for product browsing, cart operations, and checkout",
			"API endpoints: /products, /cart, /checkout, /orders"},
		{"s3", "Amazon S3", "storage",
			"Stores product images, promotional banners, and invoices with 99.999999999% durability",
			"Product photos, category images, downloadable receipts"},
		{"ses", "Amazon SES", "email",
			"Sends order confirmations, shipping notifications, and promotional emails",
			"Transactional emails: order confirmation, shipping updates, password reset"},
		{"cloudfront", "Amazon CloudFront", "cdn",
			"Delivers product images and website assets globally with low latency",
			"Fast image loading worldwide, reduced S3 costs"},
	},
	"social": {
		{"cognito", "Amazon Cognito", "authentication",
			"Manages user profiles, authentication, and social login (Google, Facebook)",
			"User signup/login, profile management, OAuth integration"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores posts, comments, likes, and follower relationships with fast queries",
			"User posts with timestamps, comment threads, follower/following lists"},
		{"lambda", "AWS Lambda", "compute",
			"Generates personalized feeds, processes likes/comments, sends notifications",
			"Feed algorithm, notification triggers, content moderation"},
		{"api-gateway", "Amazon API Gateway", "api",
			"REST APIs for posting, commenting, liking, and following users",
			"Endpoints: /posts, /comments, /likes, /follow"},
		{"s3", "Amazon S3", "storage",
			"Stores user-uploaded photos, videos, and profile pictures",
			"Photo uploads, video hosting, profile avatars"},
		{"cloudfront", "Amazon CloudFront", "cdn",
			"Delivers media content globally with low latency for better user experience",
			"Fast photo/video loading, reduced bandwidth costs"},
	},
	"marketplace": {
		{"cognito", "Amazon Cognito", "authentication",
			"Separate authentication for buyers and sellers with role-based access",
			"Buyer/seller accounts, vendor verification, multi-role permissions"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores listings, bids, transactions, and seller profiles",
			"Product listings, bidding history, escrow transactions, seller ratings"},
		{"lambda", "AWS Lambda", "compute",
			"Handles bidding logic, payment escrow, commission calculations, and notifications",
			"Bid processing, payment splits, seller payouts, dispute resolution"},
		{"api-gateway", "Amazon API Gateway", "api",
			"APIs for listings, bidding, messaging between buyers/sellers",
			"Endpoints: /listings, /bids, /messages, /transactions"},
		{"s3", "Amazon S3", "storage",
			"Stores product images, seller documents, and transaction receipts",
			"Listing photos, seller verification docs, invoices"},
		{"ses", "Amazon SES", "email",
			"Sends bid notifications, transaction confirmations, and seller alerts",
			"Bid updates, sale confirmations, payout notifications"},
	},
	"blog": {
		{"s3", "Amazon S3", "storage",
			"Hosts your static blog website (HTML, CSS, JS) with high availability",
			"Static site hosting, article pages, images"},
		{"cloudfront", "Amazon CloudFront", "cdn",
			"Delivers your blog globally with fast load times and HTTPS",
			"Global content delivery, SSL certificate, DDoS protection"},
		{"lambda", "AWS Lambda", "compute",
			"Handles dynamic features like comments, contact forms, and search",
			"Comment processing, email notifications, search indexing"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores comments, page views, and subscriber data",
			"Comment storage, analytics tracking, email subscribers"},
	},
	"saas": {
		{"cognito", "Amazon Cognito", "authentication",
			"Multi-tenant authentication with organization isolation and SSO support",
			"Company accounts, team member access, SSO integration"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores tenant data, subscriptions, usage metrics with tenant isolation",
			"Customer data, subscription plans, usage tracking, billing"},
		{"lambda", "AWS Lambda", "compute",
			"Handles business logic, API processing, and background jobs",
			"Data processing, scheduled tasks, webhook integrations"},
		{"api-gateway", "Amazon API Gateway", "api",
			"Provides REST/GraphQL APIs with rate limiting and API key management",
			"Public API, webhook endpoints, third-party integrations"},
		{"s3", "Amazon S3", "storage",
			"Stores customer files, exports, and backups with encryption",
			"File uploads, data exports, automated backups"},
	},
	"mobile_backend": {
		{"cognito", "Amazon Cognito", "authentication",
			"Mobile-optimized authentication with social login and biometric support",
			"App login, Face ID/fingerprint, Google/Apple sign-in"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores app data with offline sync capabilities via AWS AppSync",
			"User preferences, app state, offline-first data"},
		{"lambda", "AWS Lambda", "compute",
			"Backend API logic for mobile app features",
			"Data processing, push notification triggers, API logic"},
		{"api-gateway", "Amazon API Gateway", "api",
			"RESTful APIs optimized for mobile with low latency",
			"Mobile API endpoints with caching"},
		{"s3", "Amazon S3", "storage",
			"Stores user-generated content like photos and videos from mobile",
			"Image uploads, video storage, app assets"},
	},
	"api": {
		{"lambda", "AWS Lambda", "compute",
			"Executes API logic without managing servers, auto-scales with traffic",
			"API endpoints, data transformations, integrations"},
		{"api-gateway", "Amazon API Gateway", "api",
			"Manages API versioning, rate limiting, API keys, and documentation",
			"REST API with authentication, throttling, monitoring"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Fast NoSQL storage for API data with predictable performance",
			"API data storage, caching, session management"},
	},
	"real_time": {
		{"appsync", "AWS AppSync", "api",
			"Real-time GraphQL subscriptions for live updates",
			"Live chat messages, real-time notifications, collaborative editing"},
		{"lambda", "AWS Lambda", "compute",
			"Processes messages, broadcasts updates, and triggers notifications",
			"Message routing, presence detection, notification logic"},
		{"dynamodb", "Amazon DynamoDB", "database",
			"Stores chat history, user presence, and connection states",
			"Message persistence, online/offline status, conversation threads"},
	},
}

// defaultCatalog is used when the project type has no dedicated catalog.
var defaultCatalog = []catalogEntry{
	{"lambda", "AWS Lambda", "compute",
		"Runs your application code without managing servers",
		"Backend logic, API processing, scheduled tasks"},
	{"api-gateway", "Amazon API Gateway", "api",
		"Creates and manages REST APIs for your application",
		"API endpoints with authentication and monitoring"},
	{"dynamodb", "Amazon DynamoDB", "database",
		"Stores your application data with fast, predictable performance",
		"User data, application state, content storage"},
	{"s3", "Amazon S3", "storage",
		"Stores files, images, and static assets with high durability",
		"File uploads, static website hosting, backups"},
}

var freeTiers = map[string]string{
	"lambda":      "1M requests + 400K GB-seconds",
	"api-gateway": "1M requests (12 months)",
	"dynamodb":    "25GB + 25 WCU/RCU",
	"s3":          "5GB storage",
	"cognito":     "50K MAU",
	"ses":         "62K emails/month",
	"cloudfront":  "1TB data transfer",
	"appsync":     "250K query/mutation",
}

// baseCosts are unscaled monthly dollar ranges per service.
var baseCosts = map[string][2]int{
	"lambda":      {10, 50},
	"api-gateway": {5, 30},
	"dynamodb":    {5, 30},
	"s3":          {5, 20},
	"cognito":     {0, 25},
	"ses":         {0, 10},
	"cloudfront":  {10, 50},
	"appsync":     {5, 40},
}
