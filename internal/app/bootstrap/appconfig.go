// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging
// level, CORS, timeouts); AppConfig is everything specific to campusboard.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Teacher directory seed. When SeedTeacherUsername is set, Startup
	// upserts the matching teacher document so a fresh deployment has at
	// least one identity that can manage announcements.
	SeedTeacherUsername string
	SeedTeacherName     string
}
